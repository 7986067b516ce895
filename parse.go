package gltf

import (
	"sort"
	"strconv"
	"strings"

	"github.com/oxygltf/gltf/internal/arena"
	"github.com/oxygltf/gltf/internal/jsonfield"
)

// loadContext is the contract between the file/GLB front ends and the
// shared JSON parser: an optional internal BIN buffer (for GLB inputs), the
// source directory to resolve relative URIs against, and whether this
// input originated from a GLB container (so buffers[0] may omit its URI).
type loadContext struct {
	bin     []byte
	dir     string
	fromGLB bool
}

// parseDocument walks the glTF root object in the fixed order the document
// store is built in, then returns the finished Document.
func parseDocument(jsonBytes []byte, ctx loadContext) (*Document, error) {
	root, err := jsonfield.ParseObject(jsonBytes, "root")
	if err != nil {
		return nil, parseErrf("root", "invalid JSON: %v", err)
	}

	doc := newDocument()
	doc.dir = ctx.dir

	if err := parseDefaultScene(doc, root); err != nil {
		return nil, err
	}
	if err := parseScenes(doc, root); err != nil {
		return nil, err
	}
	if err := parseNodes(doc, root); err != nil {
		return nil, err
	}
	if err := parseMeshes(doc, root); err != nil {
		return nil, err
	}
	if err := parseAccessors(doc, root); err != nil {
		return nil, err
	}
	if err := parseBufferViews(doc, root); err != nil {
		return nil, err
	}
	if err := parseBuffers(doc, root, ctx); err != nil {
		return nil, err
	}
	if err := parseImages(doc, root); err != nil {
		return nil, err
	}
	if err := parseSamplers(doc, root); err != nil {
		return nil, err
	}
	if err := parseTextures(doc, root); err != nil {
		return nil, err
	}
	if err := parseMaterials(doc, root); err != nil {
		return nil, err
	}
	if err := parseAsset(doc, root); err != nil {
		return nil, err
	}

	return doc, nil
}

func parseDefaultScene(doc *Document, root jsonfield.Object) error {
	v, err := root.OptIntPtr("scene", "root.scene")
	if err != nil {
		return parseErrf("root.scene", "%v", err)
	}
	if v == nil {
		doc.defaultScene = -1
	} else {
		doc.defaultScene = *v
	}
	return nil
}

func parseScenes(doc *Document, root jsonfield.Object) error {
	objs, err := jsonfield.ObjectArray(root, "scenes", "root.scenes")
	if err != nil {
		return parseErrf("root.scenes", "%v", err)
	}
	doc.scenes = make([]Scene, len(objs))
	for i, o := range objs {
		path := elemPath("root.scenes", i)
		name, err := o.OptString("name", "", path+".name")
		if err != nil {
			return parseErrf(path, "%v", err)
		}
		nodeIdx, err := jsonfield.IntArray(o, "nodes", path+".nodes")
		if err != nil {
			return parseErrf(path, "%v", err)
		}
		roots, err := doc.pushIndices(intToU32(nodeIdx))
		if err != nil {
			return ioErrf(path, "%v", err)
		}
		doc.scenes[i] = Scene{Name: doc.internString(name), Roots: roots}
	}
	return nil
}

func parseNodes(doc *Document, root jsonfield.Object) error {
	objs, err := jsonfield.ObjectArray(root, "nodes", "root.nodes")
	if err != nil {
		return parseErrf("root.nodes", "%v", err)
	}
	doc.nodes = make([]Node, len(objs))
	for i, o := range objs {
		path := elemPath("root.nodes", i)
		n, err := parseOneNode(doc, o, path)
		if err != nil {
			return err
		}
		doc.nodes[i] = n
	}
	// Validate child references now that every node exists.
	for i := range doc.nodes {
		for _, c := range doc.sliceIndices(doc.nodes[i].Children) {
			if int(c) < 0 || int(c) >= len(doc.nodes) {
				return parseErrf(elemPath("root.nodes", i)+".children", "child index %d out of range", c)
			}
		}
	}
	return nil
}

func parseOneNode(doc *Document, o jsonfield.Object, path string) (Node, error) {
	name, err := o.OptString("name", "", path+".name")
	if err != nil {
		return Node{}, parseErrf(path, "%v", err)
	}
	meshPtr, err := o.OptIntPtr("mesh", path+".mesh")
	if err != nil {
		return Node{}, parseErrf(path, "%v", err)
	}
	mesh := -1
	if meshPtr != nil {
		mesh = *meshPtr
	}
	childIdx, err := jsonfield.IntArray(o, "children", path+".children")
	if err != nil {
		return Node{}, parseErrf(path, "%v", err)
	}
	children, err := doc.pushIndices(intToU32(childIdx))
	if err != nil {
		return Node{}, ioErrf(path, "%v", err)
	}

	n := Node{
		Name:     doc.internString(name),
		Mesh:     mesh,
		Children: children,
	}

	if o.Has("matrix") {
		m, err := jsonfield.FloatArray(o, "matrix", 16, path+".matrix")
		if err != nil {
			return Node{}, parseErrf(path, "%v", err)
		}
		n.HasMatrix = true
		copy(n.Matrix[:], m)
		return n, nil
	}

	t, err := jsonfield.FloatArray(o, "translation", 3, path+".translation")
	if err != nil {
		return Node{}, parseErrf(path, "%v", err)
	}
	if t == nil {
		t = []float32{0, 0, 0}
	}
	r, err := jsonfield.FloatArray(o, "rotation", 4, path+".rotation")
	if err != nil {
		return Node{}, parseErrf(path, "%v", err)
	}
	if r == nil {
		r = []float32{0, 0, 0, 1}
	}
	s, err := jsonfield.FloatArray(o, "scale", 3, path+".scale")
	if err != nil {
		return Node{}, parseErrf(path, "%v", err)
	}
	if s == nil {
		s = []float32{1, 1, 1}
	}
	copy(n.Translation[:], t)
	copy(n.Rotation[:], r)
	copy(n.Scale[:], s)
	return n, nil
}

func parseMeshes(doc *Document, root jsonfield.Object) error {
	objs, err := jsonfield.ObjectArray(root, "meshes", "root.meshes")
	if err != nil {
		return parseErrf("root.meshes", "%v", err)
	}
	doc.meshes = make([]Mesh, len(objs))
	for i, o := range objs {
		path := elemPath("root.meshes", i)
		name, err := o.OptString("name", "", path+".name")
		if err != nil {
			return parseErrf(path, "%v", err)
		}
		primObjs, err := jsonfield.ObjectArray(o, "primitives", path+".primitives")
		if err != nil {
			return parseErrf(path, "%v", err)
		}
		first := len(doc.primitives)
		for pi, po := range primObjs {
			ppath := elemPath(path+".primitives", pi)
			prim, err := parseOnePrimitive(doc, po, ppath)
			if err != nil {
				return err
			}
			doc.primitives = append(doc.primitives, prim)
		}
		doc.meshes[i] = Mesh{
			Name:       doc.internString(name),
			Primitives: arena.Range{First: uint32(first), Count: uint32(len(primObjs))},
		}
	}
	return nil
}

func parseOnePrimitive(doc *Document, o jsonfield.Object, path string) (Primitive, error) {
	attrsObj, err := jsonfield.ParseObject(o["attributes"], path+".attributes")
	if err != nil {
		return Primitive{}, parseErrf(path, "%v", err)
	}

	// Pass 1: count recognized semantics.
	recognized := make(map[string]PrimAttr, len(attrsObj))
	for key := range attrsObj {
		sem, set, ok := parseSemantic(key)
		if !ok {
			continue
		}
		idx, err := attrsObj.RequiredInt(key, path+".attributes."+key)
		if err != nil {
			return Primitive{}, parseErrf(path, "%v", err)
		}
		recognized[key] = PrimAttr{Semantic: sem, Set: set, Accessor: idx}
	}

	// Pass 2: write entries in a stable order (sorted keys) so output is
	// deterministic across runs.
	keys := make([]string, 0, len(recognized))
	for k := range recognized {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	first := len(doc.primAttrs)
	for _, k := range keys {
		doc.primAttrs = append(doc.primAttrs, recognized[k])
	}

	indicesPtr, err := o.OptIntPtr("indices", path+".indices")
	if err != nil {
		return Primitive{}, parseErrf(path, "%v", err)
	}
	indices := -1
	if indicesPtr != nil {
		indices = *indicesPtr
	}

	mode, err := o.OptInt("mode", ModeTriangles, path+".mode")
	if err != nil {
		return Primitive{}, parseErrf(path, "%v", err)
	}
	if mode < 0 || mode > 6 {
		return Primitive{}, parseErrf(path+".mode", "mode %d out of range 0..6", mode)
	}

	materialPtr, err := o.OptIntPtr("material", path+".material")
	if err != nil {
		return Primitive{}, parseErrf(path, "%v", err)
	}
	material := -1
	if materialPtr != nil {
		material = *materialPtr
	}

	return Primitive{
		Attributes: arena.Range{First: uint32(first), Count: uint32(len(keys))},
		Indices:    indices,
		Mode:       mode,
		Material:   material,
	}, nil
}

// parseSemantic normalizes a glTF attribute key into (semantic, set index).
// Unrecognized keys return ok=false and are silently dropped.
func parseSemantic(key string) (PrimAttrSemantic, int, bool) {
	switch {
	case key == "POSITION":
		return SemanticPosition, 0, true
	case key == "NORMAL":
		return SemanticNormal, 0, true
	case key == "TANGENT":
		return SemanticTangent, 0, true
	case strings.HasPrefix(key, "TEXCOORD_"):
		if n, ok := jsonfield.ParseSuffixDigits(key[len("TEXCOORD_"):]); ok {
			return SemanticTexCoord, n, true
		}
	case strings.HasPrefix(key, "COLOR_"):
		if n, ok := jsonfield.ParseSuffixDigits(key[len("COLOR_"):]); ok {
			return SemanticColor, n, true
		}
	case strings.HasPrefix(key, "JOINTS_"):
		if n, ok := jsonfield.ParseSuffixDigits(key[len("JOINTS_"):]); ok {
			return SemanticJoints, n, true
		}
	case strings.HasPrefix(key, "WEIGHTS_"):
		if n, ok := jsonfield.ParseSuffixDigits(key[len("WEIGHTS_"):]); ok {
			return SemanticWeights, n, true
		}
	}
	return SemanticUnknown, 0, false
}

func parseAccessors(doc *Document, root jsonfield.Object) error {
	objs, err := jsonfield.ObjectArray(root, "accessors", "root.accessors")
	if err != nil {
		return parseErrf("root.accessors", "%v", err)
	}
	doc.accessors = make([]Accessor, len(objs))
	for i, o := range objs {
		path := elemPath("root.accessors", i)

		bvPtr, err := o.OptIntPtr("bufferView", path+".bufferView")
		if err != nil {
			return parseErrf(path, "%v", err)
		}
		byteOffset, err := o.OptInt("byteOffset", 0, path+".byteOffset")
		if err != nil {
			return parseErrf(path, "%v", err)
		}
		if bvPtr == nil && o.Has("byteOffset") {
			return parseErrf(path+".byteOffset", "byteOffset present without bufferView")
		}
		bv := -1
		if bvPtr != nil {
			bv = *bvPtr
		}

		componentType, err := o.RequiredInt("componentType", path+".componentType")
		if err != nil {
			return parseErrf(path, "%v", err)
		}
		if !validComponentType(componentType) {
			return parseErrf(path+".componentType", "unrecognized component type %d", componentType)
		}

		typeStr, err := o.String("type", path+".type")
		if err != nil {
			return parseErrf(path, "%v", err)
		}
		elemType, ok := parseElementType(typeStr)
		if !ok {
			return parseErrf(path+".type", "unrecognized accessor type %q", typeStr)
		}

		count, err := o.RequiredInt("count", path+".count")
		if err != nil {
			return parseErrf(path, "%v", err)
		}
		normalized, err := o.OptBool("normalized", false, path+".normalized")
		if err != nil {
			return parseErrf(path, "%v", err)
		}

		doc.accessors[i] = Accessor{
			BufferView:    bv,
			ByteOffset:    byteOffset,
			ComponentType: componentType,
			Normalized:    normalized,
			Count:         count,
			Type:          elemType,
		}
	}
	return nil
}

func validComponentType(c int) bool {
	switch c {
	case ComponentByte, ComponentUnsignedByte, ComponentShort, ComponentUnsignedShort, ComponentUnsignedInt, ComponentFloat:
		return true
	}
	return false
}

func parseElementType(s string) (ElementType, bool) {
	switch s {
	case "SCALAR":
		return ElementScalar, true
	case "VEC2":
		return ElementVec2, true
	case "VEC3":
		return ElementVec3, true
	case "VEC4":
		return ElementVec4, true
	case "MAT2":
		return ElementMat2, true
	case "MAT3":
		return ElementMat3, true
	case "MAT4":
		return ElementMat4, true
	}
	return 0, false
}

func parseBufferViews(doc *Document, root jsonfield.Object) error {
	objs, err := jsonfield.ObjectArray(root, "bufferViews", "root.bufferViews")
	if err != nil {
		return parseErrf("root.bufferViews", "%v", err)
	}
	doc.bufferViews = make([]BufferView, len(objs))
	for i, o := range objs {
		path := elemPath("root.bufferViews", i)
		buf, err := o.RequiredInt("buffer", path+".buffer")
		if err != nil {
			return parseErrf(path, "%v", err)
		}
		byteOffset, err := o.OptInt("byteOffset", 0, path+".byteOffset")
		if err != nil {
			return parseErrf(path, "%v", err)
		}
		byteLength, err := o.OptInt("byteLength", 0, path+".byteLength")
		if err != nil {
			return parseErrf(path, "%v", err)
		}
		byteStride, err := o.OptInt("byteStride", 0, path+".byteStride")
		if err != nil {
			return parseErrf(path, "%v", err)
		}
		target, err := o.OptInt("target", 0, path+".target")
		if err != nil {
			return parseErrf(path, "%v", err)
		}
		doc.bufferViews[i] = BufferView{
			Buffer:     buf,
			ByteOffset: byteOffset,
			ByteLength: byteLength,
			ByteStride: byteStride,
			Target:     target,
		}
	}
	return nil
}

func parseBuffers(doc *Document, root jsonfield.Object, ctx loadContext) error {
	objs, err := jsonfield.ObjectArray(root, "buffers", "root.buffers")
	if err != nil {
		return parseErrf("root.buffers", "%v", err)
	}
	doc.buffers = make([]Buffer, len(objs))
	for i, o := range objs {
		path := elemPath("root.buffers", i)
		byteLength, err := o.OptInt("byteLength", 0, path+".byteLength")
		if err != nil {
			return parseErrf(path, "%v", err)
		}
		uri, err := o.OptString("uri", "", path+".uri")
		if err != nil {
			return parseErrf(path, "%v", err)
		}

		if uri == "" {
			if i == 0 && ctx.fromGLB {
				if ctx.bin == nil {
					return parseErrf(path, "buffer[0] has no uri and no GLB BIN chunk is present")
				}
				if byteLength != 0 && len(ctx.bin) != byteLength {
					return parseErrf(path, "BIN chunk length %d does not match declared byteLength %d", len(ctx.bin), byteLength)
				}
				doc.buffers[i] = Buffer{URI: arena.InvalidRef, ByteLength: byteLength, Data: ctx.bin}
				continue
			}
			return parseErrf(path+".uri", "missing required field \"uri\"")
		}

		data, err := loadBufferBytes(uri, byteLength, ctx.dir, path)
		if err != nil {
			return err
		}
		doc.buffers[i] = Buffer{URI: doc.internString(uri), ByteLength: byteLength, Data: data}
	}
	return nil
}

func parseImages(doc *Document, root jsonfield.Object) error {
	objs, err := jsonfield.ObjectArray(root, "images", "root.images")
	if err != nil {
		return parseErrf("root.images", "%v", err)
	}
	doc.images = make([]Image, len(objs))
	for i, o := range objs {
		path := elemPath("root.images", i)
		name, err := o.OptString("name", "", path+".name")
		if err != nil {
			return parseErrf(path, "%v", err)
		}
		uri, err := o.OptString("uri", "", path+".uri")
		if err != nil {
			return parseErrf(path, "%v", err)
		}
		mimeType, err := o.OptString("mimeType", "", path+".mimeType")
		if err != nil {
			return parseErrf(path, "%v", err)
		}
		bvPtr, err := o.OptIntPtr("bufferView", path+".bufferView")
		if err != nil {
			return parseErrf(path, "%v", err)
		}

		img := Image{Name: doc.internString(name), BufferView: -1}

		switch {
		case bvPtr != nil:
			if mimeType == "" {
				return parseErrf(path+".mimeType", "mimeType required when bufferView is present")
			}
			img.Kind = ImageBufferView
			img.BufferView = *bvPtr
			img.MimeType = doc.internString(mimeType)
		case isDataURI(uri):
			img.Kind = ImageDataURI
			img.URI = doc.internString(uri)
		case uri != "":
			img.Kind = ImageURI
			img.URI = doc.internString(uri)
			img.Resolved = doc.internString(resolvePath(doc.dir, uri))
		default:
			img.Kind = ImageNone
		}

		doc.images[i] = img
	}
	return nil
}

func parseSamplers(doc *Document, root jsonfield.Object) error {
	objs, err := jsonfield.ObjectArray(root, "samplers", "root.samplers")
	if err != nil {
		return parseErrf("root.samplers", "%v", err)
	}
	doc.samplers = make([]Sampler, len(objs))
	for i, o := range objs {
		path := elemPath("root.samplers", i)
		name, err := o.OptString("name", "", path+".name")
		if err != nil {
			return parseErrf(path, "%v", err)
		}
		magFilter, err := o.OptInt("magFilter", FilterUnspecified, path+".magFilter")
		if err != nil {
			return parseErrf(path, "%v", err)
		}
		minFilter, err := o.OptInt("minFilter", FilterUnspecified, path+".minFilter")
		if err != nil {
			return parseErrf(path, "%v", err)
		}
		wrapS, err := o.OptInt("wrapS", WrapRepeat, path+".wrapS")
		if err != nil {
			return parseErrf(path, "%v", err)
		}
		wrapT, err := o.OptInt("wrapT", WrapRepeat, path+".wrapT")
		if err != nil {
			return parseErrf(path, "%v", err)
		}
		doc.samplers[i] = Sampler{
			Name:      doc.internString(name),
			MagFilter: magFilter,
			MinFilter: minFilter,
			WrapS:     wrapS,
			WrapT:     wrapT,
		}
	}
	return nil
}

func parseTextures(doc *Document, root jsonfield.Object) error {
	objs, err := jsonfield.ObjectArray(root, "textures", "root.textures")
	if err != nil {
		return parseErrf("root.textures", "%v", err)
	}
	doc.textures = make([]Texture, len(objs))
	for i, o := range objs {
		path := elemPath("root.textures", i)
		name, err := o.OptString("name", "", path+".name")
		if err != nil {
			return parseErrf(path, "%v", err)
		}
		samplerPtr, err := o.OptIntPtr("sampler", path+".sampler")
		if err != nil {
			return parseErrf(path, "%v", err)
		}
		sourcePtr, err := o.OptIntPtr("source", path+".source")
		if err != nil {
			return parseErrf(path, "%v", err)
		}
		sampler, source := -1, -1
		if samplerPtr != nil {
			sampler = *samplerPtr
		}
		if sourcePtr != nil {
			source = *sourcePtr
		}
		doc.textures[i] = Texture{Name: doc.internString(name), Sampler: sampler, Source: source}
	}
	return nil
}

func parseTextureRef(o jsonfield.Object, key, path string) (TextureRef, error) {
	raw, ok := o[key]
	if !ok {
		return TextureRef{Index: -1, TexCoord: 0}, nil
	}
	sub, err := jsonfield.ParseObject(raw, path+"."+key)
	if err != nil {
		return TextureRef{}, err
	}
	idx, err := sub.RequiredInt("index", path+"."+key+".index")
	if err != nil {
		return TextureRef{}, err
	}
	texCoord, err := sub.OptInt("texCoord", 0, path+"."+key+".texCoord")
	if err != nil {
		return TextureRef{}, err
	}
	return TextureRef{Index: idx, TexCoord: texCoord}, nil
}

func parseMaterials(doc *Document, root jsonfield.Object) error {
	objs, err := jsonfield.ObjectArray(root, "materials", "root.materials")
	if err != nil {
		return parseErrf("root.materials", "%v", err)
	}
	doc.materials = make([]Material, len(objs))
	for i, o := range objs {
		path := elemPath("root.materials", i)
		m, err := parseOneMaterial(doc, o, path)
		if err != nil {
			return err
		}
		doc.materials[i] = m
	}
	return nil
}

func parseOneMaterial(doc *Document, o jsonfield.Object, path string) (Material, error) {
	name, err := o.OptString("name", "", path+".name")
	if err != nil {
		return Material{}, parseErrf(path, "%v", err)
	}

	pbr := PBRMetallicRoughness{
		BaseColorFactor:          [4]float32{1, 1, 1, 1},
		MetallicFactor:           1,
		RoughnessFactor:          1,
		BaseColorTexture:         TextureRef{Index: -1},
		MetallicRoughnessTexture: TextureRef{Index: -1},
	}
	if raw, ok := o["pbrMetallicRoughness"]; ok {
		sub, err := jsonfield.ParseObject(raw, path+".pbrMetallicRoughness")
		if err != nil {
			return Material{}, parseErrf(path, "%v", err)
		}
		bc, err := jsonfield.FloatArray(sub, "baseColorFactor", 4, path+".pbrMetallicRoughness.baseColorFactor")
		if err != nil {
			return Material{}, parseErrf(path, "%v", err)
		}
		if bc != nil {
			copy(pbr.BaseColorFactor[:], bc)
		}
		pbr.MetallicFactor, err = sub.OptFloat32("metallicFactor", 1, path+".pbrMetallicRoughness.metallicFactor")
		if err != nil {
			return Material{}, parseErrf(path, "%v", err)
		}
		pbr.RoughnessFactor, err = sub.OptFloat32("roughnessFactor", 1, path+".pbrMetallicRoughness.roughnessFactor")
		if err != nil {
			return Material{}, parseErrf(path, "%v", err)
		}
		pbr.BaseColorTexture, err = parseTextureRef(sub, "baseColorTexture", path+".pbrMetallicRoughness")
		if err != nil {
			return Material{}, parseErrf(path, "%v", err)
		}
		pbr.MetallicRoughnessTexture, err = parseTextureRef(sub, "metallicRoughnessTexture", path+".pbrMetallicRoughness")
		if err != nil {
			return Material{}, parseErrf(path, "%v", err)
		}
	}

	normalTex, err := parseTextureRef(o, "normalTexture", path)
	if err != nil {
		return Material{}, parseErrf(path, "%v", err)
	}
	normalScale := float32(1)
	if raw, ok := o["normalTexture"]; ok {
		sub, err := jsonfield.ParseObject(raw, path+".normalTexture")
		if err != nil {
			return Material{}, parseErrf(path, "%v", err)
		}
		normalScale, err = sub.OptFloat32("scale", 1, path+".normalTexture.scale")
		if err != nil {
			return Material{}, parseErrf(path, "%v", err)
		}
	}

	occlusionTex, err := parseTextureRef(o, "occlusionTexture", path)
	if err != nil {
		return Material{}, parseErrf(path, "%v", err)
	}
	occlusionStrength := float32(1)
	if raw, ok := o["occlusionTexture"]; ok {
		sub, err := jsonfield.ParseObject(raw, path+".occlusionTexture")
		if err != nil {
			return Material{}, parseErrf(path, "%v", err)
		}
		occlusionStrength, err = sub.OptFloat32("strength", 1, path+".occlusionTexture.strength")
		if err != nil {
			return Material{}, parseErrf(path, "%v", err)
		}
	}

	emissiveTex, err := parseTextureRef(o, "emissiveTexture", path)
	if err != nil {
		return Material{}, parseErrf(path, "%v", err)
	}

	emissiveFactor, err := jsonfield.FloatArray(o, "emissiveFactor", 3, path+".emissiveFactor")
	if err != nil {
		return Material{}, parseErrf(path, "%v", err)
	}
	var ef [3]float32
	if emissiveFactor != nil {
		copy(ef[:], emissiveFactor)
	}

	alphaModeStr, err := o.OptString("alphaMode", "OPAQUE", path+".alphaMode")
	if err != nil {
		return Material{}, parseErrf(path, "%v", err)
	}
	if err := jsonfield.StringEnum(alphaModeStr, "alphaMode", path+".alphaMode", "OPAQUE", "MASK", "BLEND"); err != nil {
		return Material{}, parseErrf(path, "%v", err)
	}
	alphaMode := AlphaOpaque
	switch alphaModeStr {
	case "MASK":
		alphaMode = AlphaMask
	case "BLEND":
		alphaMode = AlphaBlend
	}

	alphaCutoff, err := o.OptFloat32("alphaCutoff", 0.5, path+".alphaCutoff")
	if err != nil {
		return Material{}, parseErrf(path, "%v", err)
	}
	doubleSided, err := o.OptBool("doubleSided", false, path+".doubleSided")
	if err != nil {
		return Material{}, parseErrf(path, "%v", err)
	}

	return Material{
		Name:             doc.internString(name),
		PBR:              pbr,
		NormalTexture:    NormalTextureRef{TextureRef: normalTex, Scale: normalScale},
		OcclusionTexture: OcclusionTextureRef{TextureRef: occlusionTex, Strength: occlusionStrength},
		EmissiveTexture:  emissiveTex,
		EmissiveFactor:   ef,
		AlphaMode:        alphaMode,
		AlphaCutoff:      alphaCutoff,
		DoubleSided:      doubleSided,
	}, nil
}

func parseAsset(doc *Document, root jsonfield.Object) error {
	raw, ok := root["asset"]
	if !ok {
		return parseErrf("root.asset", "missing required field \"asset\"")
	}
	o, err := jsonfield.ParseObject(raw, "root.asset")
	if err != nil {
		return parseErrf("root.asset", "%v", err)
	}
	version, err := o.String("version", "root.asset.version")
	if err != nil {
		return parseErrf("root.asset", "%v", err)
	}
	if len(version) > 7 {
		return parseErrf("root.asset.version", "version string %q exceeds 7 characters", version)
	}
	generator, err := o.OptString("generator", "", "root.asset.generator")
	if err != nil {
		return parseErrf("root.asset", "%v", err)
	}
	doc.asset = Asset{
		Version:       doc.internString(version),
		GeneratorName: doc.internString(generator),
	}
	return nil
}

func elemPath(base string, i int) string {
	return base + "[" + strconv.Itoa(i) + "]"
}

func intToU32(in []int) []uint32 {
	if in == nil {
		return nil
	}
	out := make([]uint32, len(in))
	for i, v := range in {
		out[i] = uint32(v)
	}
	return out
}
