package gltf

import "github.com/oxygltf/gltf/internal/arena"

// Document owns every parsed entity array, the shared string arena, and the
// shared index pool. All of it is released together when the Document is
// dropped; nothing returned from the query API outlives it.
type Document struct {
	arena *arena.Arena
	pool  *arena.IndexPool

	asset Asset

	scenes       []Scene
	defaultScene int // -1 if absent

	nodes      []Node
	meshes     []Mesh
	primAttrs  []PrimAttr
	primitives []Primitive

	accessors   []Accessor
	bufferViews []BufferView
	buffers     []Buffer

	materials []Material
	textures  []Texture
	images    []Image
	samplers  []Sampler

	dir string // source directory, for resolving relative URIs
}

func newDocument() *Document {
	return &Document{
		arena:        arena.New(),
		pool:         arena.NewIndexPool(),
		defaultScene: -1,
	}
}

func (d *Document) internString(s string) arena.StringRef {
	if s == "" {
		return arena.InvalidRef
	}
	return d.arena.CopyString(s)
}

func (d *Document) getString(r arena.StringRef) string {
	s, ok := d.arena.GetString(r)
	if !ok {
		return ""
	}
	return s
}

func (d *Document) pushIndices(values []uint32) (arena.Range, error) {
	return d.pool.Push(values)
}

func (d *Document) sliceIndices(r arena.Range) []uint32 {
	v, ok := d.pool.Slice(r)
	if !ok {
		return nil
	}
	return v
}

// SceneCount returns the number of parsed scenes.
func (d *Document) SceneCount() int { return len(d.scenes) }

// NodeCount returns the number of parsed nodes.
func (d *Document) NodeCount() int { return len(d.nodes) }

// MeshCount returns the number of parsed meshes.
func (d *Document) MeshCount() int { return len(d.meshes) }

// PrimitiveCount returns the number of parsed primitives, across all
// meshes.
func (d *Document) PrimitiveCount() int { return len(d.primitives) }

// AccessorCount returns the number of parsed accessors.
func (d *Document) AccessorCount() int { return len(d.accessors) }

// MaterialCount returns the number of parsed materials.
func (d *Document) MaterialCount() int { return len(d.materials) }

// TextureCount returns the number of parsed textures.
func (d *Document) TextureCount() int { return len(d.textures) }

// ImageCount returns the number of parsed images.
func (d *Document) ImageCount() int { return len(d.images) }

// SamplerCount returns the number of parsed samplers.
func (d *Document) SamplerCount() int { return len(d.samplers) }

// BufferCount returns the number of parsed buffers.
func (d *Document) BufferCount() int { return len(d.buffers) }

// BufferViewCount returns the number of parsed bufferViews.
func (d *Document) BufferViewCount() int { return len(d.bufferViews) }

// DefaultScene returns the index named by the root "scene" field, or -1
// when absent.
func (d *Document) DefaultScene() int { return d.defaultScene }

// AssetVersion returns the required asset.version string.
func (d *Document) AssetVersion() string { return d.getString(d.asset.Version) }

// AssetGenerator returns the optional asset.generator string, or "" when
// absent.
func (d *Document) AssetGenerator() string { return d.getString(d.asset.GeneratorName) }

// SceneName returns the name of scene i, or "" when unnamed. Out-of-range i
// returns "".
func (d *Document) SceneName(i int) string {
	if i < 0 || i >= len(d.scenes) {
		return ""
	}
	return d.getString(d.scenes[i].Name)
}

// SceneRoots returns the root node indices of scene i. Out-of-range i
// returns nil.
func (d *Document) SceneRoots(i int) []int {
	if i < 0 || i >= len(d.scenes) {
		return nil
	}
	return u32ToInt(d.sliceIndices(d.scenes[i].Roots))
}

// Node returns a copy of node i and true, or the zero Node and false when i
// is out of range.
func (d *Document) Node(i int) (Node, bool) {
	if i < 0 || i >= len(d.nodes) {
		return Node{}, false
	}
	return d.nodes[i], true
}

// NodeName returns the name of node i, or "" when unnamed or out of range.
func (d *Document) NodeName(i int) string {
	if i < 0 || i >= len(d.nodes) {
		return ""
	}
	return d.getString(d.nodes[i].Name)
}

// NodeChildren returns the child node indices of node i.
func (d *Document) NodeChildren(i int) []int {
	if i < 0 || i >= len(d.nodes) {
		return nil
	}
	return u32ToInt(d.sliceIndices(d.nodes[i].Children))
}

// Mesh returns a copy of mesh i and true, or the zero Mesh and false when i
// is out of range.
func (d *Document) Mesh(i int) (Mesh, bool) {
	if i < 0 || i >= len(d.meshes) {
		return Mesh{}, false
	}
	return d.meshes[i], true
}

// MeshName returns the name of mesh i, or "" when unnamed or out of range.
func (d *Document) MeshName(i int) string {
	if i < 0 || i >= len(d.meshes) {
		return ""
	}
	return d.getString(d.meshes[i].Name)
}

// MeshPrimitives returns the global primitive indices belonging to mesh i.
func (d *Document) MeshPrimitives(i int) []int {
	if i < 0 || i >= len(d.meshes) {
		return nil
	}
	r := d.meshes[i].Primitives
	out := make([]int, r.Count)
	for k := range out {
		out[k] = int(r.First) + k
	}
	return out
}

// Primitive returns a copy of primitive i and true, or the zero Primitive
// and false when i is out of range.
func (d *Document) Primitive(i int) (Primitive, bool) {
	if i < 0 || i >= len(d.primitives) {
		return Primitive{}, false
	}
	return d.primitives[i], true
}

// PrimitiveAttrCount returns the number of attributes primitive i carries.
func (d *Document) PrimitiveAttrCount(i int) int {
	if i < 0 || i >= len(d.primitives) {
		return 0
	}
	return int(d.primitives[i].Attributes.Count)
}

// PrimitiveAttr returns the attribute at index k within primitive i's
// attribute range.
func (d *Document) PrimitiveAttr(i, k int) (PrimAttr, bool) {
	if i < 0 || i >= len(d.primitives) {
		return PrimAttr{}, false
	}
	r := d.primitives[i].Attributes
	if k < 0 || uint32(k) >= r.Count {
		return PrimAttr{}, false
	}
	return d.primAttrs[int(r.First)+k], true
}

// FindPrimitiveAttr locates the accessor index bound to (semantic, set) on
// primitive i, or -1 when not present.
func (d *Document) FindPrimitiveAttr(i int, semantic PrimAttrSemantic, set int) int {
	if i < 0 || i >= len(d.primitives) {
		return -1
	}
	r := d.primitives[i].Attributes
	for k := uint32(0); k < r.Count; k++ {
		a := d.primAttrs[int(r.First)+int(k)]
		if a.Semantic == semantic && a.Set == set {
			return a.Accessor
		}
	}
	return -1
}

// Accessor returns a copy of accessor i and true, or the zero Accessor and
// false when i is out of range.
func (d *Document) Accessor(i int) (Accessor, bool) {
	if i < 0 || i >= len(d.accessors) {
		return Accessor{}, false
	}
	return d.accessors[i], true
}

// BufferView returns a copy of bufferView i and true, or the zero
// BufferView and false when i is out of range.
func (d *Document) BufferView(i int) (BufferView, bool) {
	if i < 0 || i >= len(d.bufferViews) {
		return BufferView{}, false
	}
	return d.bufferViews[i], true
}

// Buffer returns a copy of buffer i's metadata and true, or the zero Buffer
// and false when i is out of range. The returned Data slice aliases
// document memory.
func (d *Document) Buffer(i int) (Buffer, bool) {
	if i < 0 || i >= len(d.buffers) {
		return Buffer{}, false
	}
	return d.buffers[i], true
}

// Material returns a copy of material i and true, or the zero Material and
// false when i is out of range.
func (d *Document) Material(i int) (Material, bool) {
	if i < 0 || i >= len(d.materials) {
		return Material{}, false
	}
	return d.materials[i], true
}

// MaterialName returns the name of material i, or "" when unnamed or out
// of range.
func (d *Document) MaterialName(i int) string {
	if i < 0 || i >= len(d.materials) {
		return ""
	}
	return d.getString(d.materials[i].Name)
}

// Texture returns a copy of texture i and true, or the zero Texture and
// false when i is out of range.
func (d *Document) Texture(i int) (Texture, bool) {
	if i < 0 || i >= len(d.textures) {
		return Texture{}, false
	}
	return d.textures[i], true
}

// Image returns a copy of image i and true, or the zero Image and false
// when i is out of range.
func (d *Document) Image(i int) (Image, bool) {
	if i < 0 || i >= len(d.images) {
		return Image{}, false
	}
	return d.images[i], true
}

// ImageResolvedURI returns the filesystem path computed for a URI-kind
// image, or "" for any other kind or an out-of-range index.
func (d *Document) ImageResolvedURI(i int) string {
	if i < 0 || i >= len(d.images) {
		return ""
	}
	return d.getString(d.images[i].Resolved)
}

// Sampler returns a copy of sampler i and true, or the zero Sampler and
// false when i is out of range.
func (d *Document) Sampler(i int) (Sampler, bool) {
	if i < 0 || i >= len(d.samplers) {
		return Sampler{}, false
	}
	return d.samplers[i], true
}

func u32ToInt(in []uint32) []int {
	if in == nil {
		return nil
	}
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}
