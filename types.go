// Package gltf is a read-only loader and query library for glTF 2.0 assets.
// It parses standalone JSON (.gltf, with external buffers or inline data
// URIs) and binary container (.glb) files into an in-memory Document whose
// entities are addressed by integer handle, and whose vertex/index data is
// exposed as bounds-checked byte spans.
//
// The package deliberately does not write glTF, render anything, or
// validate against the full glTF JSON schema.
package gltf

import "github.com/oxygltf/gltf/internal/arena"

// Component type constants (glTF accessor.componentType).
const (
	ComponentByte          = 5120
	ComponentUnsignedByte  = 5121
	ComponentShort         = 5122
	ComponentUnsignedShort = 5123
	ComponentUnsignedInt   = 5125
	ComponentFloat         = 5126
)

// Element type constants (glTF accessor.type), stored as a small enum
// instead of the wire string once parsed.
type ElementType uint8

const (
	ElementScalar ElementType = iota
	ElementVec2
	ElementVec3
	ElementVec4
	ElementMat2
	ElementMat3
	ElementMat4
)

func (t ElementType) String() string {
	switch t {
	case ElementScalar:
		return "SCALAR"
	case ElementVec2:
		return "VEC2"
	case ElementVec3:
		return "VEC3"
	case ElementVec4:
		return "VEC4"
	case ElementMat2:
		return "MAT2"
	case ElementMat3:
		return "MAT3"
	case ElementMat4:
		return "MAT4"
	default:
		return "UNKNOWN"
	}
}

// ComponentCount returns the number of scalar components an element of
// this type holds (1, 2, 3, 4, 9, or 16).
func (t ElementType) ComponentCount() int {
	switch t {
	case ElementScalar:
		return 1
	case ElementVec2:
		return 2
	case ElementVec3:
		return 3
	case ElementVec4:
		return 4
	case ElementMat2:
		return 4
	case ElementMat3:
		return 9
	case ElementMat4:
		return 16
	default:
		return 0
	}
}

// Primitive topology modes (glTF primitive.mode).
const (
	ModePoints        = 0
	ModeLines         = 1
	ModeLineLoop      = 2
	ModeLineStrip     = 3
	ModeTriangles     = 4
	ModeTriangleStrip = 5
	ModeTriangleFan   = 6
)

// Sampler filter constants (glTF sampler.magFilter/minFilter).
const (
	FilterUnspecified        = -1
	FilterNearest            = 9728
	FilterLinear             = 9729
	FilterNearestMipNearest  = 9984
	FilterLinearMipNearest   = 9985
	FilterNearestMipLinear   = 9986
	FilterLinearMipLinear    = 9987
)

// Sampler wrap constants (glTF sampler.wrapS/wrapT).
const (
	WrapClampToEdge    = 33071
	WrapMirroredRepeat = 33648
	WrapRepeat         = 10497
)

// AlphaMode constants (glTF material.alphaMode).
type AlphaMode uint8

const (
	AlphaOpaque AlphaMode = iota
	AlphaMask
	AlphaBlend
)

// PrimAttrSemantic identifies a normalized attribute semantic tag.
type PrimAttrSemantic uint8

const (
	SemanticUnknown PrimAttrSemantic = iota
	SemanticPosition
	SemanticNormal
	SemanticTangent
	SemanticTexCoord
	SemanticColor
	SemanticJoints
	SemanticWeights
)

// Asset holds the required version string and optional generator name.
type Asset struct {
	Version       arena.StringRef
	GeneratorName arena.StringRef
}

// Scene is a named set of root nodes (a range into the shared index pool).
type Scene struct {
	Name  arena.StringRef
	Roots arena.Range
}

// Node is one entry in the scene graph: an optional mesh, a child range,
// and a local transform expressed either as an explicit matrix or as TRS.
type Node struct {
	Name     arena.StringRef
	Mesh     int // -1 if absent
	Children arena.Range

	HasMatrix bool
	Matrix    [16]float32 // valid only when HasMatrix

	Translation [3]float32
	Rotation    [4]float32 // x, y, z, w
	Scale       [3]float32
}

// Mesh is a named collection of primitives (a range into the flat
// primitive array).
type Mesh struct {
	Name       arena.StringRef
	Primitives arena.Range
}

// Primitive is one draw-call-sized unit of geometry.
type Primitive struct {
	Attributes arena.Range // range into the flat PrimAttr array
	Indices    int         // accessor index, -1 if absent
	Mode       int
	Material   int // -1 if absent
}

// PrimAttr binds one vertex attribute semantic (with its set index, e.g.
// TEXCOORD_1 → Semantic=SemanticTexCoord, Set=1) to an accessor.
type PrimAttr struct {
	Semantic PrimAttrSemantic
	Set      int
	Accessor int
}

// Accessor describes how to interpret count elements starting at ByteOffset
// inside BufferView.
type Accessor struct {
	BufferView    int // -1 when unused (no byteOffset allowed in that case)
	ByteOffset    int
	ComponentType int
	Normalized    bool
	Count         int
	Type          ElementType
}

// BufferView is an unconditioned byte slice of a Buffer.
type BufferView struct {
	Buffer     int
	ByteOffset int
	ByteLength int
	ByteStride int // 0 means tightly packed
	Target     int // 0 when absent (valid glTF targets are nonzero)
}

// Buffer is a raw byte array, loaded from a URI, a data URI, or the GLB BIN
// chunk.
type Buffer struct {
	URI        arena.StringRef
	ByteLength int
	Data       []byte
}

// TextureRef is a (texture index, UV set) pair with -1 meaning absent.
type TextureRef struct {
	Index    int
	TexCoord int
}

// NormalTextureRef adds the normal-map scale factor to a TextureRef.
type NormalTextureRef struct {
	TextureRef
	Scale float32
}

// OcclusionTextureRef adds the occlusion strength factor to a TextureRef.
type OcclusionTextureRef struct {
	TextureRef
	Strength float32
}

// PBRMetallicRoughness is the metallic-roughness material model.
type PBRMetallicRoughness struct {
	BaseColorFactor          [4]float32
	BaseColorTexture         TextureRef
	MetallicFactor           float32
	RoughnessFactor          float32
	MetallicRoughnessTexture TextureRef
}

// Material is a named PBR metallic-roughness material with optional
// auxiliary texture maps.
type Material struct {
	Name             arena.StringRef
	PBR              PBRMetallicRoughness
	NormalTexture    NormalTextureRef
	OcclusionTexture OcclusionTextureRef
	EmissiveTexture  TextureRef
	EmissiveFactor   [3]float32
	AlphaMode        AlphaMode
	AlphaCutoff      float32
	DoubleSided      bool
}

// Texture combines an optional sampler and an optional image source.
type Texture struct {
	Name    arena.StringRef
	Sampler int // -1 if absent
	Source  int // -1 if absent
}

// ImageKind classifies how an Image's bytes are reached.
type ImageKind uint8

const (
	ImageNone ImageKind = iota
	ImageURI
	ImageDataURI
	ImageBufferView
)

// Image is a texture image source: either a filesystem-ish URI, an inline
// data URI, or bytes living in a bufferView (MIME type required in that
// case).
type Image struct {
	Name       arena.StringRef
	Kind       ImageKind
	URI        arena.StringRef // raw URI text for ImageURI/ImageDataURI
	MimeType   arena.StringRef
	BufferView int // -1 if Kind != ImageBufferView
	Resolved   arena.StringRef // joined path, only for ImageURI
}

// Sampler defines texture sampling parameters.
type Sampler struct {
	Name      arena.StringRef
	MagFilter int // FilterUnspecified if absent
	MinFilter int // FilterUnspecified if absent
	WrapS     int
	WrapT     int
}

// nodeState is the DFS visitation state used by the world-matrix evaluator.
type nodeState uint8

const (
	stateUnvisited nodeState = iota
	stateVisiting
	stateDone
)
