package gltf

import "math"

// Span is a non-owning view into document-owned bytes: count elements of
// elemSize bytes each, stride bytes apart, starting at ptr. ptr is nil when
// count is 0 or the underlying buffer carries no data.
type Span struct {
	data     []byte // aliases the owning Buffer's Data; ptr = data[offset:]
	offset   int
	Count    int
	Stride   int
	ElemSize int
}

// Valid reports whether the span has any addressable bytes.
func (s Span) Valid() bool { return s.data != nil }

// Element returns the raw bytes of element i (length ElemSize). It does not
// check i against [0, Count) — callers must range-check first, as this is a
// hot path with no room for error-return overhead; it panics only when the
// computed range runs off the end of the underlying buffer.
func (s Span) Element(i int) []byte {
	start := s.offset + i*s.Stride
	return s.data[start : start+s.ElemSize]
}

func componentSize(componentType int) int {
	switch componentType {
	case ComponentByte, ComponentUnsignedByte:
		return 1
	case ComponentShort, ComponentUnsignedShort:
		return 2
	case ComponentUnsignedInt, ComponentFloat:
		return 4
	}
	return 0
}

// AccessorSpan computes and validates the byte span backing accessor i. It
// implements the stride/elemSize/byte-range arithmetic: bufferView and
// buffer lookups are range-checked, stride is taken from the bufferView
// (falling back to the tightly-packed element size), and the full
// [byteOffset, byteOffset+(count-1)*stride+elemSize) range is checked
// against the bufferView's declared length.
func (d *Document) AccessorSpan(i int) (Span, error) {
	path := elemPath("root.accessors", i)
	acc, ok := d.Accessor(i)
	if !ok {
		return Span{}, rangeErrf(path, "accessor index %d out of range", i)
	}

	compCount := acc.Type.ComponentCount()
	compSize := componentSize(acc.ComponentType)
	if compCount == 0 || compSize == 0 {
		return Span{}, invalidErrf(path, "malformed accessor type/componentType")
	}
	elemSize := compCount * compSize

	if acc.BufferView < 0 {
		if acc.Count == 0 {
			return Span{ElemSize: elemSize}, nil
		}
		return Span{}, invalidErrf(path, "accessor has no bufferView")
	}

	bvPath := elemPath("root.bufferViews", acc.BufferView)
	bv, ok := d.BufferView(acc.BufferView)
	if !ok {
		return Span{}, rangeErrf(path, "bufferView index %d out of range", acc.BufferView)
	}

	stride := bv.ByteStride
	if stride == 0 {
		stride = elemSize
	}
	if stride < elemSize {
		return Span{}, parseErrf(bvPath, "byteStride %d is less than element size %d", stride, elemSize)
	}
	if acc.ByteOffset < 0 || acc.ByteOffset > bv.ByteLength {
		return Span{}, rangeErrf(path, "byteOffset %d exceeds bufferView byteLength %d", acc.ByteOffset, bv.ByteLength)
	}

	if acc.Count > 0 {
		need := acc.ByteOffset + (acc.Count-1)*stride + elemSize
		if need < 0 || need > bv.ByteLength {
			return Span{}, rangeErrf(path, "accessor range %d exceeds bufferView byteLength %d", need, bv.ByteLength)
		}
	}

	buf, ok := d.Buffer(bv.Buffer)
	if !ok {
		return Span{}, rangeErrf(bvPath, "buffer index %d out of range", bv.Buffer)
	}
	if acc.Count == 0 || buf.Data == nil {
		return Span{Count: acc.Count, Stride: stride, ElemSize: elemSize}, nil
	}

	totalOffset := bv.ByteOffset + acc.ByteOffset
	if totalOffset+(acc.Count-1)*stride+elemSize > len(buf.Data) {
		return Span{}, rangeErrf(path, "buffer %d is shorter than the bufferView it backs", bv.Buffer)
	}

	return Span{
		data:     buf.Data,
		offset:   totalOffset,
		Count:    acc.Count,
		Stride:   stride,
		ElemSize: elemSize,
	}, nil
}

// ReadComponent decodes scalar component k (0-based within an element) of
// element i in span s to a float32, applying the glTF normalization rules
// for componentType/normalized.
func ReadComponent(s Span, componentType int, normalized bool, i, k int) float32 {
	elem := s.Element(i)
	size := componentSize(componentType)
	b := elem[k*size : k*size+size]

	switch componentType {
	case ComponentFloat:
		bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
		return math.Float32frombits(bits)
	case ComponentUnsignedByte:
		v := b[0]
		if normalized {
			return float32(v) / 255.0
		}
		return float32(v)
	case ComponentUnsignedShort:
		v := uint16(b[0]) | uint16(b[1])<<8
		if normalized {
			return float32(v) / 65535.0
		}
		return float32(v)
	case ComponentUnsignedInt:
		v := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
		if normalized {
			return float32(v) / 4294967295.0
		}
		return float32(v)
	case ComponentByte:
		v := int8(b[0])
		if normalized {
			if v == -128 {
				return -1.0
			}
			return float32(v) / 127.0
		}
		return float32(v)
	case ComponentShort:
		v := int16(uint16(b[0]) | uint16(b[1])<<8)
		if normalized {
			if v == -32768 {
				return -1.0
			}
			return float32(v) / 32767.0
		}
		return float32(v)
	}
	return 0
}

// ReadIndex decodes index element i of an indices span (which must be
// SCALAR U8/U16/U32, non-normalized) to a uint32.
func ReadIndex(s Span, componentType int, i int) uint32 {
	elem := s.Element(i)
	switch componentType {
	case ComponentUnsignedByte:
		return uint32(elem[0])
	case ComponentUnsignedShort:
		return uint32(elem[0]) | uint32(elem[1])<<8
	case ComponentUnsignedInt:
		return uint32(elem[0]) | uint32(elem[1])<<8 | uint32(elem[2])<<16 | uint32(elem[3])<<24
	}
	return 0
}

// ReadVec3 decodes element i of span s (assumed VEC3) into its three float
// components.
func ReadVec3(s Span, componentType int, normalized bool, i int) [3]float32 {
	return [3]float32{
		ReadComponent(s, componentType, normalized, i, 0),
		ReadComponent(s, componentType, normalized, i, 1),
		ReadComponent(s, componentType, normalized, i, 2),
	}
}
