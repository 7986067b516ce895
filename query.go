package gltf

// AABB is an axis-aligned bounding box: componentwise min/max over a set of
// points.
type AABB struct {
	Min [3]float32
	Max [3]float32
}

// LocalMatrix returns node i's local transform (explicit matrix or T·R·S),
// or the identity matrix and false when i is out of range.
func (d *Document) LocalMatrix(i int) ([16]float32, bool) {
	n, ok := d.Node(i)
	if !ok {
		return identityMatrix(), false
	}
	return localMatrix(n), true
}

// AccessorAABB computes the bounding box over a VEC3 accessor's positions.
// Returns an error for non-VEC3 accessors or an invalid span.
func (d *Document) AccessorAABB(accessorIndex int) (AABB, error) {
	path := elemPath("root.accessors", accessorIndex)
	acc, ok := d.Accessor(accessorIndex)
	if !ok {
		return AABB{}, rangeErrf(path, "accessor index %d out of range", accessorIndex)
	}
	if acc.Type != ElementVec3 {
		return AABB{}, invalidErrf(path, "AABB requires a VEC3 accessor")
	}
	span, err := d.AccessorSpan(accessorIndex)
	if err != nil {
		return AABB{}, err
	}
	if span.Count == 0 {
		return AABB{}, nil
	}

	first := ReadVec3(span, acc.ComponentType, acc.Normalized, 0)
	box := AABB{Min: first, Max: first}
	for i := 1; i < span.Count; i++ {
		v := ReadVec3(span, acc.ComponentType, acc.Normalized, i)
		for k := 0; k < 3; k++ {
			if v[k] < box.Min[k] {
				box.Min[k] = v[k]
			}
			if v[k] > box.Max[k] {
				box.Max[k] = v[k]
			}
		}
	}
	return box, nil
}

// ReadAccessorElement decodes element elem of accessor i into out and
// returns the number of components written. out must have room for the
// accessor's full component count.
func (d *Document) ReadAccessorElement(i, elem int, out []float32) (int, error) {
	path := elemPath("root.accessors", i)
	acc, ok := d.Accessor(i)
	if !ok {
		return 0, rangeErrf(path, "accessor index %d out of range", i)
	}
	compCount := acc.Type.ComponentCount()
	if len(out) < compCount {
		return 0, invalidErrf(path, "output capacity %d is less than component count %d", len(out), compCount)
	}
	span, err := d.AccessorSpan(i)
	if err != nil {
		return 0, err
	}
	if elem < 0 || elem >= span.Count {
		return 0, rangeErrf(path, "element index %d out of range 0..%d", elem, span.Count)
	}
	for k := 0; k < compCount; k++ {
		out[k] = ReadComponent(span, acc.ComponentType, acc.Normalized, elem, k)
	}
	return compCount, nil
}

// ReadPrimitiveIndex decodes index k of primitive primIndex's index stream
// (the indices accessor when present, else the identity mapping over
// POSITION vertices).
func (d *Document) ReadPrimitiveIndex(primIndex, k int) (uint32, error) {
	r, err := d.primitiveIndexReader(primIndex)
	if err != nil {
		return 0, err
	}
	if k < 0 || k >= r.count {
		return 0, rangeErrf(elemPath("root.primitives", primIndex), "index %d out of range 0..%d", k, r.count)
	}
	return r.at(k), nil
}

// PrimitiveIndexCount returns the number of indices (or vertices, for a
// non-indexed primitive) a triangle iteration over primIndex will draw
// from.
func (d *Document) PrimitiveIndexCount(primIndex int) (int, error) {
	r, err := d.primitiveIndexReader(primIndex)
	if err != nil {
		return 0, err
	}
	return r.count, nil
}
