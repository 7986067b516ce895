package gltf

// TriangleCallback is invoked once per triangle during IterateTriangles.
// Returning false stops iteration early (not an error).
type TriangleCallback func(i0, i1, i2 uint32, triangleIndex int) (cont bool)

// indexReader abstracts "where do triangle vertex indices come from": a
// decoded indices accessor, or the identity mapping for a non-indexed
// primitive.
type indexReader struct {
	span          Span
	componentType int
	indexed       bool
	count         int
}

func (r indexReader) at(i int) uint32 {
	if !r.indexed {
		return uint32(i)
	}
	return ReadIndex(r.span, r.componentType, i)
}

// primitiveIndexReader returns the index source of a primitive, whose count
// is the indices accessor's count if indexed, else the POSITION accessor's
// count.
func (d *Document) primitiveIndexReader(primIndex int) (indexReader, error) {
	path := elemPath("root.primitives", primIndex)
	prim, ok := d.Primitive(primIndex)
	if !ok {
		return indexReader{}, rangeErrf(path, "primitive index %d out of range", primIndex)
	}

	posAcc := d.FindPrimitiveAttr(primIndex, SemanticPosition, 0)
	if posAcc < 0 {
		return indexReader{}, invalidErrf(path, "primitive has no POSITION attribute")
	}
	posAccessor, ok := d.Accessor(posAcc)
	if !ok {
		return indexReader{}, rangeErrf(path, "POSITION accessor index %d out of range", posAcc)
	}

	if prim.Indices < 0 {
		return indexReader{indexed: false, count: posAccessor.Count}, nil
	}

	idxPath := elemPath("root.accessors", prim.Indices)
	idxAcc, ok := d.Accessor(prim.Indices)
	if !ok {
		return indexReader{}, rangeErrf(path, "indices accessor index %d out of range", prim.Indices)
	}
	if idxAcc.Type != ElementScalar {
		return indexReader{}, parseErrf(idxPath, "indices accessor must be SCALAR")
	}
	if idxAcc.Normalized {
		return indexReader{}, parseErrf(idxPath, "indices accessor must not be normalized")
	}
	switch idxAcc.ComponentType {
	case ComponentUnsignedByte, ComponentUnsignedShort, ComponentUnsignedInt:
	default:
		return indexReader{}, parseErrf(idxPath, "indices accessor component type must be U8, U16, or U32")
	}

	span, err := d.AccessorSpan(prim.Indices)
	if err != nil {
		return indexReader{}, err
	}

	return indexReader{
		span:          span,
		componentType: idxAcc.ComponentType,
		indexed:       true,
		count:         idxAcc.Count,
	}, nil
}

// IterateTriangles walks the triangles of primitive primIndex under its
// topology mode, invoking cb for each with indices into the POSITION
// accessor. Every emitted index is range-checked against the POSITION
// accessor's count before the callback sees it.
func (d *Document) IterateTriangles(primIndex int, cb TriangleCallback) error {
	path := elemPath("root.primitives", primIndex)
	prim, ok := d.Primitive(primIndex)
	if !ok {
		return rangeErrf(path, "primitive index %d out of range", primIndex)
	}
	if prim.Mode != ModeTriangles && prim.Mode != ModeTriangleStrip && prim.Mode != ModeTriangleFan {
		return invalidErrf(path, "primitive mode %d is not a triangle topology", prim.Mode)
	}

	posAcc := d.FindPrimitiveAttr(primIndex, SemanticPosition, 0)
	posAccessor, ok := d.Accessor(posAcc)
	if !ok {
		return invalidErrf(path, "primitive has no POSITION attribute")
	}

	idx, err := d.primitiveIndexReader(primIndex)
	if err != nil {
		return err
	}
	n := idx.count

	emit := func(a, b, c uint32, t int) (bool, error) {
		for _, v := range [3]uint32{a, b, c} {
			if int(v) >= posAccessor.Count {
				return false, rangeErrf(path, "vertex index %d exceeds POSITION count %d", v, posAccessor.Count)
			}
		}
		return cb(a, b, c, t), nil
	}

	switch prim.Mode {
	case ModeTriangles:
		if n%3 != 0 {
			return parseErrf(path, "TRIANGLES vertex/index count %d is not a multiple of 3", n)
		}
		for t := 0; t*3+2 < n; t++ {
			cont, err := emit(idx.at(3*t), idx.at(3*t+1), idx.at(3*t+2), t)
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}
		}
	case ModeTriangleStrip:
		if n < 3 {
			return nil
		}
		// Even t: (t, t+1, t+2). Odd t: (t, t-1, t+2) — the first two of
		// the (t-1, t, t+2) window swapped to flip winding back to CCW.
		for t := 0; t < n-2; t++ {
			var a, b, c uint32
			if t%2 == 0 {
				a, b, c = idx.at(t), idx.at(t+1), idx.at(t+2)
			} else {
				a, b, c = idx.at(t), idx.at(t-1), idx.at(t+2)
			}
			cont, err := emit(a, b, c, t)
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}
		}
	case ModeTriangleFan:
		if n < 3 {
			return nil
		}
		for t := 0; t < n-2; t++ {
			cont, err := emit(idx.at(0), idx.at(t+1), idx.at(t+2), t)
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}
		}
	}
	return nil
}
