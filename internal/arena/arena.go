// Package arena implements the string arena and shared index pool that every
// parsed glTF document is built on top of. A document owns exactly one Arena
// and one IndexPool; both grow geometrically and are freed together with the
// document that owns them.
package arena

import "fmt"

// InvalidRef is the sentinel StringRef meaning "no string". It round-trips
// through GetString as "absent".
var InvalidRef = StringRef{Offset: 0xFFFFFFFF}

// StringRef is a non-owning reference into an Arena's backing buffer.
type StringRef struct {
	Offset uint32
	Length uint32
}

// Valid reports whether r is anything other than the absent sentinel.
func (r StringRef) Valid() bool {
	return r.Offset != InvalidRef.Offset
}

// Arena is a growable byte buffer that owns every string copied into a
// document. Strings are stored NUL-terminated so GetString can hand back a
// plain Go string without re-scanning for a terminator on every read.
type Arena struct {
	buf []byte
}

// New returns an empty Arena with a small initial capacity.
func New() *Arena {
	return &Arena{buf: make([]byte, 0, 256)}
}

// CopyString copies s into the arena (with a trailing NUL) and returns a
// reference to it. An empty string still gets a valid StringRef so callers
// can distinguish "absent" (InvalidRef) from "present but empty".
func (a *Arena) CopyString(s string) StringRef {
	off := uint32(len(a.buf))
	a.buf = append(a.buf, s...)
	a.buf = append(a.buf, 0)
	return StringRef{Offset: off, Length: uint32(len(s))}
}

// GetString resolves a StringRef back into a Go string. An invalid or
// corrupted reference returns ("absent", false).
func (a *Arena) GetString(r StringRef) (string, bool) {
	if !r.Valid() {
		return "absent", false
	}
	end := uint64(r.Offset) + uint64(r.Length) + 1
	if end > uint64(len(a.buf)) {
		return "absent", false
	}
	return string(a.buf[r.Offset : r.Offset+r.Length]), true
}

// Size returns the number of bytes currently held by the arena.
func (a *Arena) Size() int {
	return len(a.buf)
}

// IndexPool is the single shared pool of uint32 indices backing every
// variable-length list in a document (scene roots, node children). Lists are
// addressed as half-open [First, First+Count) ranges into this pool.
type IndexPool struct {
	data []uint32
}

// NewIndexPool returns an empty IndexPool.
func NewIndexPool() *IndexPool {
	return &IndexPool{data: make([]uint32, 0, 64)}
}

// Range is a half-open [First, First+Count) span into an IndexPool.
type Range struct {
	First uint32
	Count uint32
}

// Push appends values to the pool and returns the Range they now occupy.
// Pushing zero values returns a valid, empty Range anchored at the pool's
// current length.
func (p *IndexPool) Push(values []uint32) (Range, error) {
	if uint64(len(p.data))+uint64(len(values)) > 0xFFFFFFFF {
		return Range{}, fmt.Errorf("arena: index pool would exceed 2^32-1 entries")
	}
	first := uint32(len(p.data))
	p.data = append(p.data, values...)
	return Range{First: first, Count: uint32(len(values))}, nil
}

// Slice returns the pool entries covered by r. The slice aliases the pool's
// backing array and must not be retained past the pool's lifetime.
func (p *IndexPool) Slice(r Range) ([]uint32, bool) {
	end := uint64(r.First) + uint64(r.Count)
	if end > uint64(len(p.data)) {
		return nil, false
	}
	return p.data[r.First:r.First+r.Count], true
}

// Len returns the number of uint32 entries currently stored.
func (p *IndexPool) Len() int {
	return len(p.data)
}
