package gltf

import (
	"testing"

	"github.com/oxygltf/gltf/internal/arena"
)

func TestDocument_internStringGetStringRoundTrip(t *testing.T) {
	doc := newDocument()
	ref := doc.internString("CubeMesh")
	if doc.getString(ref) != "CubeMesh" {
		t.Errorf("getString() = %q, want %q", doc.getString(ref), "CubeMesh")
	}
}

func TestDocument_internString_emptyIsInvalidRef(t *testing.T) {
	doc := newDocument()
	ref := doc.internString("")
	if ref.Valid() {
		t.Error("internString(\"\") returned a valid ref, want InvalidRef")
	}
	if doc.getString(ref) != "" {
		t.Errorf("getString(InvalidRef) = %q, want \"\"", doc.getString(ref))
	}
}

func TestDocument_pushSliceIndicesRoundTrip(t *testing.T) {
	doc := newDocument()
	r, err := doc.pushIndices([]uint32{4, 5, 6})
	if err != nil {
		t.Fatalf("pushIndices() error = %v", err)
	}
	got := doc.sliceIndices(r)
	want := []uint32{4, 5, 6}
	if len(got) != len(want) {
		t.Fatalf("sliceIndices() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sliceIndices()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestDocument_outOfRangeGettersReturnZeroValue(t *testing.T) {
	doc := newDocument()

	if _, ok := doc.Node(0); ok {
		t.Error("Node(0) on empty document ok = true, want false")
	}
	if _, ok := doc.Mesh(0); ok {
		t.Error("Mesh(0) on empty document ok = true, want false")
	}
	if _, ok := doc.Accessor(0); ok {
		t.Error("Accessor(0) on empty document ok = true, want false")
	}
	if doc.SceneRoots(0) != nil {
		t.Error("SceneRoots(0) on empty document != nil")
	}
	if doc.NodeName(0) != "" {
		t.Error("NodeName(0) on empty document != \"\"")
	}
}

func TestDocument_meshPrimitivesRange(t *testing.T) {
	doc := newDocument()
	doc.primitives = make([]Primitive, 5)
	doc.meshes = []Mesh{{Primitives: arena.Range{First: 2, Count: 3}}}

	got := doc.MeshPrimitives(0)
	want := []int{2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("MeshPrimitives() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("MeshPrimitives()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
