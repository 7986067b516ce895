package arena

import (
	"reflect"
	"testing"
)

func TestArena_CopyStringGetString(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"ascii", "POSITION"},
		{"unicode", "héllo wörld"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New()
			ref := a.CopyString(tt.in)
			if !ref.Valid() {
				t.Fatalf("CopyString(%q) returned invalid ref", tt.in)
			}
			got, ok := a.GetString(ref)
			if !ok {
				t.Fatalf("GetString() ok = false, want true")
			}
			if got != tt.in {
				t.Errorf("GetString() = %q, want %q", got, tt.in)
			}
		})
	}
}

func TestArena_InvalidRef(t *testing.T) {
	a := New()
	if InvalidRef.Valid() {
		t.Fatal("InvalidRef.Valid() = true, want false")
	}
	got, ok := a.GetString(InvalidRef)
	if ok {
		t.Errorf("GetString(InvalidRef) ok = true, want false")
	}
	if got != "absent" {
		t.Errorf("GetString(InvalidRef) = %q, want \"absent\"", got)
	}
}

func TestArena_MultipleStringsIndependentRoundTrip(t *testing.T) {
	a := New()
	names := []string{"scene0", "node-root", "mesh.primary", ""}
	refs := make([]StringRef, len(names))
	for i, n := range names {
		refs[i] = a.CopyString(n)
	}
	for i, want := range names {
		got, ok := a.GetString(refs[i])
		if !ok {
			t.Fatalf("GetString(refs[%d]) ok = false", i)
		}
		if got != want {
			t.Errorf("GetString(refs[%d]) = %q, want %q", i, got, want)
		}
	}
}

func TestArena_GetString_corruptedRefOutOfBounds(t *testing.T) {
	a := New()
	a.CopyString("hi")
	bad := StringRef{Offset: 1000, Length: 5}
	got, ok := a.GetString(bad)
	if ok {
		t.Fatal("GetString(out-of-bounds ref) ok = true, want false")
	}
	if got != "absent" {
		t.Errorf("GetString(out-of-bounds ref) = %q, want \"absent\"", got)
	}
}

func TestIndexPool_PushSlice(t *testing.T) {
	p := NewIndexPool()
	r1, err := p.Push([]uint32{1, 2, 3})
	if err != nil {
		t.Fatalf("Push() error = %v", err)
	}
	r2, err := p.Push([]uint32{4, 5})
	if err != nil {
		t.Fatalf("Push() error = %v", err)
	}

	got1, ok := p.Slice(r1)
	if !ok || !reflect.DeepEqual(got1, []uint32{1, 2, 3}) {
		t.Errorf("Slice(r1) = %v, %v, want [1 2 3], true", got1, ok)
	}
	got2, ok := p.Slice(r2)
	if !ok || !reflect.DeepEqual(got2, []uint32{4, 5}) {
		t.Errorf("Slice(r2) = %v, %v, want [4 5], true", got2, ok)
	}
}

func TestIndexPool_PushEmpty(t *testing.T) {
	p := NewIndexPool()
	r, err := p.Push(nil)
	if err != nil {
		t.Fatalf("Push(nil) error = %v", err)
	}
	got, ok := p.Slice(r)
	if !ok {
		t.Fatal("Slice(empty range) ok = false, want true")
	}
	if len(got) != 0 {
		t.Errorf("Slice(empty range) = %v, want empty", got)
	}
}

func TestIndexPool_SliceOutOfBounds(t *testing.T) {
	p := NewIndexPool()
	p.Push([]uint32{1, 2})
	_, ok := p.Slice(Range{First: 0, Count: 5})
	if ok {
		t.Error("Slice(out-of-bounds range) ok = true, want false")
	}
}
