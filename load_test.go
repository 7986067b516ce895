package gltf

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_planeWithExternalBin(t *testing.T) {
	dir := t.TempDir()
	bin := float32LEBytes([]float32{
		0, 0, 0,
		1, 0, 0,
		1, 1, 0,
		0, 1, 0,
	})
	indices := uint16LEBytes([]uint16{0, 1, 2, 0, 2, 3})
	combined := append(append([]byte{}, bin...), indices...)
	if err := os.WriteFile(filepath.Join(dir, "plane.bin"), combined, 0o644); err != nil {
		t.Fatalf("WriteFile(bin): %v", err)
	}

	doc := `{
		"asset": {"version": "2.0"},
		"scene": 0,
		"scenes": [{"nodes": [0]}],
		"nodes": [{"mesh": 0}],
		"meshes": [{"primitives": [{"attributes": {"POSITION": 0}, "indices": 1, "mode": 4}]}],
		"accessors": [
			{"bufferView": 0, "componentType": 5126, "count": 4, "type": "VEC3"},
			{"bufferView": 1, "componentType": 5123, "count": 6, "type": "SCALAR"}
		],
		"bufferViews": [
			{"buffer": 0, "byteOffset": 0, "byteLength": 48},
			{"buffer": 0, "byteOffset": 48, "byteLength": 12}
		],
		"buffers": [{"byteLength": 60, "uri": "plane.bin"}]
	}`
	path := filepath.Join(dir, "plane.gltf")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile(gltf): %v", err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if d.BufferCount() != 1 {
		t.Fatalf("BufferCount() = %d, want 1", d.BufferCount())
	}
	buf, _ := d.Buffer(0)
	if len(buf.Data) != 60 {
		t.Errorf("Buffer(0).Data length = %d, want 60", len(buf.Data))
	}

	count, err := d.PrimitiveIndexCount(0)
	if err != nil {
		t.Fatalf("PrimitiveIndexCount() error = %v", err)
	}
	if count != 6 {
		t.Errorf("PrimitiveIndexCount() = %d, want 6", count)
	}
}

func TestLoad_glbContainer(t *testing.T) {
	dir := t.TempDir()
	binData := float32LEBytes(trianglePositions)

	jsonDoc := []byte(`{
		"asset": {"version": "2.0"},
		"scene": 0,
		"scenes": [{"nodes": [0]}],
		"nodes": [{"mesh": 0}],
		"meshes": [{"primitives": [{"attributes": {"POSITION": 0}}]}],
		"accessors": [{"bufferView": 0, "componentType": 5126, "count": 3, "type": "VEC3"}],
		"bufferViews": [{"buffer": 0, "byteOffset": 0, "byteLength": 36}],
		"buffers": [{"byteLength": 36}]
	}`)

	glbData := buildGLBForTest(t, jsonDoc, binData)
	path := filepath.Join(dir, "triangle.glb")
	if err := os.WriteFile(path, glbData, 0o644); err != nil {
		t.Fatalf("WriteFile(glb): %v", err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	span, err := d.AccessorSpan(0)
	if err != nil {
		t.Fatalf("AccessorSpan() error = %v", err)
	}
	if v := ReadVec3(span, ComponentFloat, false, 2); v != [3]float32{0, 1, 0} {
		t.Errorf("vertex 2 = %v, want (0,1,0)", v)
	}
}

func TestLoad_nonexistentFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.gltf"))
	if err == nil {
		t.Fatal("Load() on missing file = nil error, want error")
	}
	gerr, ok := err.(*Error)
	if !ok {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if gerr.Kind != IO {
		t.Errorf("Kind = %v, want IO", gerr.Kind)
	}
}

func TestLoad_doubleLoadIdenticalCounts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tri.gltf")
	if err := os.WriteFile(path, []byte(minimalTriangleJSON()), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	d1, err := Load(path)
	if err != nil {
		t.Fatalf("Load() #1 error = %v", err)
	}
	d2, err := Load(path)
	if err != nil {
		t.Fatalf("Load() #2 error = %v", err)
	}
	if d1.SceneCount() != d2.SceneCount() || d1.NodeCount() != d2.NodeCount() ||
		d1.MeshCount() != d2.MeshCount() || d1.AccessorCount() != d2.AccessorCount() {
		t.Errorf("repeated Load() produced different counts: %+v vs %+v", d1, d2)
	}
}

// buildGLBForTest assembles a minimal, valid GLB byte stream for Load tests.
func buildGLBForTest(t *testing.T, jsonBody, binBody []byte) []byte {
	t.Helper()
	pad := func(b []byte) []byte {
		for len(b)%4 != 0 {
			b = append(b, ' ')
		}
		return b
	}
	padBin := func(b []byte) []byte {
		for len(b)%4 != 0 {
			b = append(b, 0)
		}
		return b
	}
	jsonBody = pad(jsonBody)
	binBody = padBin(binBody)

	var out []byte
	var hdr [12]byte
	body := make([]byte, 0, len(jsonBody)+len(binBody)+16)

	var jsonChunkHdr [8]byte
	binary.LittleEndian.PutUint32(jsonChunkHdr[0:4], uint32(len(jsonBody)))
	binary.LittleEndian.PutUint32(jsonChunkHdr[4:8], 0x4E4F534A)
	body = append(body, jsonChunkHdr[:]...)
	body = append(body, jsonBody...)

	var binChunkHdr [8]byte
	binary.LittleEndian.PutUint32(binChunkHdr[0:4], uint32(len(binBody)))
	binary.LittleEndian.PutUint32(binChunkHdr[4:8], 0x004E4942)
	body = append(body, binChunkHdr[:]...)
	body = append(body, binBody...)

	binary.LittleEndian.PutUint32(hdr[0:4], 0x46546C67)
	binary.LittleEndian.PutUint32(hdr[4:8], 2)
	binary.LittleEndian.PutUint32(hdr[8:12], uint32(12+len(body)))

	out = append(out, hdr[:]...)
	out = append(out, body...)
	return out
}
