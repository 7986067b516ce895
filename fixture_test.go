package gltf

import (
	"encoding/base64"
	"math"
)

// float32LEBytes packs vals as little-endian IEEE-754 float32, the layout
// every accessor fixture in this package's tests assumes.
func float32LEBytes(vals []float32) []byte {
	out := make([]byte, 0, len(vals)*4)
	for _, v := range vals {
		bits := math.Float32bits(v)
		out = append(out, byte(bits), byte(bits>>8), byte(bits>>16), byte(bits>>24))
	}
	return out
}

func uint16LEBytes(vals []uint16) []byte {
	out := make([]byte, 0, len(vals)*2)
	for _, v := range vals {
		out = append(out, byte(v), byte(v>>8))
	}
	return out
}

func dataURI(mime string, payload []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(payload)
}

// trianglePositions is a single CCW triangle in the XY plane.
var trianglePositions = []float32{
	0, 0, 0,
	1, 0, 0,
	0, 1, 0,
}

func minimalTriangleJSON() string {
	uri := dataURI("application/octet-stream", float32LEBytes(trianglePositions))
	return `{
		"asset": {"version": "2.0"},
		"scene": 0,
		"scenes": [{"nodes": [0]}],
		"nodes": [{"mesh": 0}],
		"meshes": [{"primitives": [{"attributes": {"POSITION": 0}}]}],
		"accessors": [{"bufferView": 0, "componentType": 5126, "count": 3, "type": "VEC3"}],
		"bufferViews": [{"buffer": 0, "byteOffset": 0, "byteLength": 36}],
		"buffers": [{"byteLength": 36, "uri": "` + uri + `"}]
	}`
}
