// Package glb validates and frames the binary glTF (.glb) container format:
// a 12-byte header followed by one or more 8-byte-headed chunks.
package glb

import (
	"encoding/binary"
	"fmt"
)

const (
	Magic   uint32 = 0x46546C67 // "glTF"
	Version uint32 = 2

	ChunkTypeJSON uint32 = 0x4E4F534A // "JSON"
	ChunkTypeBIN  uint32 = 0x004E4942 // "BIN\x00"

	headerSize      = 12
	chunkHeaderSize = 8
)

// Parsed holds the two chunks this loader understands: the mandatory JSON
// chunk and an optional BIN chunk. Bytes alias the input buffer.
type Parsed struct {
	JSON []byte
	BIN  []byte // nil if no BIN chunk was present
}

// Parse validates the GLB header and walks its chunks. Per spec, the JSON
// chunk must be first and duplicates of either recognized chunk type are
// rejected; unrecognized chunk types are silently skipped.
func Parse(data []byte) (Parsed, error) {
	if len(data) < headerSize {
		return Parsed{}, fmt.Errorf("glb: buffer too small for header (%d bytes)", len(data))
	}

	magic := binary.LittleEndian.Uint32(data[0:4])
	version := binary.LittleEndian.Uint32(data[4:8])
	length := binary.LittleEndian.Uint32(data[8:12])

	if magic != Magic {
		return Parsed{}, fmt.Errorf("glb: bad magic 0x%08x", magic)
	}
	if version != Version {
		return Parsed{}, fmt.Errorf("glb: unsupported version %d", version)
	}
	if uint64(length) != uint64(len(data)) {
		return Parsed{}, fmt.Errorf("glb: header length %d does not match buffer size %d", length, len(data))
	}

	var out Parsed
	haveJSON, haveBIN := false, false
	offset := headerSize
	first := true

	for offset < len(data) {
		if len(data)-offset < chunkHeaderSize {
			return Parsed{}, fmt.Errorf("glb: truncated chunk header at offset %d", offset)
		}
		chunkLen := binary.LittleEndian.Uint32(data[offset : offset+4])
		chunkType := binary.LittleEndian.Uint32(data[offset+4 : offset+8])
		offset += chunkHeaderSize

		if chunkLen%4 != 0 {
			return Parsed{}, fmt.Errorf("glb: chunk length %d not a multiple of 4", chunkLen)
		}
		if uint64(offset)+uint64(chunkLen) > uint64(len(data)) {
			return Parsed{}, fmt.Errorf("glb: chunk length %d overflows remaining buffer", chunkLen)
		}

		body := data[offset : offset+int(chunkLen)]
		offset += int(chunkLen)

		switch chunkType {
		case ChunkTypeJSON:
			if !first {
				return Parsed{}, fmt.Errorf("glb: JSON chunk must be first")
			}
			if haveJSON {
				return Parsed{}, fmt.Errorf("glb: duplicate JSON chunk")
			}
			haveJSON = true
			out.JSON = body
		case ChunkTypeBIN:
			if haveBIN {
				return Parsed{}, fmt.Errorf("glb: duplicate BIN chunk")
			}
			haveBIN = true
			out.BIN = body
		default:
			// Unrecognized chunk types are silently ignored.
		}

		first = false
	}

	if !haveJSON {
		return Parsed{}, fmt.Errorf("glb: missing JSON chunk")
	}

	return out, nil
}
