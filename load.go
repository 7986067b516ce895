package gltf

import (
	"io"
	"os"
	"path/filepath"

	"github.com/oxygltf/gltf/internal/glb"
)

// Load reads a glTF asset from path, dispatching to the JSON or GLB front
// end by sniffing the GLB magic bytes; the file extension is not consulted.
// External buffers and images are resolved relative to path's directory.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioErrf(path, "reading file: %v", err)
	}
	dir := filepath.Dir(path)

	if looksLikeGLB(data) {
		return loadGLBBytes(data, dir)
	}
	return parseDocument(data, loadContext{dir: dir})
}

// LoadReader reads a glTF asset from r. dir is used to resolve external
// buffer/image URIs (pass "" when none apply, e.g. an in-memory-only
// asset). The caller states whether the stream is a GLB container or plain
// JSON; unlike Load, no magic sniff is performed.
func LoadReader(r io.Reader, dir string, isGLB bool) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ioErrf("", "reading input: %v", err)
	}
	if isGLB {
		return loadGLBBytes(data, dir)
	}
	return parseDocument(data, loadContext{dir: dir})
}

func looksLikeGLB(data []byte) bool {
	return len(data) >= 4 &&
		data[0] == 'g' && data[1] == 'l' && data[2] == 'T' && data[3] == 'F'
}

func loadGLBBytes(data []byte, dir string) (*Document, error) {
	parsed, err := glb.Parse(data)
	if err != nil {
		return nil, parseErrf("root", "%v", err)
	}
	return parseDocument(parsed.JSON, loadContext{bin: parsed.BIN, dir: dir, fromGLB: true})
}
