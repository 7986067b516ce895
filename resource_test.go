package gltf

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestDecodeDataURI(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		want    []byte
		wantErr bool
	}{
		{"valid", dataURI("application/octet-stream", []byte("hello")), []byte("hello"), false},
		{"missing_comma", "data:application/octet-stream;base64", nil, true},
		{"not_base64", "data:text/plain,hello", nil, true},
		{"invalid_payload", "data:application/octet-stream;base64,***", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeDataURI(tt.uri, "test.path")
			if (err != nil) != tt.wantErr {
				t.Fatalf("decodeDataURI() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("decodeDataURI() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolvePath(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		uri  string
		want string
	}{
		{"relative", "/assets/models", "textures/wood.png", filepath.FromSlash("/assets/models/textures/wood.png")},
		{"posix_absolute", "/assets/models", "/textures/wood.png", filepath.FromSlash("/textures/wood.png")},
		{"backslash_separators", "/assets/models", "textures\\wood.png", filepath.FromSlash("/assets/models/textures/wood.png")},
		{"drive_letter_absolute", "/assets/models", "C:/textures/wood.png", filepath.FromSlash("C:/textures/wood.png")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolvePath(tt.dir, tt.uri)
			if got != tt.want {
				t.Errorf("resolvePath(%q, %q) = %q, want %q", tt.dir, tt.uri, got, tt.want)
			}
		})
	}
}

func TestImageBytes_dataURI(t *testing.T) {
	doc := newDocument()
	payload := []byte{0x89, 'P', 'N', 'G'}
	doc.images = []Image{{Kind: ImageDataURI, URI: doc.internString(dataURI("image/png", payload))}}

	got, err := doc.ImageBytes(0)
	if err != nil {
		t.Fatalf("ImageBytes() error = %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("ImageBytes() = %v, want %v", got, payload)
	}
}

func TestImageBytes_fileURI(t *testing.T) {
	dir := t.TempDir()
	payload := []byte{1, 2, 3, 4}
	if err := os.WriteFile(filepath.Join(dir, "tex.png"), payload, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	doc := newDocument()
	doc.dir = dir
	doc.images = []Image{{Kind: ImageURI, Resolved: doc.internString(filepath.Join(dir, "tex.png"))}}

	got, err := doc.ImageBytes(0)
	if err != nil {
		t.Fatalf("ImageBytes() error = %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("ImageBytes() = %v, want %v", got, payload)
	}
}

func TestImageBytes_bufferView(t *testing.T) {
	payload := []byte{5, 6, 7, 8, 9, 10}
	doc := newDocument()
	doc.buffers = []Buffer{{ByteLength: len(payload), Data: payload}}
	doc.bufferViews = []BufferView{{Buffer: 0, ByteOffset: 2, ByteLength: 3}}
	doc.images = []Image{{Kind: ImageBufferView, BufferView: 0}}

	got, err := doc.ImageBytes(0)
	if err != nil {
		t.Fatalf("ImageBytes() error = %v", err)
	}
	want := payload[2:5]
	if !bytes.Equal(got, want) {
		t.Errorf("ImageBytes() = %v, want %v", got, want)
	}
}

func TestImageBytes_noSource(t *testing.T) {
	doc := newDocument()
	doc.images = []Image{{Kind: ImageNone}}

	_, err := doc.ImageBytes(0)
	if err == nil {
		t.Fatal("ImageBytes() with no source = nil error, want error")
	}
	gerr, ok := err.(*Error)
	if !ok || gerr.Kind != Invalid {
		t.Errorf("error = %v, want *Error{Kind: Invalid}", err)
	}
}

func TestImageBytes_outOfRange(t *testing.T) {
	doc := newDocument()
	_, err := doc.ImageBytes(0)
	if err == nil {
		t.Fatal("ImageBytes() on empty document = nil error, want error")
	}
}
