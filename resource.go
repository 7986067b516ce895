package gltf

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/oxygltf/gltf/internal/base64lut"
)

const dataURIPrefix = "data:"

func isDataURI(uri string) bool {
	return strings.HasPrefix(uri, dataURIPrefix)
}

// decodeDataURI extracts and decodes the base64 payload of a "data:" URI.
// It does not validate the MIME type — glTF allows any media type in the
// prefix, and this core never needs to interpret it for buffers.
func decodeDataURI(uri, path string) ([]byte, error) {
	comma := strings.IndexByte(uri, ',')
	if comma < 0 {
		return nil, parseErrf(path, "data URI missing comma separator")
	}
	header := uri[len(dataURIPrefix):comma]
	if !strings.Contains(header, ";base64") {
		return nil, parseErrf(path, "data URI is not base64-encoded")
	}
	decoded, err := base64lut.Decode([]byte(uri[comma+1:]))
	if err != nil {
		return nil, parseErrf(path, "invalid base64 payload: %v", err)
	}
	return decoded, nil
}

// resolvePath joins a relative URI against dir, honoring both '/' and '\'
// separators and recognizing drive letters, UNC paths, and POSIX absolute
// paths as already-absolute (bypassing the join).
func resolvePath(dir, uri string) string {
	norm := strings.ReplaceAll(uri, "\\", "/")
	if isAbsolutePath(norm) {
		return filepath.FromSlash(norm)
	}
	return filepath.Join(dir, filepath.FromSlash(norm))
}

func isAbsolutePath(p string) bool {
	if strings.HasPrefix(p, "/") {
		return true
	}
	if strings.HasPrefix(p, "//") {
		return true // UNC-style
	}
	if len(p) >= 2 && p[1] == ':' && isDriveLetter(p[0]) {
		return true // "C:/..."
	}
	return false
}

func isDriveLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// ImageBytes resolves and returns the raw encoded image bytes (PNG/JPEG,
// undecoded) for image i, dispatching on its Kind: a data URI is
// base64-decoded inline, a URI image is read from its resolved filesystem
// path, and a bufferView image is sliced from its bound buffer. Pixel
// decoding itself is left to the imagedecode collaborator.
func (d *Document) ImageBytes(i int) ([]byte, error) {
	path := elemPath("root.images", i)
	img, ok := d.Image(i)
	if !ok {
		return nil, rangeErrf(path, "image index %d out of range", i)
	}

	switch img.Kind {
	case ImageDataURI:
		return decodeDataURI(d.getString(img.URI), path)
	case ImageURI:
		full := d.getString(img.Resolved)
		data, err := os.ReadFile(full)
		if err != nil {
			return nil, ioErrf(path, "reading image file %q: %v", full, err)
		}
		return data, nil
	case ImageBufferView:
		bv, ok := d.BufferView(img.BufferView)
		if !ok {
			return nil, rangeErrf(path, "bufferView index %d out of range", img.BufferView)
		}
		buf, ok := d.Buffer(bv.Buffer)
		if !ok {
			return nil, rangeErrf(path, "buffer index %d out of range", bv.Buffer)
		}
		end := bv.ByteOffset + bv.ByteLength
		if bv.ByteOffset < 0 || end > len(buf.Data) {
			return nil, rangeErrf(path, "bufferView range exceeds buffer length")
		}
		return buf.Data[bv.ByteOffset:end], nil
	default:
		return nil, invalidErrf(path, "image has no source")
	}
}

// loadBufferBytes resolves and reads the bytes for a single buffer entry.
// byteLength is the declared length from the JSON document; bytes read from
// a file must match it exactly, and bytes decoded from a data URI must match
// it whenever it is non-zero.
func loadBufferBytes(uri string, byteLength int, dir, path string) ([]byte, error) {
	var data []byte
	var err error

	if isDataURI(uri) {
		data, err = decodeDataURI(uri, path)
		if err != nil {
			return nil, err
		}
	} else {
		full := resolvePath(dir, uri)
		data, err = os.ReadFile(full)
		if err != nil {
			return nil, ioErrf(path, "reading buffer file %q: %v", full, err)
		}
	}

	if (byteLength != 0 || !isDataURI(uri)) && len(data) != byteLength {
		return nil, ioErrf(path, "buffer length %d does not match declared byteLength %d", len(data), byteLength)
	}
	return data, nil
}
