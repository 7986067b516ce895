// Package imagedecode is the optional image-decode collaborator for glTF
// image sources: it turns the raw PNG/JPEG bytes a Document resolves into
// RGBA8 pixels, and can write RGBA8 pixels back out as PNG for demo
// reporting. The core gltf package does not import this package and has no
// pixel-decoding path of its own: a build that leaves this package out has
// no decode or PNG-write function at all, and nothing in the core returns
// UNSUPPORTED in its place.
package imagedecode

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"os"

	ximagedraw "golang.org/x/image/draw"

	"github.com/oxygltf/gltf"
)

// RGBA8 is a decoded image: tightly packed 4-bytes-per-pixel RGBA rows.
type RGBA8 struct {
	Width  int
	Height int
	Stride int // always 4 * Width
	Pixels []byte
}

// DecodeRGBA8 resolves image i's encoded bytes via the document's own
// image-source rules and decodes them to RGBA8. Supported source formats
// are whatever the blank-imported codecs below register with
// image.Decode (PNG, JPEG); anything else surfaces the underlying
// image.Decode error.
func DecodeRGBA8(doc *gltf.Document, imageIndex int) (RGBA8, error) {
	raw, err := doc.ImageBytes(imageIndex)
	if err != nil {
		return RGBA8{}, err
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return RGBA8{}, fmt.Errorf("imagedecode: decoding image %d: %w", imageIndex, err)
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)

	return RGBA8{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Stride: bounds.Dx() * 4,
		Pixels: rgba.Pix,
	}, nil
}

// Downsample scales src to the given width/height using x/image/draw's
// bilinear scaler, for thumbnail-sized demo reports.
func Downsample(src RGBA8, width, height int) RGBA8 {
	srcImg := &image.RGBA{
		Pix:    src.Pixels,
		Stride: src.Stride,
		Rect:   image.Rect(0, 0, src.Width, src.Height),
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	ximagedraw.BiLinear.Scale(dst, dst.Bounds(), srcImg, srcImg.Bounds(), ximagedraw.Src, nil)
	return RGBA8{Width: width, Height: height, Stride: dst.Stride, Pixels: dst.Pix}
}

// WritePNGRGBA8 writes img to path as a PNG file. This is a demo-only
// persistence helper — the core library never writes files.
func WritePNGRGBA8(path string, img RGBA8) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imagedecode: creating %q: %w", path, err)
	}
	defer f.Close()

	rgba := &image.RGBA{
		Pix:    img.Pixels,
		Stride: img.Stride,
		Rect:   image.Rect(0, 0, img.Width, img.Height),
	}
	if err := png.Encode(f, rgba); err != nil {
		return fmt.Errorf("imagedecode: encoding %q: %w", path, err)
	}
	return nil
}
