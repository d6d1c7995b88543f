// Package imageio loads images into 8-bit straight-alpha RGBA buffers and
// writes PNG files without ever leaving a partial file behind.
//
// Decoders registered for Load: PNG, JPEG and GIF from the standard
// library, BMP, TIFF and WebP from golang.org/x/image, and SVG (rasterized
// at its viewBox size) through github.com/srwiley/oksvg.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/bmp" // register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// MaxPixels bounds the canvas allocated for a rasterized SVG.
const MaxPixels = 1 << 26

// I/O errors.
var (
	// ErrOpen is returned when the input file cannot be opened.
	ErrOpen = errors.New("imageio: cannot open file")

	// ErrDecode is returned when the file content is not a decodable image.
	ErrDecode = errors.New("imageio: cannot decode image")

	// ErrEncode is returned when an image cannot be encoded or written.
	ErrEncode = errors.New("imageio: cannot write image")
)

// Load reads the image at path and returns it as NRGBA with its bounds
// starting at the origin. Files with an .svg extension are rasterized;
// everything else goes through the registered image decoders.
func Load(path string) (*image.NRGBA, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer func() { _ = f.Close() }()

	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return DecodeSVG(f)
	}
	return Decode(f)
}

// Decode decodes an image from r, auto-detecting the format.
func Decode(r io.Reader) (*image.NRGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return ToNRGBA(img), nil
}

// DecodeSVG parses an SVG document and rasterizes it at its viewBox size
// onto a transparent canvas.
func DecodeSVG(r io.Reader) (*image.NRGBA, error) {
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, fmt.Errorf("%w: svg: %w", ErrDecode, err)
	}

	vw, vh := math.Ceil(icon.ViewBox.W), math.Ceil(icon.ViewBox.H)
	if !(vw > 0 && vh > 0) || math.IsInf(vw, 0) || math.IsInf(vh, 0) {
		return nil, fmt.Errorf("%w: svg: empty viewBox", ErrDecode)
	}
	// Compare in float64 so huge dimensions cannot overflow int.
	if vw*vh > MaxPixels {
		return nil, fmt.Errorf("%w: svg: viewBox too large", ErrDecode)
	}
	w, h := int(vw), int(vh)
	icon.SetTarget(0, 0, float64(w), float64(h))

	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, canvas, canvas.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.Draw(dasher, 1)

	return ToNRGBA(canvas), nil
}

// ToNRGBA returns a copy of img as NRGBA with bounds (0, 0, w, h).
// Images without an alpha channel come out fully opaque.
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	// Fast path: row copy keeps straight-alpha values bit exact.
	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < b.Dy(); y++ {
			start := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:], src.Pix[start:start+b.Dx()*4])
		}
		return dst
	}

	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// EncodePNG encodes img as PNG into memory.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: encode PNG: %w", ErrEncode, err)
	}
	return buf.Bytes(), nil
}

// SavePNG encodes img and writes it to path. The data goes to a temporary
// file in the destination directory which is renamed over path once fully
// written, so a failed save leaves no file at path.
func SavePNG(path string, img image.Image) error {
	data, err := EncodePNG(img)
	if err != nil {
		return err
	}
	return writeFile(filepath.Clean(path), data)
}

func writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	tmpName := tmp.Name()

	cleanup := func(cause error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrEncode, cause)
	}

	if _, err := tmp.Write(data); err != nil {
		return cleanup(err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return cleanup(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return nil
}
