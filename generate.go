package sdfgen

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/gogpu/sdfgen/internal/imageio"
)

// OutputSuffix is appended to the input path, minus its extension, to name
// the generated field.
const OutputSuffix = "_sdf.png"

// Result describes a completed Generate run.
type Result struct {
	// InputPath is the path that was read.
	InputPath string

	// OutputPath is the path of the written grayscale PNG.
	OutputPath string

	// Width and Height are the dimensions shared by input and output.
	Width, Height int

	// Min and Max are the observed signed distances in pixels, before clamping.
	Min, Max float64
}

// OutputPath returns the path Generate writes for inputPath: the final
// extension of the last path element is replaced by "_sdf.png". A path
// without extension gets the suffix appended as is.
//
//	foo.png              -> foo_sdf.png
//	archive/shape.v2.png -> archive/shape.v2_sdf.png
//	icons/star           -> icons/star_sdf.png
func OutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + OutputSuffix
}

// GenerateImage runs the in-memory pipeline on img: threshold the alpha
// channel, compute the signed field and quantize it. The returned image
// has the same dimensions as img, anchored at the origin.
func GenerateImage(img image.Image) (*image.Gray, *Field) {
	mask := NewMaskFromAlpha(img)
	field := NewSignedField(mask)
	return field.Quantize(), field
}

// Generate reads the image at inputPath, computes its signed distance
// field and writes it as an 8-bit grayscale PNG to OutputPath(inputPath).
//
// Errors wrap ErrInputNotFound, ErrDecode or ErrEncode. Nothing is written
// when an error is returned.
func Generate(inputPath string) (*Result, error) {
	log := Logger()

	img, err := imageio.Load(inputPath)
	if err != nil {
		if errors.Is(err, imageio.ErrOpen) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, inputPath, err)
	}
	log.Debug("sdfgen: loaded", "path", inputPath, "size", img.Bounds().Size())

	out, field := GenerateImage(img)
	lo, hi := field.Range()
	log.Debug("sdfgen: field range", "min", lo, "max", hi)

	outputPath := OutputPath(inputPath)
	if err := imageio.SavePNG(outputPath, out); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrEncode, outputPath, err)
	}
	log.Info("sdfgen: wrote field", "path", outputPath)

	return &Result{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Width:      field.Width,
		Height:     field.Height,
		Min:        lo,
		Max:        hi,
	}, nil
}
