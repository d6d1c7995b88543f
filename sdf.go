package sdfgen

import (
	"image"
	"math"
	"time"

	"github.com/gogpu/sdfgen/internal/edt"
)

// MaxDistance is the clamp radius in pixels. Signed distances are limited
// to [-MaxDistance, +MaxDistance] before quantization.
const MaxDistance = 128.0

// Field is a signed distance field: negative inside the shape, positive
// outside, in pixel units. Data is row-major, Width*Height long.
type Field struct {
	Width  int
	Height int
	Data   []float64
}

// DistanceInside returns, for every pixel, the Euclidean distance to the
// nearest outside pixel. Outside pixels are 0.
func DistanceInside(m *Mask) []float64 {
	return distance(m.data, m.width, m.height)
}

// DistanceOutside returns, for every pixel, the Euclidean distance to the
// nearest inside pixel. Inside pixels are 0.
func DistanceOutside(m *Mask) []float64 {
	inv := m.Clone()
	inv.Invert()
	return distance(inv.data, inv.width, inv.height)
}

// distance runs the transform and substitutes the "no target" sentinel
// when the grid has no zero cell.
func distance(grid []bool, width, height int) []float64 {
	if d, ok := edt.Transform(grid, width, height); ok {
		return d
	}
	d := make([]float64, len(grid))
	s := noTargetDistance(width, height)
	for i := range d {
		d[i] = s
	}
	return d
}

// noTargetDistance is the distance reported when a transform has nothing
// to measure against: the image diagonal, never less than MaxDistance.
func noTargetDistance(width, height int) float64 {
	return math.Max(math.Hypot(float64(width), float64(height)), MaxDistance)
}

// NewSignedField computes the signed distance field of m.
func NewSignedField(m *Mask) *Field {
	start := time.Now()
	inside := DistanceInside(m)
	outside := DistanceOutside(m)

	f := &Field{
		Width:  m.Width(),
		Height: m.Height(),
		Data:   make([]float64, len(m.data)),
	}
	for i, in := range m.data {
		if in {
			f.Data[i] = -inside[i]
		} else {
			f.Data[i] = outside[i]
		}
	}

	Logger().Debug("sdfgen: distance transform",
		"width", m.width,
		"height", m.height,
		"inside", m.Count(),
		"elapsed", time.Since(start))

	return f
}

// At returns the signed distance at (x, y).
// Returns 0 for coordinates outside the field.
func (f *Field) At(x, y int) float64 {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return 0
	}
	return f.Data[y*f.Width+x]
}

// Range returns the smallest and largest signed distance in the field,
// before clamping. An empty field reports (0, 0).
func (f *Field) Range() (lo, hi float64) {
	if len(f.Data) == 0 {
		return 0, 0
	}
	lo, hi = f.Data[0], f.Data[0]
	for _, d := range f.Data[1:] {
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}

// Quantize maps a signed distance to 8 bits: clamp to ±MaxDistance, shift
// to [0, 2*MaxDistance], scale to [0, 255] and truncate.
func Quantize(d float64) uint8 {
	c := math.Max(-MaxDistance, math.Min(MaxDistance, d))
	return uint8((c + MaxDistance) / (2 * MaxDistance) * 255)
}

// Quantize converts the field into an 8-bit grayscale image of the same
// dimensions.
func (f *Field) Quantize() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		row := f.Data[y*f.Width : (y+1)*f.Width]
		dst := img.Pix[y*img.Stride:]
		for x, d := range row {
			dst[x] = Quantize(d)
		}
	}
	return img
}
