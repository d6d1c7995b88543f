package sdfgen

import "image"

// AlphaThreshold is the alpha value a pixel must exceed to be inside the
// shape. It is a fixed policy, not a tuning knob.
const AlphaThreshold = 128

// Mask is a binary inside/outside classification of an image.
type Mask struct {
	width  int
	height int
	data   []bool
}

// NewMask creates a mask with the given dimensions. All pixels start
// outside.
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]bool, width*height),
	}
}

// NewMaskFromAlpha creates a mask from an image's alpha channel: a pixel
// is inside iff its 8-bit alpha is greater than AlphaThreshold. Images
// without an alpha channel report alpha 255 and are entirely inside.
func NewMaskFromAlpha(img image.Image) *Mask {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	mask := NewMask(w, h)

	switch src := img.(type) {
	case *image.NRGBA:
		for y := 0; y < h; y++ {
			row := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			for x := 0; x < w; x++ {
				mask.data[y*w+x] = src.Pix[row+x*4+3] > AlphaThreshold
			}
		}
	case *image.RGBA:
		// Premultiplication leaves alpha untouched.
		for y := 0; y < h; y++ {
			row := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			for x := 0; x < w; x++ {
				mask.data[y*w+x] = src.Pix[row+x*4+3] > AlphaThreshold
			}
		}
	default:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				_, _, _, a := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
				// a is 0-65535, shift by 8 to get 0-255
				mask.data[y*w+x] = a>>8 > AlphaThreshold
			}
		}
	}

	return mask
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At reports whether (x, y) is inside.
// Returns false for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.data[y*m.width+x]
}

// Invert swaps inside and outside for every pixel.
func (m *Mask) Invert() {
	for i := range m.data {
		m.data[i] = !m.data[i]
	}
}

// Clone creates a copy of the mask.
func (m *Mask) Clone() *Mask {
	clone := NewMask(m.width, m.height)
	copy(clone.data, m.data)
	return clone
}

// Count returns the number of inside pixels.
func (m *Mask) Count() int {
	n := 0
	for _, in := range m.data {
		if in {
			n++
		}
	}
	return n
}
