// Package filter provides fixed convolution kernels for straight-alpha
// NRGBA images.
package filter

import "image"

// Kernel is a square convolution kernel with integer weights. The result
// for each channel is sum(weight*sample)/Scale + Offset, rounded and
// clamped to [0, 255].
type Kernel struct {
	// Size is the kernel side length; it must be odd.
	Size int

	// Weights holds Size*Size row-major weights.
	Weights []int

	// Scale divides the weighted sum. Zero means the sum of Weights.
	Scale int

	// Offset is added after scaling.
	Offset int
}

// SmoothMore is a 5x5 smoothing kernel that keeps most of the weight on
// the center pixel.
var SmoothMore = Kernel{
	Size: 5,
	Weights: []int{
		1, 1, 1, 1, 1,
		1, 5, 5, 5, 1,
		1, 5, 44, 5, 1,
		1, 5, 5, 5, 1,
		1, 1, 1, 1, 1,
	},
	Scale: 100,
}

// scale returns the effective divisor.
func (k Kernel) scale() int {
	if k.Scale != 0 {
		return k.Scale
	}
	sum := 0
	for _, w := range k.Weights {
		sum += w
	}
	if sum == 0 {
		return 1
	}
	return sum
}

// Apply convolves every channel of src with k and returns a new image.
// Color channels are filtered as stored, without premultiplying by alpha.
// Pixels closer than Size/2 to an edge have an incomplete neighborhood and
// are copied unchanged.
func (k Kernel) Apply(src *image.NRGBA) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		so := src.PixOffset(b.Min.X, b.Min.Y+y)
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+w*4], src.Pix[so:so+w*4])
	}

	margin := k.Size / 2
	if w <= 2*margin || h <= 2*margin {
		return dst
	}

	div := k.scale()
	var acc [4]int
	for y := margin; y < h-margin; y++ {
		for x := margin; x < w-margin; x++ {
			acc = [4]int{}
			for ky := 0; ky < k.Size; ky++ {
				row := src.PixOffset(b.Min.X+x-margin, b.Min.Y+y-margin+ky)
				for kx := 0; kx < k.Size; kx++ {
					wgt := k.Weights[ky*k.Size+kx]
					p := src.Pix[row+kx*4 : row+kx*4+4 : row+kx*4+4]
					acc[0] += wgt * int(p[0])
					acc[1] += wgt * int(p[1])
					acc[2] += wgt * int(p[2])
					acc[3] += wgt * int(p[3])
				}
			}
			o := y*dst.Stride + x*4
			for c := 0; c < 4; c++ {
				dst.Pix[o+c] = clamp8(divRound(acc[c], div) + k.Offset)
			}
		}
	}
	return dst
}

// divRound divides a by b > 0, rounding half away from zero.
func divRound(a, b int) int {
	if a < 0 {
		return -((-a + b/2) / b)
	}
	return (a + b/2) / b
}

// clamp8 restricts v to [0, 255].
func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
