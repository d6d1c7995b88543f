// Package edt implements the exact Euclidean distance transform of a
// binary grid.
//
// The transform follows Felzenszwalb & Huttenlocher, "Distance Transforms
// of Sampled Functions" (Theory of Computing, 2012): a 1D squared-distance
// transform computed as the lower envelope of parabolas, applied first to
// every row and then to every column of the row result. The algorithm is
// O(width*height) and has no approximation error.
package edt

import "math"

// Inf stands in for an infinite squared distance. It is finite so that the
// parabola intersection never evaluates Inf-Inf.
const Inf = 1e20

// Squared1D computes the 1D squared distance transform of f into d:
//
//	d[q] = min over p of (q-p)^2 + f[p]
//
// v and z are scratch buffers; v must hold at least len(f) elements and z
// at least len(f)+1. f and d must not overlap.
func Squared1D(f, d []float64, v []int, z []float64) {
	n := len(f)
	if n == 0 {
		return
	}

	// k indexes the rightmost parabola of the lower envelope.
	k := 0
	v[0] = 0
	z[0] = math.Inf(-1)
	z[1] = math.Inf(1)

	for q := 1; q < n; q++ {
		s := intersect(f, q, v[k])
		for s <= z[k] {
			k--
			s = intersect(f, q, v[k])
		}
		k++
		v[k] = q
		z[k] = s
		z[k+1] = math.Inf(1)
	}

	k = 0
	for q := 0; q < n; q++ {
		for z[k+1] < float64(q) {
			k++
		}
		dq := float64(q - v[k])
		d[q] = dq*dq + f[v[k]]
	}
}

// intersect returns the abscissa where the parabolas rooted at q and p meet.
func intersect(f []float64, q, p int) float64 {
	return ((f[q] + float64(q*q)) - (f[p] + float64(p*p))) / float64(2*(q-p))
}

// SquaredTransform returns, for every cell of the width x height grid, the
// squared Euclidean distance to the nearest cell whose value is false.
// Cells that are false themselves get 0.
//
// The second result is false when the grid holds no false cell at all; the
// distance is undefined in that case and the returned slice is nil.
func SquaredTransform(grid []bool, width, height int) ([]float64, bool) {
	if len(grid) != width*height {
		panic("edt: grid size does not match width*height")
	}

	sq := make([]float64, len(grid))
	found := false
	for i, in := range grid {
		if in {
			sq[i] = Inf
		} else {
			found = true
		}
	}
	if !found {
		return nil, false
	}

	n := max(width, height)
	f := make([]float64, n)
	d := make([]float64, n)
	v := make([]int, n)
	z := make([]float64, n+1)

	// Rows.
	for y := 0; y < height; y++ {
		row := sq[y*width : (y+1)*width]
		copy(f, row)
		Squared1D(f[:width], d[:width], v, z)
		copy(row, d[:width])
	}

	// Columns.
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			f[y] = sq[y*width+x]
		}
		Squared1D(f[:height], d[:height], v, z)
		for y := 0; y < height; y++ {
			sq[y*width+x] = d[y]
		}
	}

	return sq, true
}

// Transform is like SquaredTransform but returns Euclidean distances.
func Transform(grid []bool, width, height int) ([]float64, bool) {
	sq, ok := SquaredTransform(grid, width, height)
	if !ok {
		return nil, false
	}
	for i, v := range sq {
		sq[i] = math.Sqrt(v)
	}
	return sq, true
}
