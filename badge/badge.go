// Package badge draws the signature badge: a diamond filled with a radial
// gradient ramp, framed by a border, with a sparkle on the gold variant.
//
//	img, err := badge.Render(128, badge.Gold)
//
// Shapes are rasterized with github.com/srwiley/rasterx and the result is
// softened with a 5x5 smoothing kernel.
package badge

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"path/filepath"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/sdfgen"
	"github.com/gogpu/sdfgen/internal/filter"
	"github.com/gogpu/sdfgen/internal/imageio"
)

const (
	// DefaultSize is the default badge side length in pixels.
	DefaultSize = 128

	// MaxSize is the largest accepted badge side length in pixels.
	MaxSize = 8192

	// radiusRatio is the diamond radius relative to the badge size.
	radiusRatio = 0.45

	// gradientSteps is the number of concentric diamonds in the ramp.
	gradientSteps = 40
)

// point is a position in pixel space.
type point struct{ x, y float64 }

func (p point) fixed() fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(p.x * 64), Y: fixed.Int26_6(p.y * 64)}
}

// diamond returns the four corners of a diamond (a square rotated by 45
// degrees) in top, right, bottom, left order.
func diamond(cx, cy, r float64) []point {
	return []point{{cx, cy - r}, {cx + r, cy}, {cx, cy + r}, {cx - r, cy}}
}

// canvas wraps the rasterx pipeline bound to one destination image.
type canvas struct {
	dst     *image.RGBA
	filler  *rasterx.Filler
	stroker *rasterx.Stroker
}

func newCanvas(size int) *canvas {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	return &canvas{
		dst:     dst,
		filler:  rasterx.NewFiller(size, size, rasterx.NewScannerGV(size, size, dst, dst.Bounds())),
		stroker: rasterx.NewStroker(size, size, rasterx.NewScannerGV(size, size, dst, dst.Bounds())),
	}
}

// fillPolygon fills the closed polygon pts with c.
func (cv *canvas) fillPolygon(pts []point, c color.Color) {
	f := cv.filler
	f.Clear()
	f.SetColor(c)
	f.Start(pts[0].fixed())
	for _, p := range pts[1:] {
		f.Line(p.fixed())
	}
	f.Stop(true)
	f.Draw()
}

// strokePolygon outlines the closed polygon pts with a line of the given width.
func (cv *canvas) strokePolygon(pts []point, width float64, c color.Color) {
	s := cv.stroker
	s.Clear()
	s.SetStroke(fixed.Int26_6(width*64), fixed.Int26_6(4*64), rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Miter)
	s.SetColor(c)
	s.Start(pts[0].fixed())
	for _, p := range pts[1:] {
		s.Line(p.fixed())
	}
	s.Stop(true)
	s.Draw()
}

// fillCircle fills a circle approximated by a 48-gon.
func (cv *canvas) fillCircle(cx, cy, r float64, c color.Color) {
	const segments = 48
	pts := make([]point, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / segments
		pts[i] = point{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	cv.fillPolygon(pts, c)
}

// Render draws a size x size badge of variant v on a transparent background.
// size must be in [1, MaxSize].
func Render(size int, v Variant) (*image.NRGBA, error) {
	if size <= 0 || size > MaxSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	pal := v.Palette()
	center := float64(size / 2)
	maxRadius := float64(size) * radiusRatio

	cv := newCanvas(size)

	// Concentric diamonds, rim to center.
	for i := 0; i < gradientSteps; i++ {
		t := float64(i) / (gradientSteps - 1)
		radius := maxRadius * (1 - t)
		if radius <= 0 {
			continue
		}
		cv.fillPolygon(diamond(center, center, radius), pal.At(t))
	}

	cv.strokePolygon(diamond(center, center, maxRadius), float64(max(2, size/50)), pal.Edge)

	if v == Gold {
		shine := drawSparkle(size, center-maxRadius*0.3, center-maxRadius*0.3, maxRadius)
		draw.Draw(cv.dst, cv.dst.Bounds(), shine, image.Point{}, draw.Over)
	}

	sdfgen.Logger().Debug("badge: rendered", "variant", v, "size", size)

	return filter.SmoothMore.Apply(imageio.ToNRGBA(cv.dst)), nil
}

// drawSparkle draws the four-pointed star highlight on its own layer.
func drawSparkle(size int, cx, cy, maxRadius float64) *image.RGBA {
	layer := newCanvas(size)

	rayLength := maxRadius * 0.25
	rayWidth := maxRadius * 0.04
	mainRay := color.NRGBA{R: 255, G: 255, B: 255, A: 200}

	// Vertical ray.
	layer.fillPolygon([]point{
		{cx, cy - rayLength},
		{cx + rayWidth, cy},
		{cx, cy + rayLength},
		{cx - rayWidth, cy},
	}, mainRay)

	// Horizontal ray.
	layer.fillPolygon([]point{
		{cx - rayLength, cy},
		{cx, cy - rayWidth},
		{cx + rayLength, cy},
		{cx, cy + rayWidth},
	}, mainRay)

	diagLength := rayLength * 0.6
	diagWidth := rayWidth * 0.7
	diagOffset := diagLength * 0.707
	diagRay := color.NRGBA{R: 255, G: 255, B: 255, A: 150}

	layer.fillPolygon([]point{
		{cx - diagOffset, cy - diagOffset},
		{cx + diagWidth*0.5, cy - diagWidth*0.5},
		{cx + diagOffset, cy + diagOffset},
		{cx - diagWidth*0.5, cy + diagWidth*0.5},
	}, diagRay)

	layer.fillPolygon([]point{
		{cx + diagOffset, cy - diagOffset},
		{cx + diagWidth*0.5, cy + diagWidth*0.5},
		{cx - diagOffset, cy + diagOffset},
		{cx - diagWidth*0.5, cy - diagWidth*0.5},
	}, diagRay)

	layer.fillCircle(cx, cy, rayWidth*1.2, color.NRGBA{R: 255, G: 255, B: 255, A: 220})

	return layer.dst
}

// Paths returns the gold and gray output paths for dir and prefix.
func Paths(dir, prefix string) (gold, gray string) {
	return Path(dir, prefix, Gold), Path(dir, prefix, Gray)
}

// Path returns <dir>/<prefix>_<variant>.png.
func Path(dir, prefix string, v Variant) string {
	return filepath.Join(dir, prefix+"_"+v.String()+".png")
}

// Save renders a badge and writes it as PNG to path.
func Save(path string, size int, v Variant) error {
	img, err := Render(size, v)
	if err != nil {
		return err
	}
	if err := imageio.SavePNG(path, img); err != nil {
		return fmt.Errorf("badge: %w", err)
	}
	sdfgen.Logger().Info("badge: wrote", "path", path, "variant", v)
	return nil
}
