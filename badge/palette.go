package badge

import (
	"fmt"
	"image/color"
	"strings"
)

// Variant selects the badge color scheme.
type Variant int

const (
	// Gold is the unlocked badge: warm gold ramp plus a sparkle.
	Gold Variant = iota
	// Gray is the discovered-but-locked badge.
	Gray
)

// Variants lists every variant in render order.
var Variants = []Variant{Gold, Gray}

// String returns the lower-case variant name used in file names.
func (v Variant) String() string {
	switch v {
	case Gold:
		return "gold"
	case Gray:
		return "gray"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant returns the variant named s (case-insensitive).
func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants {
		if strings.EqualFold(s, v.String()) {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Palette is the five-color ramp of a badge, from the rim to the center.
type Palette struct {
	Edge      color.NRGBA
	Outer     color.NRGBA
	Mid       color.NRGBA
	Inner     color.NRGBA
	Highlight color.NRGBA
}

// Palette returns the fixed palette of v.
func (v Variant) Palette() Palette {
	if v == Gold {
		return Palette{
			Edge:      color.NRGBA{R: 139, G: 90, B: 0, A: 255},
			Outer:     color.NRGBA{R: 184, G: 134, B: 11, A: 255},
			Mid:       color.NRGBA{R: 218, G: 165, B: 32, A: 255},
			Inner:     color.NRGBA{R: 255, G: 215, B: 0, A: 255},
			Highlight: color.NRGBA{R: 255, G: 245, B: 180, A: 255},
		}
	}
	return Palette{
		Edge:      color.NRGBA{R: 80, G: 80, B: 80, A: 255},
		Outer:     color.NRGBA{R: 120, G: 120, B: 120, A: 255},
		Mid:       color.NRGBA{R: 160, G: 160, B: 160, A: 255},
		Inner:     color.NRGBA{R: 190, G: 190, B: 190, A: 255},
		Highlight: color.NRGBA{R: 210, G: 210, B: 210, A: 255},
	}
}

// colorStop is a color at a position along the ramp.
type colorStop struct {
	offset float64
	color  color.NRGBA
}

func (p Palette) stops() []colorStop {
	return []colorStop{
		{0, p.Edge},
		{0.1, p.Outer},
		{0.4, p.Mid},
		{0.7, p.Inner},
		{1, p.Highlight},
	}
}

// At returns the ramp color at t, where 0 is the rim and 1 the center.
// t is clamped to [0, 1]. Channels are interpolated per segment and
// truncated to integers.
func (p Palette) At(t float64) color.NRGBA {
	t = clamp01(t)
	stops := p.stops()
	for i := 1; i < len(stops)-1; i++ {
		if t < stops[i].offset {
			a, b := stops[i-1], stops[i]
			return lerp(a.color, b.color, (t-a.offset)/(b.offset-a.offset))
		}
	}
	a, b := stops[len(stops)-2], stops[len(stops)-1]
	return lerp(a.color, b.color, (t-a.offset)/(b.offset-a.offset))
}

// lerp interpolates each channel linearly, truncating toward zero.
func lerp(c1, c2 color.NRGBA, t float64) color.NRGBA {
	ch := func(a, b uint8) uint8 {
		v := float64(a) + (float64(b)-float64(a))*t
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return uint8(v)
	}
	return color.NRGBA{
		R: ch(c1.R, c2.R),
		G: ch(c1.G, c2.G),
		B: ch(c1.B, c2.B),
		A: ch(c1.A, c2.A),
	}
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
