package field

import (
	"image/color"
	"math"

	"github.com/crazy3lf/colorconv"

	"github.com/Michaell14/particle-visualizer-go/internal/config"
)

// HSL is the color space particles live in: hue in degrees [0,360), saturation
// and lightness in percent [0,100]. Hue cycling and palette reseeds operate on
// this triple; conversion to RGBA happens only when painting.
type HSL struct {
	H, S, L float64
}

// RGBToHSL converts an 8-bit RGB color to HSL. Channels are normalized to
// [0,1]; the hue case for a red maximum adds a full turn when green < blue so
// the result never goes negative.
func RGBToHSL(c config.RGB) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	hi := max(r, g, b)
	lo := min(r, g, b)
	l := (hi + lo) / 2

	if hi == lo {
		// Achromatic: hue and saturation collapse to zero.
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := hi - lo
	var s float64
	if l > 0.5 {
		s = d / (2 - hi - lo)
	} else {
		s = d / (hi + lo)
	}

	var h float64
	switch hi {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}

	return HSL{H: h * 60, S: s * 100, L: l * 100}
}

// Color resolves the triple into a paintable color with the given opacity in
// [0,1]. Inputs are clamped so the conversion can never fail mid-frame.
func (c HSL) Color(alpha float64) color.NRGBA {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	s := min(max(c.S/100, 0), 1)
	l := min(max(c.L/100, 0), 1)

	r, g, b, err := colorconv.HSLToRGB(h, s, l)
	if err != nil {
		r, g, b = 255, 255, 255
	}
	return color.NRGBA{R: r, G: g, B: b, A: alphaByte(alpha)}
}

func alphaByte(a float64) uint8 {
	return uint8(min(max(a, 0), 1)*255 + 0.5)
}
