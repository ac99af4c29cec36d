// Package render paints one frame of the particle field onto any surface that
// satisfies the Surface contract. It never mutates particle state; the
// simulation owns that.
package render

import "image/color"

// Surface is the 2D raster the engine draws on. Any graphics backend with
// filled primitives, styled strokes and a glow parameter can implement it.
//
// SetGlow applies to every subsequent fill until ClearGlow; the engine
// brackets each glowing shape with the pair so glow never leaks between
// draws.
type Surface interface {
	// Size returns the surface extent in surface units.
	Size() (width, height float64)

	FillRect(x, y, w, h float64, fill color.Color)
	FillCircle(cx, cy, r float64, fill color.Color)
	FillTriangle(x0, y0, x1, y1, x2, y2 float64, fill color.Color)

	StrokeLine(x0, y0, x1, y1, width float64, stroke color.Color)
	// StrokeDashedLine strokes with a repeating on/off dash pattern, both
	// lengths in surface units.
	StrokeDashedLine(x0, y0, x1, y1, width, on, off float64, stroke color.Color)
	// StrokeGradientLine strokes with a two-stop linear gradient running
	// from (x0,y0) to (x1,y1).
	StrokeGradientLine(x0, y0, x1, y1, width float64, from, to color.Color)

	SetGlow(radius float64, tint color.Color)
	ClearGlow()
}
