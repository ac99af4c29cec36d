package main

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// canvas implements render.Surface on an ebiten image. A fresh value wraps the
// screen every frame, so glow state never survives a frame boundary.
type canvas struct {
	dst        *ebiten.Image
	glowRadius float64
	glowTint   color.Color
}

const (
	// Concentric translucent layers approximating the glow blur.
	glowLayers = 4
	// Peak alpha of the innermost glow layer.
	glowPeakAlpha = 0.3

	// Segment length used to approximate gradient strokes.
	gradientStep = 6.0
	// Cap on gradient segments per stroke so long lines stay cheap.
	gradientMaxSegments = 32
)

var (
	whiteOnce sync.Once
	whiteSrc  *ebiten.Image
)

// whiteSource returns the 1x1 white pixel used as the texture for filled
// triangle paths.
func whiteSource() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSrc = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSrc
}

func (c *canvas) Size() (float64, float64) {
	b := c.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *canvas) SetGlow(radius float64, tint color.Color) {
	c.glowRadius = radius
	c.glowTint = tint
}

func (c *canvas) ClearGlow() {
	c.glowRadius = 0
	c.glowTint = nil
}

func (c *canvas) FillRect(x, y, w, h float64, fill color.Color) {
	if c.glowRadius > 0 {
		c.halo(x+w/2, y+h/2, max(w, h)/2)
	}
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), fill, true)
}

func (c *canvas) FillCircle(cx, cy, r float64, fill color.Color) {
	if c.glowRadius > 0 {
		c.halo(cx, cy, r)
	}
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), fill, true)
}

func (c *canvas) FillTriangle(x0, y0, x1, y1, x2, y2 float64, fill color.Color) {
	if c.glowRadius > 0 {
		cx := (x0 + x1 + x2) / 3
		cy := (y0 + y1 + y2) / 3
		r := max(math.Hypot(x0-cx, y0-cy), math.Hypot(x1-cx, y1-cy), math.Hypot(x2-cx, y2-cy))
		c.halo(cx, cy, r)
	}

	var path vector.Path
	path.MoveTo(float32(x0), float32(y0))
	path.LineTo(float32(x1), float32(y1))
	path.LineTo(float32(x2), float32(y2))
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	col := toNRGBA(fill)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(col.R) / 255
		vs[i].ColorG = float32(col.G) / 255
		vs[i].ColorB = float32(col.B) / 255
		vs[i].ColorA = float32(col.A) / 255
	}
	c.dst.DrawTriangles(vs, is, whiteSource(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (c *canvas) StrokeLine(x0, y0, x1, y1, width float64, stroke color.Color) {
	vector.StrokeLine(c.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), stroke, true)
}

func (c *canvas) StrokeDashedLine(x0, y0, x1, y1, width, on, off float64, stroke color.Color) {
	length := math.Hypot(x1-x0, y1-y0)
	spans := dashSpans(length, on, off)
	if len(spans) == 0 {
		return
	}
	ux := (x1 - x0) / length
	uy := (y1 - y0) / length
	for _, s := range spans {
		vector.StrokeLine(c.dst,
			float32(x0+ux*s[0]), float32(y0+uy*s[0]),
			float32(x0+ux*s[1]), float32(y0+uy*s[1]),
			float32(width), stroke, true)
	}
}

func (c *canvas) StrokeGradientLine(x0, y0, x1, y1, width float64, from, to color.Color) {
	length := math.Hypot(x1-x0, y1-y0)
	if length <= 0 {
		return
	}
	n := gradientSegments(length)
	for i := 0; i < n; i++ {
		t0 := float64(i) / float64(n)
		t1 := float64(i+1) / float64(n)
		seg := lerpNRGBA(from, to, (t0+t1)/2)
		vector.StrokeLine(c.dst,
			float32(x0+(x1-x0)*t0), float32(y0+(y1-y0)*t0),
			float32(x0+(x1-x0)*t1), float32(y0+(y1-y0)*t1),
			float32(width), seg, true)
	}
}

// halo fakes a blur by stacking translucent circles from the glow edge down
// to the shape, brightest innermost.
func (c *canvas) halo(cx, cy, base float64) {
	tint := toNRGBA(c.glowTint)
	for i := glowLayers; i >= 1; i-- {
		t := float64(i) / float64(glowLayers+1)
		layer := tint
		layer.A = uint8(glowPeakAlpha * (1 - t) * 255)
		vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(base+c.glowRadius*t), layer, true)
	}
}

// dashSpans returns the painted [start,end] offsets of a repeating on/off
// dash pattern along a stroke of the given length.
func dashSpans(length, on, off float64) [][2]float64 {
	if length <= 0 || on <= 0 {
		return nil
	}
	if off < 0 {
		off = 0
	}
	var spans [][2]float64
	for start := 0.0; start < length; start += on + off {
		spans = append(spans, [2]float64{start, min(start+on, length)})
	}
	return spans
}

func gradientSegments(length float64) int {
	n := int(length/gradientStep) + 1
	return min(n, gradientMaxSegments)
}

func lerpNRGBA(from, to color.Color, t float64) color.NRGBA {
	a := toNRGBA(from)
	b := toNRGBA(to)
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}

func toNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
