package render

import (
	"image/color"
	"math"

	"github.com/Michaell14/particle-visualizer-go/internal/config"
	"github.com/Michaell14/particle-visualizer-go/internal/field"
)

const (
	// lineBaseAlpha is the connection opacity at zero distance; it fades
	// linearly to zero at the connection threshold.
	lineBaseAlpha = 0.2

	// Dash pattern of the dashed line style, in surface units.
	dashOn  = 5.0
	dashOff = 5.0

	// glowScale maps the glow intensity setting to a blur radius.
	glowScale = 20.0
)

// Frame paints exactly one frame: a trail-fade wash over the whole surface,
// every particle in the configured shape, then a connection line for each
// pair closer than the connection distance. Particle state is read, never
// written.
func Frame(dst Surface, particles []*field.Particle, cfg config.Settings) {
	w, h := dst.Size()
	fade := 1 - min(max(cfg.TrailLength, 0), 1)
	dst.FillRect(0, 0, w, h, color.NRGBA{A: alphaByte(fade)})

	for _, p := range particles {
		paintParticle(dst, p, cfg)
	}

	drawConnections(dst, particles, cfg)
}

func paintParticle(dst Surface, p *field.Particle, cfg config.Settings) {
	fill := p.Color.Color(1)

	if cfg.GlowEffect {
		dst.SetGlow(cfg.GlowIntensity*glowScale, fill)
	}

	switch cfg.ParticleShape {
	case config.ShapeSquare:
		dst.FillRect(p.X-p.Size, p.Y-p.Size, p.Size*2, p.Size*2, fill)
	case config.ShapeTriangle:
		// Isosceles: apex above center, base below.
		dst.FillTriangle(p.X, p.Y-p.Size, p.X-p.Size, p.Y+p.Size, p.X+p.Size, p.Y+p.Size, fill)
	default:
		dst.FillCircle(p.X, p.Y, p.Size, fill)
	}

	if cfg.GlowEffect {
		dst.ClearGlow()
	}
}

func drawConnections(dst Surface, particles []*field.Particle, cfg config.Settings) {
	maxDist := cfg.ConnectionDistance
	if maxDist <= 0 {
		return
	}
	width := float64(cfg.LineWidth)

	for i := 0; i < len(particles); i++ {
		a := particles[i]
		for j := i + 1; j < len(particles); j++ {
			b := particles[j]
			d := math.Hypot(b.X-a.X, b.Y-a.Y)
			if d >= maxDist {
				continue
			}
			opacity := lineBaseAlpha * (1 - d/maxDist)

			switch cfg.LineStyle {
			case config.LineDashed:
				dst.StrokeDashedLine(a.X, a.Y, b.X, b.Y, width, dashOn, dashOff, white(opacity))
			case config.LineGradient:
				dst.StrokeGradientLine(a.X, a.Y, b.X, b.Y, width, a.Color.Color(opacity), b.Color.Color(opacity))
			default:
				dst.StrokeLine(a.X, a.Y, b.X, b.Y, width, white(opacity))
			}
		}
	}
}

func white(alpha float64) color.NRGBA {
	return color.NRGBA{R: 255, G: 255, B: 255, A: alphaByte(alpha)}
}

func alphaByte(a float64) uint8 {
	return uint8(min(max(a, 0), 1)*255 + 0.5)
}
