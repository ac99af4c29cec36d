package field

import (
	"math"

	"github.com/Michaell14/particle-visualizer-go/internal/config"
)

const (
	// baseSpeed is the floor every particle is pushed back to along its
	// current heading, so the field never stalls.
	baseSpeed = 1.0
	// maxSpeed caps what repeated pointer repulsion can pump into a particle.
	// Reflection is elastic, so without a ceiling the energy never bleeds off.
	maxSpeed = 15.0

	// Spawn speed range; the floor keeps freshly spawned particles legal.
	spawnSpeedMin = 1.0
	spawnSpeedMax = 2.0

	// Spatial frequency of the turbulence flow field.
	turbulenceScale = 0.003

	// Degrees the hue of a rainbow particle advances per tick.
	rainbowHueStep = 1.0
)

// Step advances every particle by one tick: optional turbulence drift,
// optional pointer repulsion, speed floor and ceiling, position integration,
// and boundary reflection, in that order. Rainbow hues advance here, once per
// tick, so paint sampling stays pure no matter how often a color is resolved.
func (f *Field) Step(cfg config.Settings) {
	rainbow := cfg.ColorMode == config.ColorRainbow

	for _, p := range f.particles {
		if cfg.Turbulence > 0 {
			f.drift(p, cfg.Turbulence)
		}
		if cfg.MouseRepulsion && f.pointerSet {
			f.repel(p, cfg.MouseRadius, cfg.MouseForce)
		}

		speed := math.Hypot(p.VX, p.VY)
		if speed < baseSpeed {
			heading := math.Atan2(p.VY, p.VX)
			p.VX = math.Cos(heading) * baseSpeed
			p.VY = math.Sin(heading) * baseSpeed
		} else if speed > maxSpeed {
			scale := maxSpeed / speed
			p.VX *= scale
			p.VY *= scale
		}

		p.X += p.VX
		p.Y += p.VY

		// Elastic reflection, each axis clamped independently so corner
		// hits resolve in a single tick.
		if p.X < 0 {
			p.X = 0
			p.VX = math.Abs(p.VX)
		}
		if p.X > f.width {
			p.X = f.width
			p.VX = -math.Abs(p.VX)
		}
		if p.Y < 0 {
			p.Y = 0
			p.VY = math.Abs(p.VY)
		}
		if p.Y > f.height {
			p.Y = f.height
			p.VY = -math.Abs(p.VY)
		}

		if rainbow {
			p.Color.H = math.Mod(p.Color.H+rainbowHueStep, 360)
		}
	}
}

// repel pushes the particle directly away from the pointer with a linear
// falloff: full force at the pointer, none at the radius edge.
func (f *Field) repel(p *Particle, radius, force float64) {
	dx := p.X - f.pointerX
	dy := p.Y - f.pointerY
	d := math.Hypot(dx, dy)
	if d >= radius {
		return
	}
	falloff := (radius - d) / radius
	angle := math.Atan2(dy, dx)
	p.VX += falloff * force * math.Cos(angle)
	p.VY += falloff * force * math.Sin(angle)
}

// drift nudges the particle along a perlin flow field sampled at its position.
func (f *Field) drift(p *Particle, strength float64) {
	n := f.noise.Noise2D(p.X*turbulenceScale, p.Y*turbulenceScale)
	angle := (n + 1) / 2 * 2 * math.Pi
	p.VX += math.Cos(angle) * strength
	p.VY += math.Sin(angle) * strength
}
