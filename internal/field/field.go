// Package field owns the particle data model and the simulation engine that
// advances it. Rendering reads the particle list but never writes it.
package field

import (
	"math"
	"math/rand"
	"time"

	"github.com/aquilax/go-perlin"

	"github.com/Michaell14/particle-visualizer-go/internal/config"
)

// Lightness used when seeding rainbow colors. A mode switch reseeds at half
// lightness (full color); particles spawned afterwards start at full
// lightness and paint white until the next reseed.
const (
	rainbowSpawnLight = 100.0
	rainbowResetLight = 50.0
)

// Field holds the particle list, the surface bounds, and the latest pointer
// position. It has a single writer (the tick loop plus the pointer sink, both
// driven by the same frame callback), so no locking is involved.
type Field struct {
	particles []*Particle

	width  float64
	height float64

	pointerX   float64
	pointerY   float64
	pointerSet bool

	noise *perlin.Perlin
	rng   *rand.Rand
}

// New creates an empty field. Bounds are set once the surface reports its
// size; particles appear on the first Resize.
func New(width, height float64) *Field {
	return newField(width, height, time.Now().UnixNano())
}

func newField(width, height float64, seed int64) *Field {
	return &Field{
		width:  width,
		height: height,
		noise:  perlin.NewPerlin(2, 2, 3, seed),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Particles exposes the live particle list for rendering. Callers must not
// grow or shrink it; that is Resize's job.
func (f *Field) Particles() []*Particle {
	return f.particles
}

// Bounds returns the current surface extent.
func (f *Field) Bounds() (width, height float64) {
	return f.width, f.height
}

// SetBounds updates the surface extent. Particles outside the new bounds are
// pulled back in by the boundary reflection of the next Step.
func (f *Field) SetBounds(width, height float64) {
	f.width = width
	f.height = height
}

// SetPointer records the latest pointer position in surface coordinates.
// Latest value wins; there is no queue.
func (f *Field) SetPointer(x, y float64) {
	f.pointerX = x
	f.pointerY = y
	f.pointerSet = true
}

// Resize grows the particle list by spawning or shrinks it by truncation until
// it holds exactly n particles. Survivors keep their position, velocity and
// color untouched.
func (f *Field) Resize(n int, cfg config.Settings) {
	if n < 0 {
		n = 0
	}
	for len(f.particles) < n {
		f.particles = append(f.particles, f.spawn(cfg))
	}
	if len(f.particles) > n {
		f.particles = f.particles[:n]
	}
}

// ApplySize overwrites every particle's size with the configured one. Called
// eagerly when the size setting changes, not per tick.
func (f *Field) ApplySize(size float64) {
	for _, p := range f.particles {
		p.Size = size
	}
}

// ApplyPalette reseeds every particle's color from scratch for the given
// settings: the base color's HSL for solid mode, an independent random hue at
// full saturation and half lightness for rainbow mode.
func (f *Field) ApplyPalette(cfg config.Settings) {
	for _, p := range f.particles {
		p.Color = f.seedColor(cfg, rainbowResetLight)
	}
}

// spawn creates one particle with a random position inside the bounds, a
// random heading at spawn speed, and a color seeded per the active mode.
func (f *Field) spawn(cfg config.Settings) *Particle {
	heading := f.rng.Float64() * 2 * math.Pi
	speed := spawnSpeedMin + f.rng.Float64()*(spawnSpeedMax-spawnSpeedMin)
	return &Particle{
		X:     f.rng.Float64() * f.width,
		Y:     f.rng.Float64() * f.height,
		VX:    math.Cos(heading) * speed,
		VY:    math.Sin(heading) * speed,
		Size:  cfg.ParticleSize,
		Color: f.seedColor(cfg, rainbowSpawnLight),
	}
}

func (f *Field) seedColor(cfg config.Settings, rainbowLight float64) HSL {
	if cfg.ColorMode == config.ColorRainbow {
		return HSL{H: f.rng.Float64() * 360, S: 100, L: rainbowLight}
	}
	return RGBToHSL(cfg.BaseColor)
}
