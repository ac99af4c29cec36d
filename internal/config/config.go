// Package config holds the adjustable parameters of the visualizer as an
// immutable snapshot. The running loop reads one Settings value per tick;
// every change produces a fresh value, so engines never observe a half-applied
// update.
package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ColorMode selects how particle colors are seeded and evolve.
type ColorMode uint8

const (
	// ColorSolid derives every particle's color from the configured base color.
	ColorSolid ColorMode = iota
	// ColorRainbow seeds each particle with an independent hue that cycles over time.
	ColorRainbow
)

var colorModeNames = [...]string{"solid", "rainbow"}

func (m ColorMode) String() string {
	if int(m) < len(colorModeNames) {
		return colorModeNames[m]
	}
	return "unknown"
}

// Next returns the following mode, wrapping around.
func (m ColorMode) Next() ColorMode {
	return ColorMode((int(m) + 1) % len(colorModeNames))
}

func (m ColorMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *ColorMode) UnmarshalText(b []byte) error {
	for i, name := range colorModeNames {
		if string(b) == name {
			*m = ColorMode(i)
			return nil
		}
	}
	return fmt.Errorf("unknown color mode %q", b)
}

// Shape selects the primitive painted for each particle.
type Shape uint8

const (
	ShapeCircle Shape = iota
	ShapeSquare
	ShapeTriangle
)

var shapeNames = [...]string{"circle", "square", "triangle"}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "unknown"
}

// Next returns the following shape, wrapping around.
func (s Shape) Next() Shape {
	return Shape((int(s) + 1) % len(shapeNames))
}

func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Shape) UnmarshalText(b []byte) error {
	for i, name := range shapeNames {
		if string(b) == name {
			*s = Shape(i)
			return nil
		}
	}
	return fmt.Errorf("unknown particle shape %q", b)
}

// LineStyle selects how connection lines between nearby particles are stroked.
type LineStyle uint8

const (
	LineSolid LineStyle = iota
	LineDashed
	LineGradient
)

var lineStyleNames = [...]string{"solid", "dashed", "gradient"}

func (l LineStyle) String() string {
	if int(l) < len(lineStyleNames) {
		return lineStyleNames[l]
	}
	return "unknown"
}

// Next returns the following style, wrapping around.
func (l LineStyle) Next() LineStyle {
	return LineStyle((int(l) + 1) % len(lineStyleNames))
}

func (l LineStyle) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *LineStyle) UnmarshalText(b []byte) error {
	for i, name := range lineStyleNames {
		if string(b) == name {
			*l = LineStyle(i)
			return nil
		}
	}
	return fmt.Errorf("unknown line style %q", b)
}

// RGB is an 8-bit-per-channel color, the form the configuration surface
// produces (hex strings). Conversion to the particle color space happens in
// the field package.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses "#rrggbb" or "rrggbb", case-insensitive. Anything else is
// rejected so a malformed color can never reach the engines.
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q", s)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex formats the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

func (c *RGB) UnmarshalText(b []byte) error {
	parsed, err := ParseHex(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Settings is one complete snapshot of the configuration surface. Numeric
// fields are clamped to their slider ranges by Clamp; enums and the base
// color are validated at parse time.
type Settings struct {
	ParticleCount      int       `json:"particleCount"`
	ParticleSize       float64   `json:"particleSize"`
	ParticleShape      Shape     `json:"particleShape"`
	ColorMode          ColorMode `json:"colorMode"`
	BaseColor          RGB       `json:"baseColor"`
	LineStyle          LineStyle `json:"lineStyle"`
	LineWidth          int       `json:"lineWidth"`
	ConnectionDistance float64   `json:"connectionDistance"`
	TrailLength        float64   `json:"trailLength"`
	GlowEffect         bool      `json:"glowEffect"`
	GlowIntensity      float64   `json:"glowIntensity"`
	MouseRepulsion     bool      `json:"mouseRepulsion"`
	MouseRadius        float64   `json:"mouseRepulsionRadius"`
	MouseForce         float64   `json:"mouseForce"`
	Turbulence         float64   `json:"turbulence"`
}

// Slider ranges of the configuration surface.
const (
	MinParticleCount = 50
	MaxParticleCount = 200

	MinParticleSize = 1.0
	MaxParticleSize = 10.0

	MinLineWidth = 1
	MaxLineWidth = 10

	MinConnectionDistance = 50.0
	MaxConnectionDistance = 500.0

	MaxGlowIntensity = 5.0
	MaxMouseRadius   = 200.0
	MaxMouseForce    = 10.0
	MaxTurbulence    = 2.0
)

// Default returns the settings the visualizer boots with.
func Default() Settings {
	return Settings{
		ParticleCount:      100,
		ParticleSize:       3,
		ParticleShape:      ShapeCircle,
		ColorMode:          ColorSolid,
		BaseColor:          RGB{R: 255, G: 255, B: 255},
		LineStyle:          LineSolid,
		LineWidth:          1,
		ConnectionDistance: 120,
		TrailLength:        0.2,
		GlowEffect:         false,
		GlowIntensity:      2,
		MouseRepulsion:     true,
		MouseRadius:        100,
		MouseForce:         5,
		Turbulence:         0,
	}
}

// Clamp forces every numeric parameter into its slider range. It mirrors what
// the range inputs of the settings panel enforce, so out-of-range values from
// presets or flags degrade deterministically instead of propagating.
func (s *Settings) Clamp() {
	s.ParticleCount = min(max(s.ParticleCount, MinParticleCount), MaxParticleCount)
	s.ParticleSize = min(max(s.ParticleSize, MinParticleSize), MaxParticleSize)
	s.LineWidth = min(max(s.LineWidth, MinLineWidth), MaxLineWidth)
	s.ConnectionDistance = min(max(s.ConnectionDistance, MinConnectionDistance), MaxConnectionDistance)
	s.TrailLength = min(max(s.TrailLength, 0), 1)
	s.GlowIntensity = min(max(s.GlowIntensity, 0), MaxGlowIntensity)
	s.MouseRadius = min(max(s.MouseRadius, 0), MaxMouseRadius)
	s.MouseForce = min(max(s.MouseForce, 0), MaxMouseForce)
	s.Turbulence = min(max(s.Turbulence, 0), MaxTurbulence)
}

// Validate reports enum fields that fell outside their known values, which can
// only happen when a Settings was built programmatically rather than parsed.
func (s Settings) Validate() error {
	if int(s.ColorMode) >= len(colorModeNames) {
		return fmt.Errorf("color mode out of range: %d", s.ColorMode)
	}
	if int(s.ParticleShape) >= len(shapeNames) {
		return fmt.Errorf("particle shape out of range: %d", s.ParticleShape)
	}
	if int(s.LineStyle) >= len(lineStyleNames) {
		return fmt.Errorf("line style out of range: %d", s.LineStyle)
	}
	return nil
}
