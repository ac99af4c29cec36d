package render

import (
	"image/color"
	"testing"

	"github.com/Michaell14/particle-visualizer-go/internal/config"
	"github.com/Michaell14/particle-visualizer-go/internal/field"
)

type surfaceOp struct {
	kind string
	args []float64
	cols []color.Color
}

// fakeSurface records every draw call so tests can assert on order, geometry
// and color without a graphics backend.
type fakeSurface struct {
	w, h float64
	ops  []surfaceOp
}

func newFakeSurface(w, h float64) *fakeSurface {
	return &fakeSurface{w: w, h: h}
}

func (s *fakeSurface) record(kind string, args []float64, cols ...color.Color) {
	s.ops = append(s.ops, surfaceOp{kind: kind, args: args, cols: cols})
}

func (s *fakeSurface) Size() (float64, float64) { return s.w, s.h }

func (s *fakeSurface) FillRect(x, y, w, h float64, fill color.Color) {
	s.record("rect", []float64{x, y, w, h}, fill)
}

func (s *fakeSurface) FillCircle(cx, cy, r float64, fill color.Color) {
	s.record("circle", []float64{cx, cy, r}, fill)
}

func (s *fakeSurface) FillTriangle(x0, y0, x1, y1, x2, y2 float64, fill color.Color) {
	s.record("triangle", []float64{x0, y0, x1, y1, x2, y2}, fill)
}

func (s *fakeSurface) StrokeLine(x0, y0, x1, y1, width float64, stroke color.Color) {
	s.record("line", []float64{x0, y0, x1, y1, width}, stroke)
}

func (s *fakeSurface) StrokeDashedLine(x0, y0, x1, y1, width, on, off float64, stroke color.Color) {
	s.record("dashLine", []float64{x0, y0, x1, y1, width, on, off}, stroke)
}

func (s *fakeSurface) StrokeGradientLine(x0, y0, x1, y1, width float64, from, to color.Color) {
	s.record("gradLine", []float64{x0, y0, x1, y1, width}, from, to)
}

func (s *fakeSurface) SetGlow(radius float64, tint color.Color) {
	s.record("setGlow", []float64{radius}, tint)
}

func (s *fakeSurface) ClearGlow() {
	s.record("clearGlow", nil)
}

func (s *fakeSurface) kinds() []string {
	out := make([]string, len(s.ops))
	for i, op := range s.ops {
		out[i] = op.kind
	}
	return out
}

func nrgba(c color.Color) color.NRGBA {
	return c.(color.NRGBA)
}

func particleAt(x, y float64) *field.Particle {
	return &field.Particle{X: x, Y: y, Size: 3, Color: field.HSL{H: 0, S: 0, L: 100}}
}

func TestFrameTrailFade(t *testing.T) {
	tests := []struct {
		trail float64
		alpha uint8
	}{
		{0, 255},
		{0.2, 204},
		{0.75, 64},
		{1, 0},
	}

	for _, tt := range tests {
		cfg := config.Default()
		cfg.TrailLength = tt.trail

		s := newFakeSurface(800, 600)
		Frame(s, nil, cfg)

		if len(s.ops) != 1 {
			t.Fatalf("Expected exactly one op for an empty field, got %d", len(s.ops))
		}
		op := s.ops[0]
		if op.kind != "rect" {
			t.Fatalf("Expected the frame to open with a fade rect, got %q", op.kind)
		}
		if op.args[0] != 0 || op.args[1] != 0 || op.args[2] != 800 || op.args[3] != 600 {
			t.Errorf("Expected fade rect to cover the surface, got %v", op.args)
		}
		got := nrgba(op.cols[0])
		if got.R != 0 || got.G != 0 || got.B != 0 {
			t.Errorf("Expected a black fade wash, got %v", got)
		}
		if got.A != tt.alpha {
			t.Errorf("Trail %v: expected fade alpha %d, got %d", tt.trail, tt.alpha, got.A)
		}
	}
}

func TestFrameOrderFadeParticlesConnections(t *testing.T) {
	cfg := config.Default()
	particles := []*field.Particle{particleAt(100, 100), particleAt(150, 100)}

	s := newFakeSurface(800, 600)
	Frame(s, particles, cfg)

	want := []string{"rect", "circle", "circle", "line"}
	got := s.kinds()
	if len(got) != len(want) {
		t.Fatalf("Expected ops %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected ops %v, got %v", want, got)
		}
	}
}

func TestParticleShapeGeometry(t *testing.T) {
	p := &field.Particle{X: 50, Y: 60, Size: 4, Color: field.HSL{L: 100}}

	t.Run("circle", func(t *testing.T) {
		cfg := config.Default()
		cfg.ParticleShape = config.ShapeCircle

		s := newFakeSurface(800, 600)
		Frame(s, []*field.Particle{p}, cfg)

		op := s.ops[1]
		if op.kind != "circle" {
			t.Fatalf("Expected circle op, got %q", op.kind)
		}
		if op.args[0] != 50 || op.args[1] != 60 || op.args[2] != 4 {
			t.Errorf("Expected circle at (50,60) radius 4, got %v", op.args)
		}
	})

	t.Run("square", func(t *testing.T) {
		cfg := config.Default()
		cfg.ParticleShape = config.ShapeSquare

		s := newFakeSurface(800, 600)
		Frame(s, []*field.Particle{p}, cfg)

		op := s.ops[1]
		if op.kind != "rect" {
			t.Fatalf("Expected rect op, got %q", op.kind)
		}
		want := []float64{46, 56, 8, 8}
		for i, v := range want {
			if op.args[i] != v {
				t.Fatalf("Expected square args %v, got %v", want, op.args)
			}
		}
	})

	t.Run("triangle", func(t *testing.T) {
		cfg := config.Default()
		cfg.ParticleShape = config.ShapeTriangle

		s := newFakeSurface(800, 600)
		Frame(s, []*field.Particle{p}, cfg)

		op := s.ops[1]
		if op.kind != "triangle" {
			t.Fatalf("Expected triangle op, got %q", op.kind)
		}
		// Apex above the center, base corners below.
		want := []float64{50, 56, 46, 64, 54, 64}
		for i, v := range want {
			if op.args[i] != v {
				t.Fatalf("Expected triangle args %v, got %v", want, op.args)
			}
		}
	})
}

func TestGlowBracketsEveryParticle(t *testing.T) {
	cfg := config.Default()
	cfg.GlowEffect = true
	cfg.GlowIntensity = 2
	// Far apart so no connection line muddies the sequence.
	cfg.ConnectionDistance = config.MinConnectionDistance
	particles := []*field.Particle{particleAt(0, 0), particleAt(700, 500)}

	s := newFakeSurface(800, 600)
	Frame(s, particles, cfg)

	want := []string{"rect", "setGlow", "circle", "clearGlow", "setGlow", "circle", "clearGlow"}
	got := s.kinds()
	if len(got) != len(want) {
		t.Fatalf("Expected ops %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected ops %v, got %v", want, got)
		}
	}

	glow := s.ops[1]
	if glow.args[0] != 40 {
		t.Errorf("Expected glow radius 40 for intensity 2, got %v", glow.args[0])
	}
	if nrgba(glow.cols[0]) != particles[0].Color.Color(1) {
		t.Errorf("Expected glow tinted with the particle color, got %v", glow.cols[0])
	}
}

func TestNoGlowOpsWhenDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.GlowEffect = false

	s := newFakeSurface(800, 600)
	Frame(s, []*field.Particle{particleAt(100, 100)}, cfg)

	for _, op := range s.ops {
		if op.kind == "setGlow" || op.kind == "clearGlow" {
			t.Fatalf("Expected no glow ops when disabled, got %v", s.kinds())
		}
	}
}

func TestConnectionOpacityFalloff(t *testing.T) {
	cfg := config.Default()
	cfg.ConnectionDistance = 120

	lineAlpha := func(d float64) uint8 {
		s := newFakeSurface(800, 600)
		Frame(s, []*field.Particle{particleAt(100, 100), particleAt(100+d, 100)}, cfg)
		last := s.ops[len(s.ops)-1]
		if last.kind != "line" {
			t.Fatalf("Expected a line for distance %v, got %q", d, last.kind)
		}
		return nrgba(last.cols[0]).A
	}

	if got := lineAlpha(0); got != 51 {
		t.Errorf("Expected alpha 51 at zero distance, got %d", got)
	}
	if got := lineAlpha(60); got != 26 {
		t.Errorf("Expected alpha 26 at half distance, got %d", got)
	}

	prev := lineAlpha(10)
	for d := 20.0; d < 120; d += 10 {
		cur := lineAlpha(d)
		if cur > prev {
			t.Fatalf("Expected opacity to fall with distance, got %d then %d at %v", prev, cur, d)
		}
		prev = cur
	}
}

func TestNoConnectionAtThreshold(t *testing.T) {
	cfg := config.Default()
	cfg.ConnectionDistance = 120

	s := newFakeSurface(800, 600)
	Frame(s, []*field.Particle{particleAt(100, 100), particleAt(220, 100)}, cfg)

	for _, op := range s.ops {
		if op.kind == "line" {
			t.Fatal("Expected no line at exactly the connection distance")
		}
	}
}

func TestDashedConnections(t *testing.T) {
	cfg := config.Default()
	cfg.LineStyle = config.LineDashed
	cfg.LineWidth = 2

	s := newFakeSurface(800, 600)
	Frame(s, []*field.Particle{particleAt(100, 100), particleAt(160, 100)}, cfg)

	last := s.ops[len(s.ops)-1]
	if last.kind != "dashLine" {
		t.Fatalf("Expected a dashed line, got %q", last.kind)
	}
	if last.args[4] != 2 {
		t.Errorf("Expected stroke width 2, got %v", last.args[4])
	}
	if last.args[5] != 5 || last.args[6] != 5 {
		t.Errorf("Expected 5 on / 5 off dash pattern, got %v on / %v off", last.args[5], last.args[6])
	}
	c := nrgba(last.cols[0])
	if c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("Expected white dashes, got %v", c)
	}
}

func TestGradientConnectionsUseEndpointColors(t *testing.T) {
	cfg := config.Default()
	cfg.LineStyle = config.LineGradient

	a := &field.Particle{X: 100, Y: 100, Size: 3, Color: field.HSL{H: 0, S: 100, L: 50}}
	b := &field.Particle{X: 160, Y: 100, Size: 3, Color: field.HSL{H: 240, S: 100, L: 50}}

	s := newFakeSurface(800, 600)
	Frame(s, []*field.Particle{a, b}, cfg)

	last := s.ops[len(s.ops)-1]
	if last.kind != "gradLine" {
		t.Fatalf("Expected a gradient line, got %q", last.kind)
	}
	from := nrgba(last.cols[0])
	to := nrgba(last.cols[1])
	if from.R != 255 || from.G != 0 || from.B != 0 {
		t.Errorf("Expected gradient to start red, got %v", from)
	}
	if to.R != 0 || to.G != 0 || to.B != 255 {
		t.Errorf("Expected gradient to end blue, got %v", to)
	}
	// Half distance inside the 120 threshold fades both stops to alpha 26.
	if from.A != 26 || to.A != 26 {
		t.Errorf("Expected both stops at alpha 26, got %d and %d", from.A, to.A)
	}
}

func TestFrameLeavesParticlesUntouched(t *testing.T) {
	cfg := config.Default()
	cfg.ColorMode = config.ColorRainbow
	cfg.GlowEffect = true

	particles := []*field.Particle{
		{X: 10, Y: 20, VX: 1, VY: 2, Size: 3, Color: field.HSL{H: 15, S: 100, L: 50}},
		{X: 40, Y: 20, VX: -1, VY: 0, Size: 3, Color: field.HSL{H: 200, S: 100, L: 50}},
	}
	before := []field.Particle{*particles[0], *particles[1]}

	s := newFakeSurface(800, 600)
	Frame(s, particles, cfg)

	for i := range particles {
		if *particles[i] != before[i] {
			t.Errorf("Expected particle %d untouched by rendering, got %+v, want %+v", i, *particles[i], before[i])
		}
	}
}

func BenchmarkFrame(b *testing.B) {
	cfg := config.Default()
	cfg.ParticleCount = config.MaxParticleCount

	particles := make([]*field.Particle, cfg.ParticleCount)
	for i := range particles {
		particles[i] = &field.Particle{
			X:     float64(i%20)*64 + 7,
			Y:     float64(i/20)*70 + 11,
			Size:  3,
			Color: field.HSL{H: float64(i * 7 % 360), S: 100, L: 50},
		}
	}
	s := newFakeSurface(1280, 720)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.ops = s.ops[:0]
		Frame(s, particles, cfg)
	}
}
