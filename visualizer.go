package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Michaell14/particle-visualizer-go/internal/config"
	"github.com/Michaell14/particle-visualizer-go/internal/field"
	"github.com/Michaell14/particle-visualizer-go/internal/render"
)

// Base colors cycled by the B key while in solid mode.
var basePalette = []config.RGB{
	{R: 0xff, G: 0xff, B: 0xff}, // white
	{R: 0xff, G: 0x33, B: 0x66}, // pink
	{R: 0x33, G: 0xcc, B: 0xff}, // sky
	{R: 0x66, G: 0xff, B: 0x66}, // mint
	{R: 0xff, G: 0xcc, B: 0x33}, // amber
	{R: 0xcc, G: 0x66, B: 0xff}, // violet
}

var (
	radiusSteps = []float64{50, 100, 150, 200}
	forceSteps  = []float64{2, 5, 8, 10}
)

// Visualizer hosts the particle field inside the game loop. Update advances
// the simulation at the fixed tick rate, Draw paints into a persistent trail
// buffer exactly once per tick and blits it to the screen.
type Visualizer struct {
	cfg   config.Settings
	field *field.Field

	width, height int
	buffer        *ebiten.Image

	tick     uint64
	painted  uint64
	showHelp bool

	paletteIdx int
}

func NewVisualizer(cfg config.Settings) *Visualizer {
	cfg.Clamp()
	return &Visualizer{cfg: cfg}
}

func (v *Visualizer) Update() error {
	if v.width == 0 || v.height == 0 {
		return nil
	}
	if v.field == nil {
		v.field = field.New(float64(v.width), float64(v.height))
	}
	if w, h := v.field.Bounds(); w != float64(v.width) || h != float64(v.height) {
		v.field.SetBounds(float64(v.width), float64(v.height))
	}

	if err := v.handleKeys(); err != nil {
		return err
	}

	if len(v.field.Particles()) != v.cfg.ParticleCount {
		v.field.Resize(v.cfg.ParticleCount, v.cfg)
	}

	if x, y := ebiten.CursorPosition(); x >= 0 && x < v.width && y >= 0 && y < v.height {
		v.field.SetPointer(float64(x), float64(y))
	}

	v.field.Step(v.cfg)
	v.tick++
	return nil
}

func (v *Visualizer) Draw(screen *ebiten.Image) {
	if v.field == nil {
		screen.Fill(color.Black)
		return
	}

	v.ensureBuffer()
	// Repaint at most once per simulation tick so the trail fade stays in
	// step with the simulation no matter the display refresh rate.
	if v.painted != v.tick {
		v.painted = v.tick
		render.Frame(&canvas{dst: v.buffer}, v.field.Particles(), v.cfg)
	}

	screen.DrawImage(v.buffer, nil)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS %.0f  TPS %.0f  particles %d  [H] help",
		ebiten.ActualFPS(), ebiten.ActualTPS(), len(v.field.Particles())))
	if v.showHelp {
		v.drawHelp(screen)
	}
}

func (v *Visualizer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.width, v.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// ensureBuffer keeps the trail buffer matched to the window, carrying the
// accumulated trails over when the window is resized.
func (v *Visualizer) ensureBuffer() {
	if v.buffer != nil {
		b := v.buffer.Bounds()
		if b.Dx() == v.width && b.Dy() == v.height {
			return
		}
	}
	next := ebiten.NewImage(v.width, v.height)
	next.Fill(color.Black)
	if v.buffer != nil {
		next.DrawImage(v.buffer, nil)
	}
	v.buffer = next
}

func (v *Visualizer) handleKeys() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		v.showHelp = !v.showHelp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		v.updateSettings(func(s *config.Settings) { s.ColorMode = s.ColorMode.Next() })
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		v.paletteIdx = (v.paletteIdx + 1) % len(basePalette)
		v.updateSettings(func(s *config.Settings) {
			s.ColorMode = config.ColorSolid
			s.BaseColor = basePalette[v.paletteIdx]
		})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		v.updateSettings(func(s *config.Settings) { s.ParticleShape = s.ParticleShape.Next() })
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		v.updateSettings(func(s *config.Settings) { s.LineStyle = s.LineStyle.Next() })
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		v.updateSettings(func(s *config.Settings) { s.GlowEffect = !s.GlowEffect })
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		v.updateSettings(func(s *config.Settings) {
			s.GlowIntensity = math.Mod(s.GlowIntensity, config.MaxGlowIntensity) + 1
		})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.updateSettings(func(s *config.Settings) { s.MouseRepulsion = !s.MouseRepulsion })
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		v.updateSettings(func(s *config.Settings) {
			if s.Turbulence > 0 {
				s.Turbulence = 0
			} else {
				s.Turbulence = 0.6
			}
		})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		v.updateSettings(func(s *config.Settings) { s.MouseRadius = nextStep(s.MouseRadius, radiusSteps) })
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		v.updateSettings(func(s *config.Settings) { s.MouseForce = nextStep(s.MouseForce, forceSteps) })
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		v.updateSettings(func(s *config.Settings) { s.ParticleCount += 10 })
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		v.updateSettings(func(s *config.Settings) { s.ParticleCount -= 10 })
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		v.updateSettings(func(s *config.Settings) { s.ConnectionDistance += 10 })
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		v.updateSettings(func(s *config.Settings) { s.ConnectionDistance -= 10 })
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		v.updateSettings(func(s *config.Settings) { s.ParticleSize += 0.5 })
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		v.updateSettings(func(s *config.Settings) { s.ParticleSize -= 0.5 })
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		v.updateSettings(func(s *config.Settings) { s.TrailLength += 0.05 })
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		v.updateSettings(func(s *config.Settings) { s.TrailLength -= 0.05 })
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPeriod) {
		v.updateSettings(func(s *config.Settings) { s.LineWidth++ })
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyComma) {
		v.updateSettings(func(s *config.Settings) { s.LineWidth-- })
	}
	return nil
}

// updateSettings applies a mutation, clamps the result, and pushes the
// changes that reseed live particles into the field immediately.
func (v *Visualizer) updateSettings(mutate func(*config.Settings)) {
	prev := v.cfg
	mutate(&v.cfg)
	v.cfg.Clamp()
	if v.field == nil {
		return
	}
	if v.cfg.ParticleSize != prev.ParticleSize {
		v.field.ApplySize(v.cfg.ParticleSize)
	}
	if v.cfg.ColorMode != prev.ColorMode || v.cfg.BaseColor != prev.BaseColor {
		v.field.ApplyPalette(v.cfg)
	}
}

func nextStep(cur float64, steps []float64) float64 {
	for i, s := range steps {
		if cur == s {
			return steps[(i+1)%len(steps)]
		}
	}
	return steps[0]
}

var helpLines = []string{
	"C  color mode    B  base color     S  shape",
	"L  line style    G  glow           I  glow intensity",
	"R  repulsion     D  radius         F  force",
	"T  turbulence    up/down  count    left/right  link dist",
	"-/=  size        [/]  trail        ,/.  line width",
	"H  hide help     Q/Esc  quit",
}

func (v *Visualizer) drawHelp(screen *ebiten.Image) {
	const (
		pad      = 12
		lineStep = 16
		charW    = 7 // Face7x13 advance
	)
	w := 0
	for _, line := range helpLines {
		if n := len(line) * charW; n > w {
			w = n
		}
	}
	x, y := 20, 44
	h := len(helpLines) * lineStep
	vector.DrawFilledRect(screen, float32(x-pad), float32(y-13-pad/2),
		float32(w+2*pad), float32(h+pad), color.NRGBA{A: 160}, false)
	for i, line := range helpLines {
		text.Draw(screen, line, basicfont.Face7x13, x, y+i*lineStep, color.White)
	}
}
