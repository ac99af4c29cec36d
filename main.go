package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Michaell14/particle-visualizer-go/internal/config"
)

func main() {
	var (
		preset     = flag.String("preset", "", "path to a JSON preset file")
		particles  = flag.Int("particles", 0, "particle count override (50-200)")
		width      = flag.Int("width", 1280, "window width")
		height     = flag.Int("height", 720, "window height")
		fullscreen = flag.Bool("fullscreen", false, "start fullscreen")
	)
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		log.Fatal("window size must be positive")
	}

	cfg := config.Default()
	if *preset != "" {
		loaded, err := config.LoadPreset(*preset)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	if *particles > 0 {
		cfg.ParticleCount = *particles
	}
	cfg.Clamp()

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Particle Visualizer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreen)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(NewVisualizer(cfg)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
