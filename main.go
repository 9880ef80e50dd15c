package main

import (
	"errors"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/crash-chart/internal/game"
)

func main() {
	flag.Parse()
	cfg := loadConfig()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Crash Chart - Space: start, C: crash, S: stop drawing, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	g, err := game.New(cfg)
	if err != nil {
		panic(err)
	}
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		panic(err)
	}
}
