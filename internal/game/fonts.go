package game

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/crash-chart/internal/config"
)

type fonts struct {
	grid  text.Face // axis labels
	label text.Face // live multiplier
}

// loadFonts builds the faces from the embedded Go fonts.
func loadFonts() (*fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}
	log.Printf("[font] Go Regular / Go Bold (embedded)")

	return &fonts{
		grid:  &text.GoTextFace{Source: regular, Size: config.GridLabelSize},
		label: &text.GoTextFace{Source: bold, Size: config.LabelFontSize},
	}, nil
}
