package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/iburimskiy/crash-chart/internal/chart"
)

var (
	labelLive    = color.RGBA{R: 255, G: 255, B: 255, A: 235}
	labelCrashed = color.RGBA{R: 202, G: 57, B: 89, A: 255}
)

// multiplierLabel is the big readout above the curve. The engine pushes text
// into it; the game draws it after the chart each frame.
type multiplierLabel struct {
	text    string
	crashed bool
	face    text.Face
}

func (l *multiplierLabel) SetLabel(s string, crashed bool) {
	l.text = s
	l.crashed = crashed
}

func (l *multiplierLabel) color() color.Color {
	if l.crashed {
		return labelCrashed
	}
	return labelLive
}

func (l *multiplierLabel) draw(screen *ebiten.Image, x, y float64) {
	if l.text == "" || l.face == nil {
		return
	}
	drawText(screen, l.text, l.face, x, y, chart.AlignCenter, l.color())
}
