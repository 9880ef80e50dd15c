package chart

import (
	"fmt"
	"math"
	"time"
)

const (
	// Floor is the lowest multiplier the vertical axis shows.
	Floor = 1.0

	// degenerateCeiling replaces a ceiling that does not exceed the floor.
	degenerateCeiling = Floor * 1.2
)

// Orientation selects where the newest sample sits horizontally.
type Orientation int

const (
	NewestRight Orientation = iota // oldest on the left
	NewestLeft
)

// Rect is the plot area in surface pixels.
type Rect struct {
	Left, Top, Right, Bottom float64
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Padding separates the plot from the surface edges.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// Plot returns the drawable area of a w×h surface.
func (p Padding) Plot(w, h float64) Rect {
	r := Rect{Left: p.Left, Top: p.Top, Right: w - p.Right, Bottom: h - p.Bottom}
	if r.Right < r.Left {
		r.Right = r.Left
	}
	if r.Bottom < r.Top {
		r.Bottom = r.Top
	}
	return r
}

// Ceiling returns the top of the vertical axis for the live multiplier. It
// moves in discrete steps so the scale does not creep every frame.
func Ceiling(m float64) float64 {
	switch {
	case math.IsNaN(m) || m <= 2.0:
		return 2.5
	case m <= 5.0:
		return 6
	case m <= 10.0:
		return 12
	case math.IsInf(m, 1):
		return math.MaxFloat64
	}
	// 1e-9 absorbs float error in m*1.2 for whole multipliers (20 -> 24, not 25).
	return math.Ceil(m*1.2 - 1e-9)
}

// Mapper converts (time, multiplier) pairs into plot coordinates for one frame.
type Mapper struct {
	Plot        Rect
	Window      time.Duration
	Elapsed     time.Duration
	Ceiling     float64
	Orientation Orientation
}

// X maps a sample time onto the horizontal extent.
func (m Mapper) X(t time.Duration) float64 {
	if m.Window <= 0 {
		return m.Plot.Right
	}
	f := float64(m.Elapsed-t) / float64(m.Window)
	if m.Orientation == NewestRight {
		f = 1 - f
	}
	return clamp(m.Plot.Left+m.Plot.Width()*f, m.Plot.Left, m.Plot.Right)
}

// Y maps a multiplier onto the vertical extent using a log scale anchored at
// Floor. Results are always inside the plot.
func (m Mapper) Y(v float64) float64 {
	ceiling := m.Ceiling
	if !(ceiling > Floor) || math.IsInf(ceiling, 0) {
		ceiling = degenerateCeiling
	}
	if !(v > Floor) {
		v = Floor
	}
	ratio := (math.Log(v) - math.Log(Floor)) / (math.Log(ceiling) - math.Log(Floor))
	y := m.Plot.Bottom - ratio*m.Plot.Height()
	if math.IsNaN(y) {
		return m.Plot.Bottom
	}
	return clamp(y, m.Plot.Top, m.Plot.Bottom)
}

// GridLine is one labelled horizontal rule.
type GridLine struct {
	Value float64
	Y     float64
	Label string
}

// Grid returns lines+1 rules evenly log-spaced from the ceiling (first) down
// to the floor (last).
func (m Mapper) Grid(lines int) []GridLine {
	if lines < 1 {
		lines = 1
	}
	ceiling := m.Ceiling
	if !(ceiling > Floor) || math.IsInf(ceiling, 0) {
		ceiling = degenerateCeiling
	}
	out := make([]GridLine, 0, lines+1)
	for i := 0; i <= lines; i++ {
		frac := 1 - float64(i)/float64(lines)
		v := Floor * math.Exp(math.Log(ceiling/Floor)*frac)
		out = append(out, GridLine{Value: v, Y: m.Y(v), Label: FormatMultiplier(v)})
	}
	return out
}

// FormatMultiplier renders a multiplier the way labels show it ("2.50x").
func FormatMultiplier(v float64) string {
	return fmt.Sprintf("%.2fx", v)
}
