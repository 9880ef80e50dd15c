package chart

import (
	"image/color"
	"math"
	"time"
)

var (
	gridColor      = color.NRGBA{R: 255, G: 255, B: 255, A: 13}
	gridLabelColor = color.NRGBA{R: 255, G: 255, B: 255, A: 77}
	markerColor    = color.NRGBA{R: 186, G: 166, B: 87, A: 255}
	markerCore     = color.NRGBA{R: 255, G: 255, B: 255, A: 204}
	fillTint       = color.NRGBA{R: 84, G: 164, B: 80, A: 255}

	// Stroke gradient hue stops, left to right: deep green, green, gold.
	strokeStops = []ColorStop{
		{Offset: 0, Color: hsvColor(117, 0.50, 0.48, 0.8)},
		{Offset: 0.5, Color: hsvColor(117, 0.51, 0.64, 1)},
		{Offset: 1, Color: hsvColor(48, 0.53, 0.73, 1)},
	}
)

const (
	strokeWidth     = 3.0
	markerRadius    = 6.0
	pulseAmplitude  = 0.3
	glowLayers      = 4
	glowRadius      = 15.0 // at pulse 1
	labelGap        = 5.0
	labelBaseline   = 4.0
	fillAlphaTop    = 0.3
	fillAlphaBottom = 0.05
)

// Point is a position in surface pixels.
type Point struct{ X, Y float64 }

// Frame is everything the renderer needs to draw one frame.
type Frame struct {
	Samples []Sample // visible window, oldest first
	Mapper  Mapper
	Seed    float64
	Pulse   float64 // marker phase in radians
	Marker  bool    // draw the live marker
	Burst   *burst  // crash burst, nil when idle or done
	Elapsed time.Duration
}

// Renderer draws grid, curve, fill and marker onto a Surface.
type Renderer struct {
	GridLines int
	Jitter    Jitter
}

// Draw clears the surface and paints the whole scene.
func (r *Renderer) Draw(s Surface, f Frame) {
	s.Clear()
	r.drawGrid(s, f.Mapper)
	r.drawElapsed(s, f.Mapper.Plot, f.Elapsed)

	pts := r.Points(f.Samples, f.Mapper, f.Seed)
	if len(pts) >= 2 {
		s.Clip(f.Mapper.Plot)
		drawCurve(s, pts, f.Mapper.Plot)
		s.ResetClip()
		if f.Marker && f.Burst == nil {
			last := pts[len(pts)-1]
			drawMarker(s, last.X, last.Y, f.Pulse)
		}
	}

	if f.Burst != nil {
		drawBurst(s, *f.Burst)
	}
}

// Points maps samples to pixel positions, including jitter.
func (r *Renderer) Points(samples []Sample, m Mapper, seed float64) []Point {
	pts := make([]Point, 0, len(samples))
	for _, smp := range samples {
		y := m.Y(smp.Multiplier) + r.Jitter.Offset(smp.Time, smp.Multiplier, seed)
		pts = append(pts, Point{
			X: m.X(smp.Time),
			Y: clamp(y, m.Plot.Top, m.Plot.Bottom),
		})
	}
	return pts
}

func (r *Renderer) drawGrid(s Surface, m Mapper) {
	for _, line := range m.Grid(r.GridLines) {
		var p Path
		p.MoveTo(m.Plot.Left, line.Y)
		p.LineTo(m.Plot.Right, line.Y)
		s.Stroke(&p, Solid(gridColor), StrokeStyle{Width: 1})
		s.Text(line.Label, m.Plot.Left-labelGap, line.Y+labelBaseline, AlignRight, gridLabelColor)
	}
}

func (r *Renderer) drawElapsed(s Surface, plot Rect, elapsed time.Duration) {
	s.Text(FormatElapsed(elapsed), plot.Right, plot.Bottom+18, AlignRight, gridLabelColor)
}

// curvePath smooths the polyline with quadratic segments through midpoints.
func curvePath(pts []Point) *Path {
	var p Path
	p.MoveTo(pts[0].X, pts[0].Y)
	for i := 1; i < len(pts); i++ {
		prev, cur := pts[i-1], pts[i]
		p.QuadTo(prev.X, prev.Y, (prev.X+cur.X)/2, (prev.Y+cur.Y)/2)
	}
	last := pts[len(pts)-1]
	p.LineTo(last.X, last.Y)
	return &p
}

func drawCurve(s Surface, pts []Point, plot Rect) {
	first, last := pts[0], pts[len(pts)-1]

	area := curvePath(pts)
	area.LineTo(last.X, plot.Bottom)
	area.LineTo(first.X, plot.Bottom)
	area.Close()
	s.Fill(area, Paint{Gradient: &Gradient{
		X0: 0, Y0: plot.Top, X1: 0, Y1: plot.Bottom,
		Stops: []ColorStop{
			{Offset: 0, Color: withAlpha(fillTint, fillAlphaTop)},
			{Offset: 1, Color: withAlpha(fillTint, fillAlphaBottom)},
		},
	}})

	s.Stroke(curvePath(pts), Paint{Gradient: &Gradient{
		X0: plot.Left, Y0: 0, X1: plot.Right, Y1: 0,
		Stops: strokeStops,
	}}, StrokeStyle{Width: strokeWidth})
}

// pulseFactor oscillates around 1 with the marker phase.
func pulseFactor(phase float64) float64 {
	return 1 + pulseAmplitude*math.Sin(phase)
}

func drawMarker(s Surface, x, y, phase float64) {
	pulse := pulseFactor(phase)

	// Glow: stacked translucent discs shrinking towards the marker.
	for i := glowLayers; i >= 1; i-- {
		r := markerRadius*pulse + glowRadius*pulse*float64(i)/glowLayers
		var g Path
		g.Circle(x, y, r)
		s.Fill(&g, Solid(withAlpha(markerColor, 0.08)))
	}

	var disc Path
	disc.Circle(x, y, markerRadius*pulse)
	s.Fill(&disc, Solid(markerColor))

	var core Path
	core.Circle(x, y, markerRadius*0.7)
	s.Fill(&core, Solid(markerCore))

	var ring Path
	ring.Circle(x, y, (markerRadius+3)*pulse)
	s.Stroke(&ring, Solid(withAlpha(markerColor, 0.5/pulse)), StrokeStyle{Width: 2})
}
