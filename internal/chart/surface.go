package chart

import (
	"image/color"
	"math"
	"time"
)

// OpKind identifies a path segment.
type OpKind int

const (
	OpMoveTo OpKind = iota
	OpLineTo
	OpQuadTo
	OpArc
	OpClose
)

// PathOp is one recorded path command. Unused fields are zero.
//
//	MoveTo/LineTo: X, Y
//	QuadTo:        CX, CY (control), X, Y (end)
//	Arc:           X, Y (centre), Radius, Start, End (radians, clockwise)
type PathOp struct {
	Kind       OpKind
	X, Y       float64
	CX, CY     float64
	Radius     float64
	Start, End float64
}

// Path is a backend-neutral list of drawing commands. Surfaces translate it
// to whatever their graphics API needs.
type Path struct {
	ops []PathOp
}

func (p *Path) MoveTo(x, y float64) {
	p.ops = append(p.ops, PathOp{Kind: OpMoveTo, X: x, Y: y})
}

func (p *Path) LineTo(x, y float64) {
	p.ops = append(p.ops, PathOp{Kind: OpLineTo, X: x, Y: y})
}

func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.ops = append(p.ops, PathOp{Kind: OpQuadTo, CX: cx, CY: cy, X: x, Y: y})
}

func (p *Path) Arc(x, y, radius, start, end float64) {
	p.ops = append(p.ops, PathOp{Kind: OpArc, X: x, Y: y, Radius: radius, Start: start, End: end})
}

// Circle adds a closed full circle as its own subpath.
func (p *Path) Circle(x, y, radius float64) {
	p.MoveTo(x+radius, y)
	p.Arc(x, y, radius, 0, 2*math.Pi)
	p.Close()
}

func (p *Path) Close() {
	p.ops = append(p.ops, PathOp{Kind: OpClose})
}

// Ops returns the recorded commands. The slice must not be modified.
func (p *Path) Ops() []PathOp { return p.ops }

// ColorStop is a colour at an offset in [0, 1] along a gradient.
type ColorStop struct {
	Offset float64
	Color  color.NRGBA
}

// Gradient is a linear gradient from (X0, Y0) to (X1, Y1).
type Gradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []ColorStop // ascending offsets
}

// At evaluates the gradient at a point by projecting it onto the gradient
// axis. Points before the first or past the last stop take the end colour.
func (g *Gradient) At(x, y float64) color.NRGBA {
	if len(g.Stops) == 0 {
		return color.NRGBA{}
	}
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	var t float64
	if l2 := dx*dx + dy*dy; l2 > 0 {
		t = ((x-g.X0)*dx + (y-g.Y0)*dy) / l2
	}
	t = clamp01(t)

	if t <= g.Stops[0].Offset {
		return g.Stops[0].Color
	}
	for i := 1; i < len(g.Stops); i++ {
		a, b := g.Stops[i-1], g.Stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		return lerpColor(a.Color, b.Color, (t-a.Offset)/span)
	}
	return g.Stops[len(g.Stops)-1].Color
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// Paint is either a solid colour or, when Gradient is set, a gradient.
type Paint struct {
	Color    color.NRGBA
	Gradient *Gradient
}

// ColorAt returns the paint colour at a point.
func (p Paint) ColorAt(x, y float64) color.NRGBA {
	if p.Gradient != nil {
		return p.Gradient.At(x, y)
	}
	return p.Color
}

func Solid(c color.NRGBA) Paint { return Paint{Color: c} }

// StrokeStyle controls outlines. Round caps and joins are always used.
type StrokeStyle struct {
	Width float64
}

// Align is the horizontal anchor of a text run.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Surface is the minimal drawing capability the renderer needs. Coordinates
// are in surface pixels with the origin at the top-left corner.
type Surface interface {
	Size() (w, h float64)
	Clear()
	Clip(r Rect)
	ResetClip()
	Fill(p *Path, paint Paint)
	Stroke(p *Path, paint Paint, style StrokeStyle)
	// Text draws s with its baseline at y.
	Text(s string, x, y float64, align Align, c color.NRGBA)
}

// FrameToken identifies a pending frame request.
type FrameToken uint64

// FrameScheduler runs callbacks once per display frame. A cancelled request
// never fires.
type FrameScheduler interface {
	RequestFrame(fn func(Surface)) FrameToken
	CancelFrame(FrameToken)
}

// Clock supplies wall time to the engine.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// LabelSink receives the formatted multiplier. crashed flips when the round
// ends so the label can be restyled.
type LabelSink interface {
	SetLabel(text string, crashed bool)
}
