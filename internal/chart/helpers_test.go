package chart

import (
	"image/color"
	"math"
	"math/rand"
	"time"
)

type fakeClock struct{ now time.Time }

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type drawCall struct {
	kind  string // fill, stroke, text, clip, unclip
	ops   []PathOp
	paint Paint
	width float64
	text  string
	x, y  float64
	align Align
	color color.NRGBA
}

// recordSurface captures drawing calls instead of rasterising them.
type recordSurface struct {
	w, h   float64
	clears int
	calls  []drawCall
}

func newRecordSurface() *recordSurface { return &recordSurface{w: 800, h: 450} }

func (s *recordSurface) Size() (float64, float64) { return s.w, s.h }

func (s *recordSurface) Clear() {
	s.clears++
	s.calls = s.calls[:0]
}

func (s *recordSurface) Clip(r Rect) {
	s.calls = append(s.calls, drawCall{kind: "clip", x: r.Left, y: r.Top})
}

func (s *recordSurface) ResetClip() {
	s.calls = append(s.calls, drawCall{kind: "unclip"})
}

func (s *recordSurface) Fill(p *Path, paint Paint) {
	s.calls = append(s.calls, drawCall{kind: "fill", ops: append([]PathOp(nil), p.Ops()...), paint: paint})
}

func (s *recordSurface) Stroke(p *Path, paint Paint, style StrokeStyle) {
	s.calls = append(s.calls, drawCall{kind: "stroke", ops: append([]PathOp(nil), p.Ops()...), paint: paint, width: style.Width})
}

func (s *recordSurface) Text(str string, x, y float64, align Align, c color.NRGBA) {
	s.calls = append(s.calls, drawCall{kind: "text", text: str, x: x, y: y, align: align, color: c})
}

func (s *recordSurface) count(kind string) int {
	n := 0
	for _, c := range s.calls {
		if c.kind == kind {
			n++
		}
	}
	return n
}

// gradientCalls returns fills and strokes painted with a gradient (curve and area).
func (s *recordSurface) gradientCalls() []drawCall {
	var out []drawCall
	for _, c := range s.calls {
		if (c.kind == "fill" || c.kind == "stroke") && c.paint.Gradient != nil {
			out = append(out, c)
		}
	}
	return out
}

// burstDrawn reports whether anything was painted in the crash colour.
func (s *recordSurface) burstDrawn() bool {
	for _, c := range s.calls {
		if c.kind != "fill" && c.kind != "stroke" {
			continue
		}
		col := c.paint.Color
		if c.paint.Gradient == nil && col.R == crashColor.R && col.G == crashColor.G && col.B == crashColor.B {
			return true
		}
	}
	return false
}

type labelRecorder struct {
	text    string
	crashed bool
	calls   int
}

func (l *labelRecorder) SetLabel(text string, crashed bool) {
	l.text, l.crashed = text, crashed
	l.calls++
}

func newTestEngine(clock *fakeClock, q *FrameQueue, mutate func(*Options)) *Engine {
	opts := DefaultOptions()
	opts.Clock = clock
	opts.Scheduler = q
	opts.Rand = rand.New(rand.NewSource(7))
	if mutate != nil {
		mutate(&opts)
	}
	return NewEngine(opts)
}

func nan() float64 { return math.NaN() }
