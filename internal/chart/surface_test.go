package chart

import (
	"image/color"
	"math"
	"testing"
	"time"
)

func TestGradient_At(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	g := &Gradient{X0: 0, Y0: 0, X1: 100, Y1: 0, Stops: []ColorStop{{0, red}, {1, blue}}}

	if c := g.At(-10, 50); c != red {
		t.Errorf("before start = %v, want red", c)
	}
	if c := g.At(200, 0); c != blue {
		t.Errorf("past end = %v, want blue", c)
	}
	if c := g.At(50, 999); c.R != 128 || c.B != 128 {
		t.Errorf("middle = %v, want an even mix", c)
	}
}

func TestGradient_ThreeStops(t *testing.T) {
	g := &Gradient{X0: 0, Y0: 0, X1: 0, Y1: 10, Stops: []ColorStop{
		{0, color.NRGBA{A: 0}},
		{0.5, color.NRGBA{A: 200}},
		{1, color.NRGBA{A: 100}},
	}}
	if a := g.At(0, 5).A; a != 200 {
		t.Errorf("alpha at middle stop = %d, want 200", a)
	}
	if a := g.At(0, 7.5).A; a != 150 {
		t.Errorf("alpha between 2nd and 3rd stop = %d, want 150", a)
	}
}

func TestGradient_Degenerate(t *testing.T) {
	c := color.NRGBA{G: 9, A: 255}
	g := &Gradient{Stops: []ColorStop{{0, c}}}
	if got := g.At(3, 3); got != c {
		t.Errorf("zero-length gradient = %v, want first stop", got)
	}
	if got := (&Gradient{}).At(1, 1); got != (color.NRGBA{}) {
		t.Errorf("no stops = %v, want transparent", got)
	}
}

func TestPath_Circle(t *testing.T) {
	var p Path
	p.Circle(10, 20, 5)
	ops := p.Ops()
	if len(ops) != 3 || ops[0].Kind != OpMoveTo || ops[1].Kind != OpArc || ops[2].Kind != OpClose {
		t.Fatalf("circle ops = %+v", ops)
	}
	if ops[0].X != 15 || ops[0].Y != 20 {
		t.Errorf("circle starts at (%v, %v), want (15, 20)", ops[0].X, ops[0].Y)
	}
}

func TestFrameQueue(t *testing.T) {
	var q FrameQueue
	s := newRecordSurface()
	if q.Fire(s) {
		t.Fatal("empty queue fired")
	}

	var fired []int
	tok1 := q.RequestFrame(func(Surface) { fired = append(fired, 1) })
	tok2 := q.RequestFrame(func(Surface) { fired = append(fired, 2) })
	q.CancelFrame(tok1) // stale token leaves the newer request alone
	if !q.Fire(s) || len(fired) != 1 || fired[0] != 2 {
		t.Fatalf("fired = %v, want [2]", fired)
	}

	tok3 := q.RequestFrame(func(Surface) { fired = append(fired, 3) })
	q.CancelFrame(tok3)
	if q.Fire(s) {
		t.Error("cancelled request fired")
	}
	if tok2 == tok3 {
		t.Error("tokens reused")
	}
}

func TestJitter(t *testing.T) {
	j := Jitter{Enabled: true, Base: 1.5, Growth: 0.8, Max: 6}
	if a := j.Amplitude(1); a != 1.5 {
		t.Errorf("amplitude at floor = %v", a)
	}
	if a := j.Amplitude(3); math.Abs(a-3.1) > 1e-9 {
		t.Errorf("amplitude at 3x = %v", a)
	}
	if a := j.Amplitude(100); a != 6 {
		t.Errorf("amplitude not capped: %v", a)
	}
	for ms := 0; ms < 20000; ms += 13 {
		m := 1 + float64(ms)/2000
		off := j.Offset(time.Duration(ms)*time.Millisecond, m, 2.2)
		if off > j.Amplitude(m)+1e-9 || off < -j.Amplitude(m)-1e-9 {
			t.Fatalf("offset %v exceeds amplitude %v", off, j.Amplitude(m))
		}
	}
	j.Enabled = false
	if off := j.Offset(time.Second, 5, 1); off != 0 {
		t.Errorf("disabled jitter = %v", off)
	}
}

func TestFormatting(t *testing.T) {
	if s := FormatMultiplier(2.5); s != "2.50x" {
		t.Errorf("FormatMultiplier = %q", s)
	}
	if s := FormatElapsed(75 * time.Second); s != "01:15" {
		t.Errorf("FormatElapsed = %q", s)
	}
}
