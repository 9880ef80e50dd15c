package chart

import (
	"math"
	"testing"
	"time"
)

func TestCrashState_ProgressMonotonic(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	cs := &CrashState{Start: start, Duration: time.Second}

	prev := -1.0
	for ms := 0; ms <= 2500; ms += 37 {
		p := cs.Progress(start.Add(time.Duration(ms) * time.Millisecond))
		if p < prev {
			t.Fatalf("progress decreased at %dms: %v < %v", ms, p, prev)
		}
		if p < 0 || p > 1 {
			t.Fatalf("progress %v out of [0,1] at %dms", p, ms)
		}
		prev = p
	}
	if p := cs.Progress(start.Add(5 * time.Second)); p != 1 {
		t.Errorf("progress past duration = %v, want 1", p)
	}
	if p := cs.Progress(start.Add(-time.Second)); p != 0 {
		t.Errorf("progress before start = %v, want 0", p)
	}
}

func TestEaseOutCubic(t *testing.T) {
	tests := []struct{ p, want float64 }{
		{0, 0},
		{0.5, 0.875},
		{1, 1},
	}
	for _, tt := range tests {
		if got := easeOutCubic(tt.p); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("easeOutCubic(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestCrashState_FrameGeometry(t *testing.T) {
	cs := &CrashState{Duration: time.Second, AnchorX: 700, AnchorY: 400}
	const height, top = 400.0, 20.0

	b0 := cs.frame(0, height, top)
	if b0.Y != 400 || b0.Radius != crashRadius || b0.Alpha != 1 {
		t.Errorf("start frame = %+v", b0)
	}

	half := cs.frame(0.5, height, top)
	if want := 400 - 0.5*height*0.875; math.Abs(half.Y-want) > 1e-9 {
		t.Errorf("half-way y = %v, want %v", half.Y, want)
	}
	if half.Alpha != 0.75 {
		t.Errorf("half-way alpha = %v, want 0.75", half.Alpha)
	}
	for i := 1; i < len(half.Rings); i++ {
		if half.Rings[i].Radius <= half.Rings[i-1].Radius {
			t.Errorf("ring %d not larger than ring %d", i, i-1)
		}
		if half.Rings[i].Alpha >= half.Rings[i-1].Alpha {
			t.Errorf("ring %d not fainter than ring %d", i, i-1)
		}
	}

	end := cs.frame(1, height, top)
	if end.X != 700 {
		t.Errorf("burst drifted horizontally to %v", end.X)
	}
	if end.Alpha != 0.5 {
		t.Errorf("end alpha = %v, want 0.5", end.Alpha)
	}
	for _, r := range end.Rings {
		if r.Alpha != 0 {
			t.Errorf("ring alpha at end = %v, want 0", r.Alpha)
		}
	}

	// a low anchor cannot fly above the plot
	high := (&CrashState{AnchorY: 30}).frame(1, height, top)
	if high.Y < top {
		t.Errorf("burst y = %v above plot top %v", high.Y, top)
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseExploding.String() != "exploding" || PhaseDone.String() != "done" || PhaseIdle.String() != "idle" {
		t.Error("unexpected phase names")
	}
}
