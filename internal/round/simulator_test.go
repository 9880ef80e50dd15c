package round

import (
	"math/rand"
	"testing"
	"time"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestCrashPoint_Bounds(t *testing.T) {
	tests := []struct {
		r        float64
		min, max float64
	}{
		{0, 1.0, 1.0},
		{0.25, 1.0, 1.5},
		{0.6, 1.5, 3.0},
		{0.9, 3.0, 10.0},
		{0.97, 10.0, 50.0},
		{0.995, 50.0, 200.0},
		{1, 50.0, 200.0},
		{-1, 1.0, 1.0},
	}
	for _, tt := range tests {
		got := CrashPoint(tt.r)
		if got < tt.min || got > tt.max {
			t.Errorf("CrashPoint(%v) = %v, want in [%v, %v]", tt.r, got, tt.min, tt.max)
		}
	}
}

func TestCrashPoint_Distribution(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const rounds = 100_000
	low := 0
	for i := 0; i < rounds; i++ {
		if CrashPoint(rng.Float64()) < 3.0 {
			low++
		}
	}
	if p := float64(low) / rounds; p < 0.83 || p > 0.87 {
		t.Errorf("share below 3x = %.3f, want ~0.85", p)
	}
}

func TestMultiplierAt(t *testing.T) {
	if m := MultiplierAt(0.1, 0); m != 1 {
		t.Errorf("at 0 = %v", m)
	}
	if m := MultiplierAt(0.1, 10*time.Second); m != 2.71 {
		t.Errorf("at 10s = %v, want 2.71", m)
	}
	prev := 1.0
	for ms := 0; ms < 60000; ms += 100 {
		m := MultiplierAt(0.1, time.Duration(ms)*time.Millisecond)
		if m < prev {
			t.Fatalf("multiplier fell at %dms", ms)
		}
		prev = m
	}
}

func TestSimulator_RoundLifecycle(t *testing.T) {
	s := New(Settings{
		Auto:         true,
		Tick:         100 * time.Millisecond,
		Rate:         0.1,
		Intermission: time.Second,
		Cooldown:     2 * time.Second,
	}, rand.New(rand.NewSource(42)))

	var events []Event
	now := t0
	for i := 0; i < 20000 && s.Round() < 2; i++ {
		events = append(events, s.Advance(now)...)
		now = now.Add(16 * time.Millisecond)
	}

	if len(events) == 0 || events[0].Kind != EventStart {
		t.Fatalf("first event = %+v, want start", events)
	}
	prev := 1.0
	crashes := 0
	for _, ev := range events {
		switch ev.Kind {
		case EventStart:
			prev = 1
		case EventUpdate:
			if ev.Multiplier <= prev {
				t.Errorf("update %v not above %v", ev.Multiplier, prev)
			}
			prev = ev.Multiplier
		case EventCrash:
			crashes++
			if ev.Multiplier < prev {
				t.Errorf("crash %v below last update %v", ev.Multiplier, prev)
			}
		}
	}
	if crashes < 1 {
		t.Fatal("no round crashed")
	}
	if s.Round() < 2 {
		t.Error("second round never started")
	}
}

func TestSimulator_ManualStartAndCrash(t *testing.T) {
	s := New(Settings{Tick: 100 * time.Millisecond, Rate: 0.1, Cooldown: time.Second}, rand.New(rand.NewSource(3)))

	if evs := s.Advance(t0.Add(time.Hour)); len(evs) != 0 {
		t.Fatalf("manual simulator started on its own: %+v", evs)
	}
	s.Begin()
	evs := s.Advance(t0.Add(time.Hour))
	if len(evs) != 1 || evs[0].Kind != EventStart {
		t.Fatalf("Begin produced %+v", evs)
	}
	s.Begin() // ignored while running
	if s.Phase() != Running {
		t.Fatalf("phase = %v", s.Phase())
	}

	evs = s.CrashNow(t0.Add(time.Hour + 50*time.Millisecond))
	if len(evs) != 1 || evs[0].Kind != EventCrash || evs[0].Multiplier != 1 {
		t.Fatalf("CrashNow = %+v", evs)
	}
	if s.CrashNow(t0.Add(time.Hour+time.Second)) != nil {
		t.Error("second CrashNow produced events")
	}
	if s.Phase() != Crashed {
		t.Errorf("phase = %v, want crashed", s.Phase())
	}

	s.Advance(t0.Add(time.Hour + 2*time.Second))
	if s.Phase() != Waiting {
		t.Errorf("phase after cooldown = %v, want waiting", s.Phase())
	}
}

func TestSimulator_CatchUpIsBounded(t *testing.T) {
	s := New(Settings{Tick: time.Millisecond, Rate: 0.0001}, rand.New(rand.NewSource(5)))
	s.Begin()
	s.Advance(t0)
	s.crashAt = 1000 // keep the round alive

	evs := s.Advance(t0.Add(time.Hour))
	if len(evs) > maxCatchUp {
		t.Errorf("stall replayed %d events, want at most %d", len(evs), maxCatchUp)
	}
	if !s.nextTick.After(t0.Add(time.Hour)) {
		t.Error("tick schedule not resynchronised after stall")
	}
}
