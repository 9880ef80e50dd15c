// Package round drives demo crash rounds: it decides when a round starts, how
// the multiplier grows and where it crashes, and reports each change as an
// Event for the chart to consume.
package round

import (
	"math"
	"math/rand"
	"time"
)

// Crash point distribution (heavily favours 1-3x).
const (
	PeakVeryLow = 0.50 // 50% chance: 1.0x - 1.5x
	PeakLow     = 0.85 // 35% chance: 1.5x - 3.0x (cumulative)
	PeakMedium  = 0.95 // 10% chance: 3.0x - 10.0x (cumulative)
	PeakHigh    = 0.99 // 4% chance: 10.0x - 50.0x (cumulative)
	PeakExtreme = 1.00 // 1% chance: 50.0x - 200.0x (cumulative)

	PeakMin        = 1.0
	PeakVeryLowMax = 1.5
	PeakLowMax     = 3.0
	PeakMediumMax  = 10.0
	PeakHighMax    = 50.0
	PeakExtremeMax = 200.0

	// maxCatchUp bounds the ticks replayed by one Advance after a stall.
	maxCatchUp = 100
)

// CrashPoint maps a uniform value in [0, 1) onto the crash multiplier
// distribution.
func CrashPoint(r float64) float64 {
	r = math.Min(math.Max(r, 0), math.Nextafter(1, 0))

	var peak float64
	switch {
	case r < PeakVeryLow:
		normalized := r / PeakVeryLow
		peak = PeakMin + normalized*(PeakVeryLowMax-PeakMin)
	case r < PeakLow:
		normalized := (r - PeakVeryLow) / (PeakLow - PeakVeryLow)
		peak = PeakVeryLowMax + normalized*(PeakLowMax-PeakVeryLowMax)
	case r < PeakMedium:
		normalized := (r - PeakLow) / (PeakMedium - PeakLow)
		peak = PeakLowMax + normalized*(PeakMediumMax-PeakLowMax)
	case r < PeakHigh:
		normalized := (r - PeakMedium) / (PeakHigh - PeakMedium)
		peak = PeakMediumMax + normalized*(PeakHighMax-PeakMediumMax)
	default:
		normalized := (r - PeakHigh) / (PeakExtreme - PeakHigh)
		peak = PeakHighMax + normalized*(PeakExtremeMax-PeakHighMax)
	}

	// two decimals, like the label
	peak = math.Floor(peak*100) / 100
	if peak < PeakMin {
		peak = PeakMin
	}
	return peak
}

// MultiplierAt is the live multiplier after elapsed round time, floored to
// two decimals.
func MultiplierAt(rate float64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 1
	}
	m := math.Pow(math.E, rate*elapsed.Seconds())
	return math.Floor(m*100) / 100
}

// Phase is the simulator state.
type Phase int

const (
	Waiting Phase = iota // between rounds
	Running
	Crashed // cool-down while the burst plays
)

func (p Phase) String() string {
	switch p {
	case Waiting:
		return "waiting"
	case Running:
		return "running"
	case Crashed:
		return "crashed"
	}
	return "unknown"
}

type EventKind int

const (
	EventStart EventKind = iota
	EventUpdate
	EventCrash
)

// Event is one controller call for the chart, in the order it must be applied.
type Event struct {
	Kind       EventKind
	Multiplier float64
	Round      int
}

// Settings tunes the simulator.
type Settings struct {
	Auto         bool // start rounds without Begin
	Tick         time.Duration
	Rate         float64
	Intermission time.Duration
	Cooldown     time.Duration
}

// Simulator produces rounds on demand. It holds no goroutines: the host calls
// Advance from its update loop.
type Simulator struct {
	cfg Settings
	rng *rand.Rand

	phase     Phase
	since     time.Time // when the current phase began
	nextTick  time.Time
	crashAt   float64
	current   float64
	round     int
	requested bool
}

func New(cfg Settings, rng *rand.Rand) *Simulator {
	if cfg.Tick <= 0 {
		cfg.Tick = 100 * time.Millisecond
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 0.1
	}
	return &Simulator{cfg: cfg, rng: rng, current: 1}
}

func (s *Simulator) Phase() Phase        { return s.phase }
func (s *Simulator) Round() int          { return s.round }
func (s *Simulator) Multiplier() float64 { return s.current }
func (s *Simulator) CrashAt() float64    { return s.crashAt }

// Begin asks for a round to start on the next Advance. It is ignored while a
// round is live.
func (s *Simulator) Begin() {
	if s.phase == Waiting {
		s.requested = true
	}
}

// Advance moves the simulation to now and returns the resulting events.
func (s *Simulator) Advance(now time.Time) []Event {
	if s.since.IsZero() {
		s.since = now
	}

	var events []Event
	switch s.phase {
	case Waiting:
		if s.requested || (s.cfg.Auto && now.Sub(s.since) >= s.cfg.Intermission) {
			events = append(events, s.start(now))
		}
	case Running:
		events = s.tick(now, events)
	case Crashed:
		if now.Sub(s.since) >= s.cfg.Cooldown {
			s.phase = Waiting
			s.since = now
		}
	}
	return events
}

// CrashNow ends the live round at the current multiplier.
func (s *Simulator) CrashNow(now time.Time) []Event {
	if s.phase != Running {
		return nil
	}
	s.crashAt = s.current
	return []Event{s.crash(now)}
}

func (s *Simulator) start(now time.Time) Event {
	s.requested = false
	s.round++
	s.phase = Running
	s.since = now
	s.nextTick = now.Add(s.cfg.Tick)
	s.current = 1
	s.crashAt = CrashPoint(s.rng.Float64())
	return Event{Kind: EventStart, Multiplier: 1, Round: s.round}
}

func (s *Simulator) tick(now time.Time, events []Event) []Event {
	for n := 0; !s.nextTick.After(now); n++ {
		if n == maxCatchUp {
			s.nextTick = now.Add(s.cfg.Tick)
			break
		}
		m := MultiplierAt(s.cfg.Rate, s.nextTick.Sub(s.since))
		if m >= s.crashAt {
			return append(events, s.crash(s.nextTick))
		}
		if m != s.current {
			s.current = m
			events = append(events, Event{Kind: EventUpdate, Multiplier: m, Round: s.round})
		}
		s.nextTick = s.nextTick.Add(s.cfg.Tick)
	}
	return events
}

func (s *Simulator) crash(at time.Time) Event {
	s.phase = Crashed
	s.since = at
	s.current = s.crashAt
	return Event{Kind: EventCrash, Multiplier: s.crashAt, Round: s.round}
}
