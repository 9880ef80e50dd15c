package chart

import (
	"image/color"
	"math"
	"time"
)

// Phase is the crash animation state.
type Phase int

const (
	PhaseIdle      Phase = iota // round live, no crash yet
	PhaseExploding              // burst running
	PhaseDone                   // burst finished, curve frozen
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseExploding:
		return "exploding"
	case PhaseDone:
		return "done"
	}
	return "unknown"
}

var crashColor = color.NRGBA{R: 202, G: 57, B: 89, A: 255}

const (
	crashRadius    = 8.0
	crashRingCount = 3
	crashRingStep  = 10.0
	crashFlight    = 0.5 // share of plot height travelled upwards
)

// CrashState is the burst started by a crash. It is never restarted.
type CrashState struct {
	Start    time.Time
	Duration time.Duration
	AnchorX  float64
	AnchorY  float64
}

// Progress is the linear completion in [0, 1] at now. It never decreases as
// now advances.
func (c *CrashState) Progress(now time.Time) float64 {
	if c.Duration <= 0 {
		return 1
	}
	return clamp01(float64(now.Sub(c.Start)) / float64(c.Duration))
}

// easeOutCubic decelerates towards the end of the burst.
func easeOutCubic(p float64) float64 {
	return 1 - math.Pow(1-p, 3)
}

// burst is the geometry of one burst frame.
type burst struct {
	X, Y   float64
	Radius float64
	Alpha  float64
	Rings  [crashRingCount]struct{ Radius, Alpha float64 }
}

func (c *CrashState) frame(progress, plotHeight, top float64) burst {
	eased := easeOutCubic(progress)
	b := burst{
		X:      c.AnchorX,
		Y:      math.Max(top, c.AnchorY-crashFlight*plotHeight*eased),
		Radius: crashRadius * (1 + eased*0.5),
		Alpha:  1 - progress*0.5,
	}
	for i := range b.Rings {
		n := float64(i + 1)
		b.Rings[i].Radius = crashRadius + n*crashRingStep*eased
		b.Rings[i].Alpha = clamp01((1 - progress) * (1 - n*0.2))
	}
	return b
}

func drawBurst(s Surface, b burst) {
	var disc Path
	disc.Circle(b.X, b.Y, b.Radius)
	s.Fill(&disc, Solid(withAlpha(crashColor, b.Alpha)))

	for _, r := range b.Rings {
		if r.Alpha <= 0 {
			continue
		}
		var ring Path
		ring.Circle(b.X, b.Y, r.Radius)
		s.Stroke(&ring, Solid(withAlpha(crashColor, r.Alpha)), StrokeStyle{Width: 2})
	}
}
