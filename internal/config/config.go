package config

import (
	"time"

	"github.com/iburimskiy/crash-chart/internal/chart"
)

const (
	WindowWidth  = 1024
	WindowHeight = 512
	TPS          = 60

	// Chart layout
	PaddingTop    = 20
	PaddingRight  = 20
	PaddingBottom = 30
	PaddingLeft   = 50
	GridLines     = 5

	// Curve data
	BufferCapacity = 1000
	VisibleWindow  = 15 * time.Second

	// Animation parameters
	PulseStep       = 0.05
	CrashDuration   = time.Second
	JitterBase      = 1.5
	JitterGrowth    = 0.8
	JitterMax       = 6.0
	LabelFontSize   = 48
	GridLabelSize   = 10
	StatusLineY     = 12
	LabelVerticalAt = 0.35 // share of window height

	// Demo rounds
	TickInterval  = 100 * time.Millisecond
	GrowthRate    = 0.1 // multiplier = e^(rate*seconds)
	Intermission  = 3 * time.Second
	CrashCooldown = 2 * time.Second

	// Sound
	SoundVolume = -0.5 // beep effects.Volume exponent, base 2
)

// Config holds the runtime settings chosen on the command line.
type Config struct {
	Width, Height int
	TPS           int

	Window      time.Duration
	GridLines   int
	NewestLeft  bool
	Jitter      bool
	SeedOrigin  bool
	AutoPlay    bool
	Seed        int64 // 0 picks a time-based seed
	Sound       bool
	SoundFile   string
	PickSound   bool
	SoundVolume float64
}

func Default() Config {
	return Config{
		Width:       WindowWidth,
		Height:      WindowHeight,
		TPS:         TPS,
		Window:      VisibleWindow,
		GridLines:   GridLines,
		Jitter:      true,
		SeedOrigin:  true,
		AutoPlay:    true,
		Sound:       true,
		SoundVolume: SoundVolume,
	}
}

// Chart converts the settings into engine options. Clock, scheduler and
// label are left for the host to fill in.
func (c Config) Chart() chart.Options {
	o := chart.DefaultOptions()
	o.Padding = chart.Padding{Top: PaddingTop, Right: PaddingRight, Bottom: PaddingBottom, Left: PaddingLeft}
	o.Window = c.Window
	o.Capacity = BufferCapacity
	o.SeedOrigin = c.SeedOrigin
	o.GridLines = c.GridLines
	o.Orientation = chart.NewestRight
	if c.NewestLeft {
		o.Orientation = chart.NewestLeft
	}
	o.Jitter = chart.Jitter{Enabled: c.Jitter, Base: JitterBase, Growth: JitterGrowth, Max: JitterMax}
	o.CrashDuration = CrashDuration
	o.PulseStep = PulseStep
	return o
}
