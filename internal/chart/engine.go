// Package chart draws the live multiplier curve of a crash round and the
// burst animation that ends it.
//
// An Engine is driven from a single goroutine: the controller pushes Start,
// UpdateMultiplier, Crash and Stop, and a FrameScheduler calls back once per
// display frame to redraw the scene on a Surface.
package chart

import (
	"math"
	"math/rand"
	"time"
)

// Options configures an Engine. Zero fields take the DefaultOptions value,
// except Label which is optional.
type Options struct {
	Padding       Padding
	Window        time.Duration // visible span of game time
	Capacity      int
	SeedOrigin    bool // start each round with a {0, 1.0} sample
	GridLines     int
	Orientation   Orientation
	Jitter        Jitter
	CrashDuration time.Duration
	PulseStep     float64 // radians per frame

	Clock     Clock
	Scheduler FrameScheduler
	Label     LabelSink
	Rand      *rand.Rand // per-round noise seed
}

func DefaultOptions() Options {
	return Options{
		Padding:       Padding{Top: 20, Right: 20, Bottom: 30, Left: 50},
		Window:        15 * time.Second,
		Capacity:      1000,
		SeedOrigin:    true,
		GridLines:     5,
		Orientation:   NewestRight,
		Jitter:        Jitter{Enabled: true, Base: 1.5, Growth: 0.8, Max: 6},
		CrashDuration: time.Second,
		PulseStep:     0.05,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Padding == (Padding{}) {
		o.Padding = d.Padding
	}
	if o.Window <= 0 {
		o.Window = d.Window
	}
	if o.Capacity <= 0 {
		o.Capacity = d.Capacity
	}
	if o.GridLines <= 0 {
		o.GridLines = d.GridLines
	}
	if o.CrashDuration <= 0 {
		o.CrashDuration = d.CrashDuration
	}
	if o.PulseStep == 0 {
		o.PulseStep = d.PulseStep
	}
	if o.Clock == nil {
		o.Clock = systemClock{}
	}
	if o.Scheduler == nil {
		o.Scheduler = &FrameQueue{}
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}

// state is everything a round owns. Start replaces it wholesale.
type state struct {
	started  bool
	current  float64
	start    time.Time
	crashed  bool
	frozen   time.Duration // elapsed time at the crash
	phase    Phase
	crash    *CrashState
	anchored bool // crash anchor resolved against a real surface size
	pulse    float64
	seed     float64

	running bool
	token   FrameToken
	pending bool
}

// Engine owns the sample buffer and chart state of one chart instance.
type Engine struct {
	opts     Options
	buf      *Buffer
	renderer Renderer
	st       state

	// last surface size seen by a frame; used to anchor a crash between frames
	width, height float64
}

// NewEngine builds an idle engine. Nothing is drawn until Start.
func NewEngine(opts Options) *Engine {
	opts = opts.withDefaults()
	return &Engine{
		opts:     opts,
		buf:      NewBuffer(opts.Capacity, opts.SeedOrigin),
		renderer: Renderer{GridLines: opts.GridLines, Jitter: opts.Jitter},
		st:       state{current: Floor},
	}
}

// Start begins a new round, discarding everything from the previous one, and
// schedules the first frame.
func (e *Engine) Start() {
	e.cancelFrame()
	e.buf.Reset()
	e.st = state{
		started: true,
		current: Floor,
		start:   e.opts.Clock.Now(),
		seed:    e.opts.Rand.Float64() * 2 * math.Pi,
		running: true,
	}
	e.label()
	e.schedule()
}

// UpdateMultiplier records the live value at the current elapsed time. It is
// ignored before Start, after Crash and for NaN or infinite values.
func (e *Engine) UpdateMultiplier(v float64) {
	if !e.st.started || e.st.crashed || math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	if v < Floor {
		v = Floor
	}
	e.st.current = v
	e.buf.Append(e.Elapsed(), v)
	e.label()
}

// Crash ends the round at v and starts the burst. Only the first call of a
// round has any effect.
func (e *Engine) Crash(v float64) {
	if !e.st.started || e.st.crashed {
		return
	}
	now := e.opts.Clock.Now()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = e.st.current
	}
	if v < Floor {
		v = Floor
	}
	elapsed := now.Sub(e.st.start)
	if last, ok := e.buf.Last(); !ok || last.Multiplier != v {
		e.buf.Append(elapsed, v)
	}

	e.st.current = v
	e.st.crashed = true
	e.st.frozen = elapsed
	e.st.phase = PhaseExploding
	e.st.crash = &CrashState{Start: now, Duration: e.opts.CrashDuration}
	if e.width > 0 && e.height > 0 {
		e.anchorCrash()
	}
	e.label()
}

// Stop cancels the pending frame. It is safe at any time, including before
// Start, and calling it twice is harmless.
func (e *Engine) Stop() {
	e.cancelFrame()
	e.st.running = false
}

// Elapsed is the game time of the round; it stops advancing at the crash.
func (e *Engine) Elapsed() time.Duration {
	if !e.st.started {
		return 0
	}
	if e.st.crashed {
		return e.st.frozen
	}
	return e.opts.Clock.Now().Sub(e.st.start)
}

func (e *Engine) Multiplier() float64 { return e.st.current }
func (e *Engine) Crashed() bool       { return e.st.crashed }
func (e *Engine) Running() bool       { return e.st.running }
func (e *Engine) Pulse() float64      { return e.st.pulse }
func (e *Engine) Samples() []Sample   { return e.buf.Snapshot() }

// Phase reports the crash animation state, expiring a finished burst.
func (e *Engine) Phase() Phase {
	e.advance(e.opts.Clock.Now())
	return e.st.phase
}

// CrashState returns a copy of the running burst, if any.
func (e *Engine) CrashState() (CrashState, bool) {
	e.advance(e.opts.Clock.Now())
	if e.st.crash == nil {
		return CrashState{}, false
	}
	return *e.st.crash, true
}

func (e *Engine) advance(now time.Time) {
	if e.st.crash != nil && e.st.crash.Progress(now) >= 1 {
		e.st.crash = nil
		e.st.phase = PhaseDone
	}
}

func (e *Engine) schedule() {
	e.st.token = e.opts.Scheduler.RequestFrame(e.frame)
	e.st.pending = true
}

func (e *Engine) cancelFrame() {
	if e.st.pending {
		e.opts.Scheduler.CancelFrame(e.st.token)
		e.st.pending = false
	}
}

// frame draws one frame and asks for the next.
func (e *Engine) frame(s Surface) {
	e.st.pending = false
	if !e.st.running {
		return
	}
	e.Draw(s)
	e.schedule()
}

// Draw renders the current state onto s without touching the schedule.
func (e *Engine) Draw(s Surface) {
	now := e.opts.Clock.Now()
	e.width, e.height = s.Size()
	if e.st.crash != nil && !e.st.anchored {
		e.anchorCrash()
	}

	m := e.mapper()
	f := Frame{
		Samples: e.buf.Visible(m.Elapsed, e.opts.Window),
		Mapper:  m,
		Seed:    e.st.seed,
		Pulse:   e.st.pulse,
		Marker:  !e.st.crashed,
		Elapsed: m.Elapsed,
	}

	e.advance(now)
	if cs := e.st.crash; cs != nil {
		b := cs.frame(cs.Progress(now), m.Plot.Height(), m.Plot.Top)
		f.Burst = &b
	}

	e.renderer.Draw(s, f)
	if e.buf.Len() > 0 {
		e.st.pulse += e.opts.PulseStep
	}
}

func (e *Engine) mapper() Mapper {
	return Mapper{
		Plot:        e.opts.Padding.Plot(e.width, e.height),
		Window:      e.opts.Window,
		Elapsed:     e.Elapsed(),
		Ceiling:     Ceiling(e.st.current),
		Orientation: e.opts.Orientation,
	}
}

// anchorCrash pins the burst to the rendered curve endpoint.
func (e *Engine) anchorCrash() {
	m := e.mapper()
	last, ok := e.buf.Last()
	if !ok {
		last = Sample{Time: m.Elapsed, Multiplier: e.st.current}
	}
	p := e.renderer.Points([]Sample{last}, m, e.st.seed)[0]
	e.st.crash.AnchorX = p.X
	e.st.crash.AnchorY = p.Y
	e.st.anchored = true
}

func (e *Engine) label() {
	if e.opts.Label != nil {
		e.opts.Label.SetLabel(FormatMultiplier(e.st.current), e.st.crashed)
	}
}
