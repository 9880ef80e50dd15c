// Package game hosts the crash chart in an ebiten window: it feeds demo round
// events into the chart engine, fires the engine's frame callbacks from Draw
// and plays the crash sound.
package game

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/crash-chart/internal/chart"
	"github.com/iburimskiy/crash-chart/internal/config"
	"github.com/iburimskiy/crash-chart/internal/round"
)

// Game implements ebiten.Game.
type Game struct {
	cfg config.Config

	engine  *chart.Engine
	frames  *chart.FrameQueue
	sim     *round.Simulator
	label   *multiplierLabel
	sound   *burstPlayer
	surface screenSurface
	now     func() time.Time

	lastErr error
}

func New(cfg config.Config) (*Game, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	f, err := loadFonts()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:    cfg,
		frames: &chart.FrameQueue{},
		label:  &multiplierLabel{face: f.label},
		now:    time.Now,
	}
	g.surface.face = f.grid

	opts := cfg.Chart()
	opts.Scheduler = g.frames
	opts.Label = g.label
	opts.Rand = rng
	g.engine = chart.NewEngine(opts)

	g.sim = round.New(round.Settings{
		Auto:         cfg.AutoPlay,
		Tick:         config.TickInterval,
		Rate:         config.GrowthRate,
		Intermission: config.Intermission,
		Cooldown:     config.CrashCooldown,
	}, rng)

	g.sound, err = newBurstPlayer(cfg, rng)
	if err != nil {
		// the chart works without sound
		log.Printf("[sound] disabled: %v", err)
		g.lastErr = err
	}
	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	now := g.now()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sim.Begin()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.apply(g.sim.CrashNow(now))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.engine.Stop()
	}
	g.apply(g.sim.Advance(now))
	return nil
}

// apply forwards round events to the engine in order.
func (g *Game) apply(events []round.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case round.EventStart:
			g.engine.Start()
			log.Printf("[round] #%d started", ev.Round)
		case round.EventUpdate:
			g.engine.UpdateMultiplier(ev.Multiplier)
		case round.EventCrash:
			g.engine.Crash(ev.Multiplier)
			g.sound.Play()
			log.Printf("[round] #%d crashed at %s", ev.Round, chart.FormatMultiplier(ev.Multiplier))
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.dst = screen
	if !g.frames.Fire(&g.surface) {
		screen.Fill(background)
	}

	w, h := g.cfg.Width, g.cfg.Height
	g.label.draw(screen, float64(w)/2, float64(h)*config.LabelVerticalAt)

	ebitenutil.DebugPrintAt(screen, g.status(), 12, config.StatusLineY)
}

func (g *Game) status() string {
	var status string
	switch g.sim.Phase() {
	case round.Waiting:
		if g.cfg.AutoPlay {
			status = "Next round starting soon"
		} else {
			status = "Space: start a round"
		}
	case round.Running:
		status = fmt.Sprintf("Round #%d live - C: crash now, S: stop drawing", g.sim.Round())
	case round.Crashed:
		status = fmt.Sprintf("Round #%d crashed at %s", g.sim.Round(), chart.FormatMultiplier(g.sim.Multiplier()))
	}
	status += " | Esc/Q: quit"
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	return status
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Close stops rendering and releases the speaker.
func (g *Game) Close() {
	g.engine.Stop()
	g.sound.Close()
}
