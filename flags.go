package main

import (
	"flag"

	"github.com/iburimskiy/crash-chart/internal/config"
)

// Command-line flags that control the window, the chart and the demo rounds.
var (
	// widthFlag and heightFlag set the logical screen size.
	widthFlag  = flag.Int("width", config.WindowWidth, "window width in pixels")
	heightFlag = flag.Int("height", config.WindowHeight, "window height in pixels")

	tpsFlag = flag.Int("tps", config.TPS, "updates per second")

	// windowFlag is how much game time the curve shows.
	windowFlag = flag.Duration("window", config.VisibleWindow, "visible span of the curve")

	gridLinesFlag = flag.Int("grid-lines", config.GridLines, "number of horizontal grid intervals")

	// newestLeftFlag flips the time axis so the live edge is on the left.
	newestLeftFlag = flag.Bool("newest-left", false, "draw the newest sample on the left edge")

	jitterFlag = flag.Bool("jitter", true, "add a smooth wobble to the drawn curve")

	// seedOriginFlag starts every curve from 1.00x at time zero.
	seedOriginFlag = flag.Bool("seed-origin", true, "start each round's curve at 1.00x")

	// autoFlag runs rounds back to back; otherwise Space starts one.
	autoFlag = flag.Bool("auto", true, "start rounds automatically")

	seedFlag = flag.Int64("seed", 0, "random seed for crash points and curve noise (0: time based)")

	soundFlag     = flag.Bool("sound", true, "play a sound when the round crashes")
	soundFileFlag = flag.String("sound-file", "", "wav, mp3 or flac file to play on crash")

	// pickSoundFlag opens a file dialog for the crash sound at startup.
	pickSoundFlag = flag.Bool("pick-sound", false, "choose the crash sound with a file dialog")

	volumeFlag = flag.Float64("volume", config.SoundVolume, "crash sound volume (log2 gain, 0 = unchanged)")
)

// loadConfig copies the parsed flags into a Config.
func loadConfig() config.Config {
	c := config.Default()
	c.Width = *widthFlag
	c.Height = *heightFlag
	c.TPS = *tpsFlag
	c.Window = *windowFlag
	c.GridLines = *gridLinesFlag
	c.NewestLeft = *newestLeftFlag
	c.Jitter = *jitterFlag
	c.SeedOrigin = *seedOriginFlag
	c.AutoPlay = *autoFlag
	c.Seed = *seedFlag
	c.Sound = *soundFlag
	c.SoundFile = *soundFileFlag
	c.PickSound = *pickSoundFlag
	c.SoundVolume = *volumeFlag
	return c
}
