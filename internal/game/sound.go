package game

import (
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/crash-chart/internal/config"
)

const soundSampleRate = beep.SampleRate(44100)

// burstPlayer plays the crash sound. A decoded file is used when one was
// given; otherwise a noise burst is synthesised for every crash.
type burstPlayer struct {
	ready  bool // speaker initialised
	volume float64
	sound  *beep.Buffer
	rng    *rand.Rand
}

// newBurstPlayer sets up the speaker. The returned player is always usable:
// on error it stays silent.
func newBurstPlayer(cfg config.Config, rng *rand.Rand) (*burstPlayer, error) {
	p := &burstPlayer{volume: cfg.SoundVolume, rng: rng}
	if !cfg.Sound {
		return p, nil
	}

	path := cfg.SoundFile
	if cfg.PickSound {
		picked, err := pickSoundFile()
		if err != nil {
			return p, err
		}
		if picked != "" {
			path = picked
		}
	}
	if path != "" {
		buf, err := loadSound(path)
		if err != nil {
			return p, err
		}
		p.sound = buf
		log.Printf("[sound] loaded %s (%v)", filepath.Base(path), soundSampleRate.D(buf.Len()).Round(time.Millisecond))
	}

	if err := speaker.Init(soundSampleRate, soundSampleRate.N(time.Second/20)); err != nil {
		return p, fmt.Errorf("init speaker: %w", err)
	}
	p.ready = true
	return p, nil
}

// Play starts the crash sound, cutting off any previous one.
func (p *burstPlayer) Play() {
	if p == nil || !p.ready {
		return
	}
	var s beep.Streamer
	if p.sound != nil {
		s = p.sound.Streamer(0, p.sound.Len())
	} else {
		s = newNoiseBurst(soundSampleRate, config.CrashDuration, p.rng)
	}
	speaker.Clear()
	speaker.Play(&effects.Volume{Streamer: s, Base: 2, Volume: p.volume})
}

func (p *burstPlayer) Close() {
	if p != nil && p.ready {
		speaker.Clear()
	}
}

func pickSoundFile() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Choose Crash Sound"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", fmt.Errorf("pick sound: %w", err)
	}
	return filename, nil
}

// loadSound decodes a wav, mp3 or flac file fully into memory at the
// speaker's sample rate.
func loadSound(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, errors.New("unsupported file type: " + ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != soundSampleRate {
		src = beep.Resample(4, format.SampleRate, soundSampleRate, streamer)
	}
	format.SampleRate = soundSampleRate

	buf := beep.NewBuffer(format)
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return buf, nil
}

// noiseBurst is an explosion-like sound: white noise plus a low thump under
// an exponential decay envelope.
type noiseBurst struct {
	rng   *rand.Rand
	rate  float64
	pos   int
	total int
}

const (
	burstDecay = 6.0  // envelope e-folds per second
	burstThump = 55.0 // Hz
)

func newNoiseBurst(sr beep.SampleRate, d time.Duration, rng *rand.Rand) *noiseBurst {
	return &noiseBurst{rng: rng, rate: float64(sr), total: sr.N(d)}
}

func (b *noiseBurst) Stream(samples [][2]float64) (n int, ok bool) {
	if b.pos >= b.total {
		return 0, false
	}
	for i := range samples {
		if b.pos >= b.total {
			break
		}
		t := float64(b.pos) / b.rate
		env := math.Exp(-burstDecay * t)
		v := env * (0.6*(b.rng.Float64()*2-1) + 0.4*math.Sin(2*math.Pi*burstThump*t))
		samples[i] = [2]float64{v, v}
		b.pos++
		n++
	}
	return n, true
}

func (b *noiseBurst) Err() error { return nil }
