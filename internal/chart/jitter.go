package chart

import (
	"math"
	"time"
)

// Jitter adds a smooth wobble to rendered y-coordinates. It never touches the
// recorded samples.
type Jitter struct {
	Enabled bool
	Base    float64 // pixels at multiplier 1.0
	Growth  float64 // extra pixels per 1.0 of multiplier
	Max     float64 // amplitude cap in pixels
}

var jitterFreqs = [3]float64{2.1, 3.7, 5.3}

// phaseScale spreads the per-round seed across the three waves.
var phaseScale = [3]float64{1, 1.3, 0.7}

// Amplitude is the wobble size for a sample's multiplier.
func (j Jitter) Amplitude(m float64) float64 {
	if !(m > Floor) {
		m = Floor
	}
	a := j.Base + j.Growth*(m-Floor)
	if j.Max > 0 && a > j.Max {
		a = j.Max
	}
	return a
}

// Offset returns the vertical displacement for a sample. The sum of the three
// sines is averaged, so |Offset| <= Amplitude.
func (j Jitter) Offset(t time.Duration, m, seed float64) float64 {
	if !j.Enabled {
		return 0
	}
	sec := t.Seconds()
	var sum float64
	for i, f := range jitterFreqs {
		sum += math.Sin(f*sec + seed*phaseScale[i])
	}
	off := j.Amplitude(m) * sum / float64(len(jitterFreqs))
	if math.IsNaN(off) || math.IsInf(off, 0) {
		return 0
	}
	return off
}
