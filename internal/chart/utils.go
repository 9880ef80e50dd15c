package chart

import (
	"fmt"
	"image/color"
	"math"
	"time"
)

// hsvColor converts HSV to NRGBA (hue: 0-360, saturation: 0-1, value: 0-1, alpha: 0-1)
func hsvColor(h, s, v, a float64) color.NRGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return color.NRGBA{
		R: uint8((r + m) * 255),
		G: uint8((g + m) * 255),
		B: uint8((b + m) * 255),
		A: uint8(clamp01(a) * 255),
	}
}

// withAlpha returns c with its alpha replaced (0-1).
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(clamp01(a) * 255)
	return c
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

// clamp bounds v to [lo, hi]; NaN maps to lo.
func clamp(v, lo, hi float64) float64 {
	if v < lo || math.IsNaN(v) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FormatElapsed formats a duration as MM:SS
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
