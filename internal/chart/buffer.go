package chart

import "time"

// Sample is one recorded multiplier observation.
type Sample struct {
	Time       time.Duration // since round start
	Multiplier float64
}

// Buffer records the last N samples into a ring so the renderer can draw the
// recent curve without shifting a slice on every insert. Oldest entries are
// evicted first once the ring is full.
type Buffer struct {
	ring       []Sample
	head       int // index of the oldest sample
	size       int
	seedOrigin bool
}

func NewBuffer(capacity int, seedOrigin bool) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	b := &Buffer{
		ring:       make([]Sample, capacity),
		seedOrigin: seedOrigin,
	}
	b.Reset()
	return b
}

// Reset drops every sample. With origin seeding enabled the curve restarts
// from {0, 1.0}.
func (b *Buffer) Reset() {
	b.head = 0
	b.size = 0
	if b.seedOrigin {
		b.Append(0, Floor)
	}
}

// Append stores a sample at the tail. Times earlier than the current tail are
// raised to the tail's time so the ring stays ordered.
func (b *Buffer) Append(t time.Duration, m float64) {
	if t < 0 {
		t = 0
	}
	if last, ok := b.Last(); ok && t < last.Time {
		t = last.Time
	}
	s := Sample{Time: t, Multiplier: m}
	if b.size < len(b.ring) {
		b.ring[(b.head+b.size)%len(b.ring)] = s
		b.size++
		return
	}
	b.ring[b.head] = s
	b.head = (b.head + 1) % len(b.ring)
}

func (b *Buffer) Len() int { return b.size }

func (b *Buffer) Cap() int { return len(b.ring) }

// Last returns the newest sample.
func (b *Buffer) Last() (Sample, bool) {
	if b.size == 0 {
		return Sample{}, false
	}
	return b.at(b.size - 1), true
}

func (b *Buffer) at(i int) Sample {
	return b.ring[(b.head+i)%len(b.ring)]
}

// Snapshot returns every stored sample in chronological order (most recent last).
func (b *Buffer) Snapshot() []Sample {
	out := make([]Sample, 0, b.size)
	for i := 0; i < b.size; i++ {
		out = append(out, b.at(i))
	}
	return out
}

// Visible returns, oldest first, the samples younger than window at the given
// elapsed time. Nothing is evicted.
func (b *Buffer) Visible(elapsed, window time.Duration) []Sample {
	// Walk backwards from the tail; samples are ordered so the first one that
	// is too old ends the scan.
	first := b.size
	for i := b.size - 1; i >= 0; i-- {
		if elapsed-b.at(i).Time >= window {
			break
		}
		first = i
	}
	out := make([]Sample, 0, b.size-first)
	for i := first; i < b.size; i++ {
		out = append(out, b.at(i))
	}
	return out
}
