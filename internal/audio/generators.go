package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// toneSweep is a sine generator that glides linearly from one frequency to
// another over its duration, with a fade-out envelope.
type toneSweep struct {
	sr       beep.SampleRate
	from, to float64
	dur      int // total samples
	pos      int
	phase    float64
	volume   float64
	loop     bool
}

func newToneSweep(sr beep.SampleRate, from, to float64, d time.Duration, volume float64, loop bool) *toneSweep {
	return &toneSweep{sr: sr, from: from, to: to, dur: sr.N(d), volume: volume, loop: loop}
}

func (g *toneSweep) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if g.pos >= g.dur {
			if !g.loop {
				return i, i > 0
			}
			g.pos = 0
			g.phase = 0
		}
		progress := float64(g.pos) / float64(g.dur)
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		envelope := 1 - progress
		v := math.Sin(g.phase) * g.volume * envelope
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *toneSweep) Err() error { return nil }

// noiseBurst is white noise with an exponential decay envelope, used for
// explosions and impacts.
type noiseBurst struct {
	sr     beep.SampleRate
	dur    int
	pos    int
	volume float64
	loop   bool
}

func newNoiseBurst(sr beep.SampleRate, d time.Duration, volume float64, loop bool) *noiseBurst {
	return &noiseBurst{sr: sr, dur: sr.N(d), volume: volume, loop: loop}
}

func (g *noiseBurst) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if g.pos >= g.dur {
			if !g.loop {
				return i, i > 0
			}
			g.pos = 0
		}
		progress := float64(g.pos) / float64(g.dur)
		envelope := math.Exp(-4 * progress)
		v := (rand.Float64()*2 - 1) * g.volume * envelope
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *noiseBurst) Err() error { return nil }

// chime plays two sine notes back to back, used for pickups.
type chime struct {
	sr       beep.SampleRate
	lo, hi   float64
	dur      int
	pos      int
	phase    float64
	volume   float64
	loop     bool
}

func newChime(sr beep.SampleRate, lo, hi float64, d time.Duration, volume float64, loop bool) *chime {
	return &chime{sr: sr, lo: lo, hi: hi, dur: sr.N(d), volume: volume, loop: loop}
}

func (g *chime) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if g.pos >= g.dur {
			if !g.loop {
				return i, i > 0
			}
			g.pos = 0
			g.phase = 0
		}
		freq := g.lo
		if g.pos > g.dur/2 {
			freq = g.hi
		}
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		progress := float64(g.pos) / float64(g.dur)
		envelope := 1 - progress*progress
		v := math.Sin(g.phase) * g.volume * envelope
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *chime) Err() error { return nil }
