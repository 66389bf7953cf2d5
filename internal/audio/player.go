// Package audio implements the simulation's audio port with synthesized
// tones played through gopxl/beep. No sound assets are shipped; every
// effect is generated.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tmarek/voidrain/internal/sink"
)

const sampleRate = beep.SampleRate(44100)

const defaultVolume = 0.5

// Player is a beep-backed sink.Audio. When the speaker can't be initialized
// (no audio device, headless host) it runs in silent mode and drops all
// playback requests, which keeps the simulation's fire-and-forget contract.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	silent      bool
	logger      *log.Logger
}

// NewPlayer creates an uninitialized player. Call Start before use; logger
// may be nil.
func NewPlayer(logger *log.Logger) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Start initializes the speaker. Failure is not an error: the player falls
// back to silent mode.
func (p *Player) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || p.silent {
		return
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		p.silent = true
		if p.logger != nil {
			p.logger.Warn("audio unavailable, running silent", "err", err)
		}
		return
	}
	speaker.Play(p.mixer)
	p.initialized = true
}

// Close stops all playback.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}

// PlaySound implements sink.Audio.
func (p *Player) PlaySound(s sink.Sound, opts sink.PlayOpts) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	volume := opts.Volume
	if volume <= 0 {
		volume = defaultVolume
	}

	var streamer beep.Streamer
	switch s {
	case sink.SoundShoot:
		streamer = newToneSweep(sampleRate, 880, 440, 60*time.Millisecond, volume*0.6, opts.Loop)
	case sink.SoundExplosion:
		streamer = newNoiseBurst(sampleRate, 260*time.Millisecond, volume, opts.Loop)
	case sink.SoundImpact:
		streamer = newNoiseBurst(sampleRate, 60*time.Millisecond, volume*0.5, opts.Loop)
	case sink.SoundPickup:
		streamer = newChime(sampleRate, 523.25, 783.99, 140*time.Millisecond, volume*0.7, opts.Loop)
	case sink.SoundHurt:
		streamer = newToneSweep(sampleRate, 150, 90, 170*time.Millisecond, volume*0.8, opts.Loop)
	case sink.SoundGameOver:
		streamer = newToneSweep(sampleRate, 440, 80, 700*time.Millisecond, volume, opts.Loop)
	default:
		return
	}

	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

var _ sink.Audio = (*Player)(nil)
