// Package sink defines the outbound collaborator ports of the simulation
// core: rendering, audio, particle effects, and UI notifications. The core
// only ever writes into these sinks and never reads state back, so
// implementations need no synchronization with the simulation.
package sink

//go:generate go tool mockgen -source=sink.go -destination=mock/sink.go -package=mocksink

import (
	"github.com/charmbracelet/log"

	"github.com/tmarek/voidrain/internal/physics"
)

// Handle identifies an entity for the rendering collaborator. Handles are
// allocated by the entity store and never reused within a session.
type Handle uint64

// Shape selects how the renderer draws an entity.
type Shape int

const (
	ShapeShip Shape = iota // player triangle
	ShapeDot               // projectile
	ShapeBlob              // enemy polygon
	ShapeRing              // power-up
)

// Visual describes how an entity should be rendered. It is fixed for the
// entity's lifetime; only the transform changes per frame.
type Visual struct {
	Shape  Shape
	Radius float64
	Symbol rune // glyph hint for renderers that draw single characters
}

// Renderer receives entity lifecycle and per-frame draw signals.
type Renderer interface {
	AddEntity(h Handle, v Visual)
	RemoveEntity(h Handle)
	UpdateTransform(h Handle, pos physics.Vec2)
	RenderFrame()
}

// Sound identifies a sound effect.
type Sound int

const (
	SoundShoot Sound = iota
	SoundExplosion
	SoundImpact
	SoundPickup
	SoundHurt
	SoundGameOver
)

// PlayOpts are optional playback parameters.
type PlayOpts struct {
	Volume float64 // 0..1, 0 means implementation default
	Loop   bool
}

// Audio plays sound effects. Calls are fire-and-forget.
type Audio interface {
	PlaySound(s Sound, opts PlayOpts)
}

// EffectKind selects a particle effect.
type EffectKind int

const (
	EffectExplosion EffectKind = iota
	EffectImpact
	EffectSparkle
)

// Particles spawns short-lived visual effects. Calls are fire-and-forget.
type Particles interface {
	SpawnEffect(kind EffectKind, pos physics.Vec2)
}

// UI receives player stat change notifications. Read-only from the
// simulation's perspective.
type UI interface {
	ScoreChanged(score int)
	HealthChanged(health, max int)
	AmmoChanged(ammo, max int)
}

// Guard invokes fn and isolates the simulation from a panicking collaborator.
// Sink failures are logged and never abort or corrupt the tick.
func Guard(logger *log.Logger, name string, fn func()) {
	defer func() {
		if r := recover(); r != nil && logger != nil {
			logger.Warn("collaborator panicked", "sink", name, "panic", r)
		}
	}()
	fn()
}
