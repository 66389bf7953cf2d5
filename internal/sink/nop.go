package sink

import "github.com/tmarek/voidrain/internal/physics"

// NopRenderer discards all rendering calls. Useful for headless simulations
// and tests.
type NopRenderer struct{}

func (NopRenderer) AddEntity(Handle, Visual) {}
func (NopRenderer) RemoveEntity(Handle) {}
func (NopRenderer) UpdateTransform(Handle, physics.Vec2) {}
func (NopRenderer) RenderFrame() {}

// NopAudio discards all playback calls.
type NopAudio struct{}

func (NopAudio) PlaySound(Sound, PlayOpts) {}

// NopParticles discards all effect calls.
type NopParticles struct{}

func (NopParticles) SpawnEffect(EffectKind, physics.Vec2) {}

// NopUI discards all notifications.
type NopUI struct{}

func (NopUI) ScoreChanged(int) {}
func (NopUI) HealthChanged(int, int) {}
func (NopUI) AmmoChanged(int, int) {}

var (
	_ Renderer  = NopRenderer{}
	_ Audio     = NopAudio{}
	_ Particles = NopParticles{}
	_ UI        = NopUI{}
)
