package term

import (
	"math"
	"math/rand"
	"sync"

	"github.com/tmarek/voidrain/internal/draw"
	"github.com/tmarek/voidrain/internal/physics"
	"github.com/tmarek/voidrain/internal/sink"
)

// particlePool reuses particle objects across bursts to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &particle{}
	},
}

// particle is one short-lived visual spark.
type particle struct {
	pos         physics.Vec2
	vel         physics.Vec2
	lifetime    float64 // seconds remaining
	maxLifetime float64
	drag        float64 // velocity decay factor per 1/60s
}

// particleField owns all live particles for one session's presentation.
// Purely visual; the simulation never reads it.
type particleField struct {
	particles []*particle
	rng       *rand.Rand
}

func newParticleField(rng *rand.Rand) *particleField {
	return &particleField{rng: rng}
}

// Spawn creates the burst for one effect request.
func (f *particleField) Spawn(kind sink.EffectKind, pos physics.Vec2) {
	switch kind {
	case sink.EffectExplosion:
		f.burst(pos, 14, 22.0, 0.7, 0.9)
	case sink.EffectImpact:
		f.burst(pos, 4, 10.0, 0.25, 0.85)
	case sink.EffectSparkle:
		f.burst(pos, 8, 6.0, 0.6, 0.92)
	}
}

// burst emits count particles in a circular pattern with randomized speed
// and lifetime.
func (f *particleField) burst(pos physics.Vec2, count int, speed, lifetime, drag float64) {
	for i := 0; i < count; i++ {
		angle := f.rng.Float64() * 2 * math.Pi
		spd := speed * (0.5 + f.rng.Float64())
		life := lifetime * (0.5 + f.rng.Float64()*0.5)

		p := particlePool.Get().(*particle)
		p.pos = pos
		p.vel = physics.Vec2{X: math.Cos(angle) * spd, Y: math.Sin(angle) * spd}
		p.lifetime = life
		p.maxLifetime = life
		p.drag = drag
		f.particles = append(f.particles, p)
	}
}

// Update advances and expires particles.
func (f *particleField) Update(dt float64) {
	kept := f.particles[:0]
	for _, p := range f.particles {
		p.lifetime -= dt
		if p.lifetime <= 0 {
			particlePool.Put(p)
			continue
		}
		dragFactor := math.Pow(p.drag, dt*60)
		p.vel = p.vel.Scale(dragFactor)
		p.pos = p.pos.Add(p.vel.Scale(dt))
		kept = append(kept, p)
	}
	f.particles = kept
}

// Draw plots all particles onto the canvas, skipping nearly faded ones.
func (f *particleField) Draw(c *draw.Canvas) {
	for _, p := range f.particles {
		if p.lifetime/p.maxLifetime < 0.2 {
			continue
		}
		c.Set(p.pos.X, p.pos.Y)
	}
}

// Clear drops every particle, returning them to the pool.
func (f *particleField) Clear() {
	for _, p := range f.particles {
		particlePool.Put(p)
	}
	f.particles = f.particles[:0]
}
