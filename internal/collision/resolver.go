// Package collision detects and resolves entity overlaps. Passes run in a
// fixed order per tick: projectile×enemy, player×enemy, player×power-up.
// All tests are brute-force circle–circle overlaps against the entity
// store's current positions.
package collision

import (
	"github.com/charmbracelet/log"

	"github.com/tmarek/voidrain/internal/entity"
	"github.com/tmarek/voidrain/internal/physics"
	"github.com/tmarek/voidrain/internal/sink"
)

// ProjectileHit records one projectile consumed by an enemy overlap.
type ProjectileHit struct {
	ProjectileID sink.Handle
	EnemyID      sink.Handle
	EnemyType    entity.EnemyType
	Damage       int
	Destroyed    bool // enemy died from this hit
	Score        int  // nonzero only when Destroyed
	Pos          physics.Vec2
}

// PlayerHit records one enemy that reached the player's hitbox.
type PlayerHit struct {
	EnemyID   sink.Handle
	EnemyType entity.EnemyType
	Damage    int
	Pos       physics.Vec2
}

// Collection records one power-up the player picked up.
type Collection struct {
	PowerUpID sink.Handle
	Type      entity.PowerUpType
	Magnitude float64
	Pos       physics.Vec2
}

// Result is the structured outcome of one resolution pass. The resolver has
// already applied damage and removals; the caller applies the player-stat
// consequences.
type Result struct {
	ProjectileHits     []ProjectileHit
	PlayerCollisions   []PlayerHit
	PowerUpCollections []Collection
}

// Resolver runs collision passes against a store. Not safe for concurrent
// use; the simulation clock drives it once per tick.
type Resolver struct {
	store        *entity.Store
	playerRadius float64
	particles    sink.Particles
	audio        sink.Audio
	logger       *log.Logger

	// Iteration snapshots, reused across ticks to avoid allocations. The
	// store's slices shift underneath us as entities are removed mid-pass.
	projBuf  []*entity.Projectile
	enemyBuf []*entity.Enemy
	puBuf    []*entity.PowerUp
}

// NewResolver creates a resolver. particles and audio receive fire-and-forget
// effect requests; logger may be nil.
func NewResolver(store *entity.Store, playerRadius float64, particles sink.Particles, audio sink.Audio, logger *log.Logger) *Resolver {
	return &Resolver{
		store:        store,
		playerRadius: playerRadius,
		particles:    particles,
		audio:        audio,
		logger:       logger,
	}
}

// CheckAll runs the three collision passes and returns the structured
// result. Positions must already be integrated for this tick.
func (r *Resolver) CheckAll(playerPos physics.Vec2) Result {
	var res Result
	r.projectileEnemyPass(&res)
	r.playerEnemyPass(playerPos, &res)
	r.playerPowerUpPass(playerPos, &res)
	return res
}

// projectileEnemyPass applies projectile damage to enemies. A projectile is
// consumed by the first enemy it overlaps, at most one per tick; an enemy
// accumulates damage from every projectile that reaches it this tick and
// scores exactly once, on the hit that destroyed it.
func (r *Resolver) projectileEnemyPass(res *Result) {
	r.projBuf = append(r.projBuf[:0], r.store.Projectiles()...)
	r.enemyBuf = append(r.enemyBuf[:0], r.store.Enemies()...)

	for _, p := range r.projBuf {
		for _, e := range r.enemyBuf {
			if e.Health <= 0 {
				continue // destroyed earlier this pass
			}
			cfg := e.Type.Config()
			if !physics.CirclesOverlap(p.Pos, p.Radius, e.Pos, cfg.Radius) {
				continue
			}
			destroyed := r.store.DamageEnemy(e.ID, p.Damage)
			hit := ProjectileHit{
				ProjectileID: p.ID,
				EnemyID:      e.ID,
				EnemyType:    e.Type,
				Damage:       p.Damage,
				Destroyed:    destroyed,
				Pos:          e.Pos,
			}
			if destroyed {
				hit.Score = cfg.Score
				r.effect(sink.EffectExplosion, e.Pos)
				r.sound(sink.SoundExplosion)
			} else {
				r.effect(sink.EffectImpact, p.Pos)
				r.sound(sink.SoundImpact)
			}
			res.ProjectileHits = append(res.ProjectileHits, hit)
			r.store.RemoveProjectile(p.ID)
			break
		}
	}
}

// playerEnemyPass removes every enemy overlapping the player's hitbox. The
// enemy never survives contact; the caller decides what its contact damage
// does to the player.
func (r *Resolver) playerEnemyPass(playerPos physics.Vec2, res *Result) {
	r.enemyBuf = append(r.enemyBuf[:0], r.store.Enemies()...)
	for _, e := range r.enemyBuf {
		cfg := e.Type.Config()
		if !physics.CirclesOverlap(playerPos, r.playerRadius, e.Pos, cfg.Radius) {
			continue
		}
		res.PlayerCollisions = append(res.PlayerCollisions, PlayerHit{
			EnemyID:   e.ID,
			EnemyType: e.Type,
			Damage:    cfg.ContactDamage,
			Pos:       e.Pos,
		})
		r.effect(sink.EffectExplosion, e.Pos)
		r.store.RemoveEnemy(e.ID)
	}
}

// playerPowerUpPass collects every power-up overlapping the player.
func (r *Resolver) playerPowerUpPass(playerPos physics.Vec2, res *Result) {
	r.puBuf = append(r.puBuf[:0], r.store.PowerUps()...)
	for _, u := range r.puBuf {
		cfg := u.Type.Config()
		if !physics.CirclesOverlap(playerPos, r.playerRadius, u.Pos, cfg.Radius) {
			continue
		}
		res.PowerUpCollections = append(res.PowerUpCollections, Collection{
			PowerUpID: u.ID,
			Type:      u.Type,
			Magnitude: cfg.Magnitude,
			Pos:       u.Pos,
		})
		r.effect(sink.EffectSparkle, u.Pos)
		r.sound(sink.SoundPickup)
		r.store.RemovePowerUp(u.ID)
	}
}

func (r *Resolver) effect(kind sink.EffectKind, pos physics.Vec2) {
	sink.Guard(r.logger, "particles", func() {
		r.particles.SpawnEffect(kind, pos)
	})
}

func (r *Resolver) sound(s sink.Sound) {
	sink.Guard(r.logger, "audio", func() {
		r.audio.PlaySound(s, sink.PlayOpts{})
	})
}
