// Package entity owns the canonical collections of projectiles, enemies and
// power-ups, plus the player's session stats. All mutation happens through
// the Store so the rendering collaborator stays in sync with entity
// lifecycle.
package entity

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tmarek/voidrain/internal/physics"
	"github.com/tmarek/voidrain/internal/sink"
)

// Projectile is a bullet travelling up the screen.
type Projectile struct {
	ID        sink.Handle
	Pos       physics.Vec2
	Vel       physics.Vec2
	Damage    int
	Radius    float64
	OwnerID   sink.Handle // 0 for the player
	CreatedAt time.Time
	lifetime  float64 // seconds remaining
}

// Enemy descends from the top edge toward the escape boundary.
type Enemy struct {
	ID        sink.Handle
	Pos       physics.Vec2
	Vel       physics.Vec2
	Health    int
	MaxHealth int
	Type      EnemyType
	CreatedAt time.Time
}

// PowerUp falls from the top edge and is collected on player contact.
type PowerUp struct {
	ID        sink.Handle
	Pos       physics.Vec2
	Vel       physics.Vec2
	Type      PowerUpType
	CreatedAt time.Time
	lifetime  float64 // seconds remaining
}

// Escaped describes an enemy that left through the bottom boundary.
type Escaped struct {
	ID   sink.Handle
	Type EnemyType
	Pos  physics.Vec2
}

// Store owns all pooled entities for one simulation instance. It is not
// safe for concurrent use; the simulation clock drives it from a single
// tick at a time.
type Store struct {
	world    World
	projCfg  ProjectileConfig
	renderer sink.Renderer
	logger   *log.Logger
	rng      *rand.Rand
	now      func() time.Time

	nextID sink.Handle

	projectiles []*Projectile
	enemies     []*Enemy
	powerUps    []*PowerUp

	// Entities created this tick; they join the live collections at Flush
	// so a spawn tick never integrates them.
	pendingProjectiles []*Projectile
	pendingEnemies     []*Enemy
	pendingPowerUps    []*PowerUp
}

// NewStore creates an empty store. renderer receives add/remove/transform
// notifications for every entity; logger may be nil.
func NewStore(world World, renderer sink.Renderer, logger *log.Logger) *Store {
	return &Store{
		world:    world,
		projCfg:  DefaultProjectileConfig(),
		renderer: renderer,
		logger:   logger,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
}

// SetRand replaces the spawn-position randomness source, for deterministic
// tests.
func (s *Store) SetRand(rng *rand.Rand) {
	s.rng = rng
}

// World returns the store's play area.
func (s *Store) World() World {
	return s.world
}

// ProjectileConfig returns the defaults merged into new projectiles.
func (s *Store) ProjectileConfig() ProjectileConfig {
	return s.projCfg
}

func (s *Store) allocID() sink.Handle {
	s.nextID++
	return s.nextID
}

// CreateProjectile spawns a projectile at origin with default velocity
// (straight up at the configured speed) and default damage.
func (s *Store) CreateProjectile(origin physics.Vec2) *Projectile {
	return s.CreateProjectileWith(origin, physics.Vec2{Y: -s.projCfg.Speed}, s.projCfg.Damage)
}

// CreateProjectileWith spawns a projectile with an explicit velocity and
// damage, overriding the defaults. A non-positive damage falls back to the
// configured default.
func (s *Store) CreateProjectileWith(origin, vel physics.Vec2, damage int) *Projectile {
	if damage <= 0 {
		damage = s.projCfg.Damage
	}
	p := &Projectile{
		ID:        s.allocID(),
		Pos:       origin,
		Vel:       vel,
		Damage:    damage,
		Radius:    s.projCfg.Radius,
		CreatedAt: s.now(),
		lifetime:  s.projCfg.Lifetime,
	}
	s.pendingProjectiles = append(s.pendingProjectiles, p)
	sink.Guard(s.logger, "renderer", func() {
		s.renderer.AddEntity(p.ID, sink.Visual{Shape: sink.ShapeDot, Radius: p.Radius, Symbol: '|'})
	})
	return p
}

// CreateEnemy spawns an enemy of the given type at a random x just above the
// top boundary, moving straight down at its configured speed.
func (s *Store) CreateEnemy(t EnemyType) *Enemy {
	cfg := t.Config()
	x := cfg.Radius + s.rng.Float64()*(s.world.Bounds.Max.X-2*cfg.Radius)
	e := &Enemy{
		ID:        s.allocID(),
		Pos:       physics.Vec2{X: x, Y: s.world.Bounds.Min.Y - cfg.Radius},
		Vel:       physics.Vec2{Y: cfg.Speed},
		Health:    cfg.Health,
		MaxHealth: cfg.Health,
		Type:      t,
		CreatedAt: s.now(),
	}
	s.pendingEnemies = append(s.pendingEnemies, e)
	sink.Guard(s.logger, "renderer", func() {
		s.renderer.AddEntity(e.ID, sink.Visual{Shape: sink.ShapeBlob, Radius: cfg.Radius, Symbol: 'V'})
	})
	return e
}

// CreatePowerUp spawns a power-up of the given type at a random x just above
// the top boundary, falling at its configured speed.
func (s *Store) CreatePowerUp(t PowerUpType) *PowerUp {
	cfg := t.Config()
	x := cfg.Radius + s.rng.Float64()*(s.world.Bounds.Max.X-2*cfg.Radius)
	u := &PowerUp{
		ID:        s.allocID(),
		Pos:       physics.Vec2{X: x, Y: s.world.Bounds.Min.Y - cfg.Radius},
		Vel:       physics.Vec2{Y: cfg.Speed},
		Type:      t,
		CreatedAt: s.now(),
		lifetime:  cfg.Lifetime,
	}
	s.pendingPowerUps = append(s.pendingPowerUps, u)
	sink.Guard(s.logger, "renderer", func() {
		s.renderer.AddEntity(u.ID, sink.Visual{Shape: sink.ShapeRing, Radius: cfg.Radius, Symbol: powerUpSymbol(t)})
	})
	return u
}

func powerUpSymbol(t PowerUpType) rune {
	switch t {
	case PowerUpAmmo:
		return 'a'
	case PowerUpHealth:
		return '+'
	case PowerUpShield:
		return 'o'
	default:
		return '?'
	}
}

// Flush moves entities created this tick into the live collections. Called
// once per tick, after position integration.
func (s *Store) Flush() {
	s.projectiles = append(s.projectiles, s.pendingProjectiles...)
	s.enemies = append(s.enemies, s.pendingEnemies...)
	s.powerUps = append(s.powerUps, s.pendingPowerUps...)
	s.pendingProjectiles = s.pendingProjectiles[:0]
	s.pendingEnemies = s.pendingEnemies[:0]
	s.pendingPowerUps = s.pendingPowerUps[:0]
}

// UpdateProjectiles integrates projectile positions and removes any whose
// lifetime expired or that left the world bounds.
func (s *Store) UpdateProjectiles(dt float64) {
	kept := s.projectiles[:0]
	for _, p := range s.projectiles {
		p.lifetime -= dt
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		if p.lifetime <= 0 || s.outOfBounds(p.Pos, p.Radius) {
			s.dropVisual(p.ID)
			continue
		}
		s.updateTransform(p.ID, p.Pos)
		kept = append(kept, p)
	}
	s.projectiles = kept
}

// UpdateEnemies integrates enemy positions and returns the enemies that left
// through the bottom boundary this tick. Escaped enemies are removed here;
// the caller applies the penalty, so each escape is counted exactly once.
func (s *Store) UpdateEnemies(dt float64) []Escaped {
	var escaped []Escaped
	kept := s.enemies[:0]
	for _, e := range s.enemies {
		e.Pos = e.Pos.Add(e.Vel.Scale(dt))
		if e.Pos.Y-e.Type.Config().Radius > s.world.Bounds.Max.Y {
			escaped = append(escaped, Escaped{ID: e.ID, Type: e.Type, Pos: e.Pos})
			s.dropVisual(e.ID)
			continue
		}
		s.updateTransform(e.ID, e.Pos)
		kept = append(kept, e)
	}
	s.enemies = kept
	return escaped
}

// UpdatePowerUps integrates power-up positions and removes any whose
// lifetime expired or that fell out of the world.
func (s *Store) UpdatePowerUps(dt float64) {
	kept := s.powerUps[:0]
	for _, u := range s.powerUps {
		u.lifetime -= dt
		u.Pos = u.Pos.Add(u.Vel.Scale(dt))
		if u.lifetime <= 0 || s.outOfBounds(u.Pos, u.Type.Config().Radius) {
			s.dropVisual(u.ID)
			continue
		}
		s.updateTransform(u.ID, u.Pos)
		kept = append(kept, u)
	}
	s.powerUps = kept
}

// outOfBounds reports whether a circle has fully left the play area.
// Entities spawn slightly above the top edge, so the top margin is generous.
func (s *Store) outOfBounds(pos physics.Vec2, radius float64) bool {
	b := s.world.Bounds
	return pos.X+radius < b.Min.X ||
		pos.X-radius > b.Max.X ||
		pos.Y+radius < b.Min.Y-2*radius-1 ||
		pos.Y-radius > b.Max.Y
}

// DamageEnemy applies damage to the enemy with the given id. If health
// reaches zero the enemy is removed and true is returned. Damaging an
// absent id is a no-op.
func (s *Store) DamageEnemy(id sink.Handle, amount int) (destroyed bool) {
	for i, e := range s.enemies {
		if e.ID != id {
			continue
		}
		e.Health -= amount
		if e.Health <= 0 {
			e.Health = 0
			s.enemies = append(s.enemies[:i], s.enemies[i+1:]...)
			s.dropVisual(id)
			return true
		}
		return false
	}
	if s.logger != nil {
		s.logger.Debug("damage on absent enemy", "id", id)
	}
	return false
}

// RemoveProjectile detaches the projectile and drops its visual.
// Removing an absent id is a no-op.
func (s *Store) RemoveProjectile(id sink.Handle) {
	for i, p := range s.projectiles {
		if p.ID == id {
			s.projectiles = append(s.projectiles[:i], s.projectiles[i+1:]...)
			s.dropVisual(id)
			return
		}
	}
}

// RemoveEnemy detaches the enemy and drops its visual.
// Removing an absent id is a no-op.
func (s *Store) RemoveEnemy(id sink.Handle) {
	for i, e := range s.enemies {
		if e.ID == id {
			s.enemies = append(s.enemies[:i], s.enemies[i+1:]...)
			s.dropVisual(id)
			return
		}
	}
}

// RemovePowerUp detaches the power-up and drops its visual.
// Removing an absent id is a no-op.
func (s *Store) RemovePowerUp(id sink.Handle) {
	for i, u := range s.powerUps {
		if u.ID == id {
			s.powerUps = append(s.powerUps[:i], s.powerUps[i+1:]...)
			s.dropVisual(id)
			return
		}
	}
}

// ClearAll removes every entity, live and pending. Used on restart and on
// returning to the menu.
func (s *Store) ClearAll() {
	for _, p := range s.projectiles {
		s.dropVisual(p.ID)
	}
	for _, e := range s.enemies {
		s.dropVisual(e.ID)
	}
	for _, u := range s.powerUps {
		s.dropVisual(u.ID)
	}
	for _, p := range s.pendingProjectiles {
		s.dropVisual(p.ID)
	}
	for _, e := range s.pendingEnemies {
		s.dropVisual(e.ID)
	}
	for _, u := range s.pendingPowerUps {
		s.dropVisual(u.ID)
	}
	s.projectiles = s.projectiles[:0]
	s.enemies = s.enemies[:0]
	s.powerUps = s.powerUps[:0]
	s.pendingProjectiles = s.pendingProjectiles[:0]
	s.pendingEnemies = s.pendingEnemies[:0]
	s.pendingPowerUps = s.pendingPowerUps[:0]
}

// Projectiles returns the live projectiles. The slice is owned by the store
// and only valid until the next mutation.
func (s *Store) Projectiles() []*Projectile {
	return s.projectiles
}

// Enemies returns the live enemies. The slice is owned by the store and only
// valid until the next mutation.
func (s *Store) Enemies() []*Enemy {
	return s.enemies
}

// PowerUps returns the live power-ups. The slice is owned by the store and
// only valid until the next mutation.
func (s *Store) PowerUps() []*PowerUp {
	return s.powerUps
}

func (s *Store) updateTransform(id sink.Handle, pos physics.Vec2) {
	sink.Guard(s.logger, "renderer", func() {
		s.renderer.UpdateTransform(id, pos)
	})
}

func (s *Store) dropVisual(id sink.Handle) {
	sink.Guard(s.logger, "renderer", func() {
		s.renderer.RemoveEntity(id)
	})
}
