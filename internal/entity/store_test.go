package entity

import (
	"math"
	"math/rand"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/tmarek/voidrain/internal/physics"
	"github.com/tmarek/voidrain/internal/sink"
	mocksink "github.com/tmarek/voidrain/internal/sink/mock"
)

func newTestStore() *Store {
	s := NewStore(DefaultWorld(), sink.NopRenderer{}, nil)
	s.SetRand(rand.New(rand.NewSource(1)))
	return s
}

func almostEqual(a, b physics.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestProjectileIntegration(t *testing.T) {
	s := newTestStore()
	origin := physics.Vec2{X: 60, Y: 70}
	vel := physics.Vec2{X: 4, Y: -20}
	p := s.CreateProjectileWith(origin, vel, 10)
	s.Flush()

	s.UpdateProjectiles(0.5)

	want := origin.Add(vel.Scale(0.5))
	if !almostEqual(p.Pos, want) {
		t.Errorf("position after update = %v, want %v", p.Pos, want)
	}
}

func TestProjectileDefaults(t *testing.T) {
	s := newTestStore()
	p := s.CreateProjectile(physics.Vec2{X: 60, Y: 70})

	cfg := s.ProjectileConfig()
	if p.Damage != cfg.Damage {
		t.Errorf("damage = %d, want default %d", p.Damage, cfg.Damage)
	}
	if p.Vel.Y != -cfg.Speed || p.Vel.X != 0 {
		t.Errorf("velocity = %v, want straight up at %v", p.Vel, cfg.Speed)
	}

	// Zero damage override falls back to the default.
	p2 := s.CreateProjectileWith(physics.Vec2{X: 60, Y: 70}, physics.Vec2{Y: -1}, 0)
	if p2.Damage != cfg.Damage {
		t.Errorf("zero-damage override = %d, want default %d", p2.Damage, cfg.Damage)
	}
}

func TestSpawnTickNotIntegrated(t *testing.T) {
	s := newTestStore()
	e := s.CreateEnemy(EnemyBasic)
	spawnPos := e.Pos

	// The enemy is pending until Flush; an update on the spawn tick must
	// not move it.
	s.UpdateEnemies(1.0)
	if !almostEqual(e.Pos, spawnPos) {
		t.Fatalf("pending enemy moved on spawn tick: %v -> %v", spawnPos, e.Pos)
	}

	s.Flush()
	s.UpdateEnemies(1.0)
	want := spawnPos.Add(e.Vel.Scale(1.0))
	if !almostEqual(e.Pos, want) {
		t.Errorf("live enemy position = %v, want %v", e.Pos, want)
	}
}

func TestProjectileLifetimeExpiry(t *testing.T) {
	s := newTestStore()
	s.CreateProjectile(physics.Vec2{X: 60, Y: 70})
	s.Flush()

	lifetime := s.ProjectileConfig().Lifetime
	for elapsed := 0.0; elapsed < lifetime+0.1; elapsed += 0.05 {
		s.UpdateProjectiles(0.05)
	}
	if n := len(s.Projectiles()); n != 0 {
		t.Errorf("projectiles after lifetime expiry = %d, want 0", n)
	}
}

func TestProjectileLeavesTopBound(t *testing.T) {
	s := newTestStore()
	s.CreateProjectile(physics.Vec2{X: 60, Y: 2})
	s.Flush()

	// Fast enough to clear the top edge well within its lifetime.
	for i := 0; i < 20; i++ {
		s.UpdateProjectiles(0.03)
	}
	if n := len(s.Projectiles()); n != 0 {
		t.Errorf("projectiles after leaving bounds = %d, want 0", n)
	}
}

func TestEnemyEscapeCountedOnce(t *testing.T) {
	s := newTestStore()
	e := s.CreateEnemy(EnemyBasic)
	s.Flush()
	e.Pos = physics.Vec2{X: 60, Y: s.World().Bounds.Max.Y + 10}

	escaped := s.UpdateEnemies(0.016)
	if len(escaped) != 1 {
		t.Fatalf("escaped = %d, want 1", len(escaped))
	}
	if escaped[0].ID != e.ID || escaped[0].Type != EnemyBasic {
		t.Errorf("escaped entry = %+v, want id %d type basic", escaped[0], e.ID)
	}
	if n := len(s.Enemies()); n != 0 {
		t.Errorf("enemies after escape = %d, want 0", n)
	}

	// A second update must not report it again.
	if escaped := s.UpdateEnemies(0.016); len(escaped) != 0 {
		t.Errorf("second update escaped = %d, want 0", len(escaped))
	}
}

func TestDamageEnemy(t *testing.T) {
	s := newTestStore()
	e := s.CreateEnemy(EnemyBasic)
	s.Flush()

	if destroyed := s.DamageEnemy(e.ID, 10); destroyed {
		t.Error("half damage reported destroyed")
	}
	if e.Health != 10 {
		t.Errorf("health after 10 damage = %d, want 10", e.Health)
	}

	if destroyed := s.DamageEnemy(e.ID, 15); !destroyed {
		t.Error("lethal damage not reported destroyed")
	}
	if e.Health != 0 {
		t.Errorf("health after destruction = %d, want exactly 0", e.Health)
	}
	if n := len(s.Enemies()); n != 0 {
		t.Errorf("enemies after destruction = %d, want 0", n)
	}

	// Damaging the now-absent id is a no-op.
	if destroyed := s.DamageEnemy(e.ID, 100); destroyed {
		t.Error("damage on absent id reported destroyed")
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := newTestStore()
	p := s.CreateProjectile(physics.Vec2{X: 60, Y: 70})
	e := s.CreateEnemy(EnemyFast)
	u := s.CreatePowerUp(PowerUpAmmo)
	s.Flush()

	s.RemoveProjectile(p.ID)
	s.RemoveProjectile(p.ID)
	s.RemoveEnemy(e.ID)
	s.RemoveEnemy(e.ID)
	s.RemovePowerUp(u.ID)
	s.RemovePowerUp(u.ID)

	if len(s.Projectiles()) != 0 || len(s.Enemies()) != 0 || len(s.PowerUps()) != 0 {
		t.Error("collections not empty after removals")
	}
}

func TestClearAll(t *testing.T) {
	s := newTestStore()
	s.CreateProjectile(physics.Vec2{X: 60, Y: 70})
	s.CreateEnemy(EnemyHeavy)
	s.Flush()
	s.CreatePowerUp(PowerUpShield) // still pending

	s.ClearAll()
	s.Flush()

	if len(s.Projectiles()) != 0 || len(s.Enemies()) != 0 || len(s.PowerUps()) != 0 {
		t.Error("collections not empty after ClearAll")
	}
}

func TestUniqueIDs(t *testing.T) {
	s := newTestStore()
	seen := make(map[sink.Handle]bool)
	for i := 0; i < 100; i++ {
		p := s.CreateProjectile(physics.Vec2{X: 60, Y: 70})
		if seen[p.ID] {
			t.Fatalf("duplicate id %d", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestUnknownTypePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Config on unknown enemy type did not panic")
		}
	}()
	EnemyType(99).Config()
}

func TestEnemySpawnsAtTopBoundary(t *testing.T) {
	s := newTestStore()
	for i := 0; i < 20; i++ {
		e := s.CreateEnemy(EnemyBasic)
		cfg := e.Type.Config()
		if e.Pos.Y > s.World().Bounds.Min.Y {
			t.Errorf("spawn y = %v, want at or above top edge", e.Pos.Y)
		}
		if e.Pos.X < cfg.Radius || e.Pos.X > s.World().Bounds.Max.X-cfg.Radius {
			t.Errorf("spawn x = %v outside playable range", e.Pos.X)
		}
	}
}

func TestRendererLifecycleNotifications(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocksink.NewMockRenderer(ctrl)
	s := NewStore(DefaultWorld(), renderer, nil)
	s.SetRand(rand.New(rand.NewSource(1)))

	renderer.EXPECT().AddEntity(gomock.Any(), gomock.Any())
	e := s.CreateEnemy(EnemyBasic)
	s.Flush()

	renderer.EXPECT().RemoveEntity(e.ID)
	s.RemoveEnemy(e.ID)
}

// panicRenderer simulates a broken rendering collaborator.
type panicRenderer struct{}

func (panicRenderer) AddEntity(sink.Handle, sink.Visual)             { panic("render backend gone") }
func (panicRenderer) RemoveEntity(sink.Handle)                       { panic("render backend gone") }
func (panicRenderer) UpdateTransform(sink.Handle, physics.Vec2)      { panic("render backend gone") }
func (panicRenderer) RenderFrame()                                   { panic("render backend gone") }

func TestPanickingRendererIsIsolated(t *testing.T) {
	s := NewStore(DefaultWorld(), panicRenderer{}, nil)
	s.SetRand(rand.New(rand.NewSource(1)))

	e := s.CreateEnemy(EnemyBasic)
	s.Flush()
	s.UpdateEnemies(0.016)
	s.RemoveEnemy(e.ID)

	// The simulation state must stay coherent despite the panics.
	if n := len(s.Enemies()); n != 0 {
		t.Errorf("enemies = %d, want 0", n)
	}
}
