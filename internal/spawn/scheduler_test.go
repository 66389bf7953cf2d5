package spawn

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tmarek/voidrain/internal/entity"
	"github.com/tmarek/voidrain/internal/sink"
)

func newTestScheduler() (*Scheduler, *entity.Store) {
	store := entity.NewStore(entity.DefaultWorld(), sink.NopRenderer{}, nil)
	store.SetRand(rand.New(rand.NewSource(1)))
	s := NewScheduler(store, DefaultConfig(), nil)
	s.SetRand(rand.New(rand.NewSource(7)))
	return s, store
}

func liveEnemies(store *entity.Store) int {
	store.Flush()
	return len(store.Enemies())
}

func livePowerUps(store *entity.Store) int {
	store.Flush()
	return len(store.PowerUps())
}

func TestWeightsNormalizedOnWrite(t *testing.T) {
	s, _ := newTestScheduler()
	s.SetEnemyWeights(map[entity.EnemyType]float64{
		entity.EnemyBasic: 2,
		entity.EnemyFast:  1,
		entity.EnemyHeavy: 1,
	})

	weights := s.EnemyWeights()
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("weights sum = %v, want 1.0", sum)
	}
	if math.Abs(weights[0]-0.5) > 1e-9 {
		t.Errorf("basic weight = %v, want 0.5", weights[0])
	}
}

func TestWeightsRejectNonPositiveTotal(t *testing.T) {
	s, _ := newTestScheduler()
	before := s.EnemyWeights()

	s.SetEnemyWeights(map[entity.EnemyType]float64{})

	after := s.EnemyWeights()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("weights changed after invalid write: %v -> %v", before, after)
		}
	}
}

func TestPickedTypeAlwaysConfigured(t *testing.T) {
	s, _ := newTestScheduler()
	for i := 0; i < 1000; i++ {
		picked := s.pickEnemyType()
		valid := false
		for _, want := range entity.EnemyTypes {
			if picked == want {
				valid = true
			}
		}
		if !valid {
			t.Fatalf("picked unconfigured type %v", picked)
		}
	}
}

func TestPickFallsBackToFirstType(t *testing.T) {
	s, _ := newTestScheduler()
	// Degenerate weights that don't cover the whole [0,1) range.
	s.enemyWeights = [3]float64{0, 0, 0}
	if got := s.pickEnemyType(); got != entity.EnemyTypes[0] {
		t.Errorf("fallback pick = %v, want %v", got, entity.EnemyTypes[0])
	}
}

func TestEnemySpawnInterval(t *testing.T) {
	s, store := newTestScheduler()

	s.Advance(1.59)
	if n := liveEnemies(store); n != 0 {
		t.Fatalf("enemies before interval = %d, want 0", n)
	}

	s.Advance(0.02)
	if n := liveEnemies(store); n != 1 {
		t.Errorf("enemies after interval = %d, want 1", n)
	}
}

func TestEnemyTimerAccumulatesWhileDisabled(t *testing.T) {
	s, store := newTestScheduler()

	s.EnableEnemies(false)
	s.Advance(10)
	if n := liveEnemies(store); n != 0 {
		t.Fatalf("disabled scheduler spawned %d enemies", n)
	}

	// The timer only resets when a spawn occurs, so re-enabling fires on
	// the next advance.
	s.EnableEnemies(true)
	s.Advance(0.001)
	if n := liveEnemies(store); n != 1 {
		t.Errorf("enemies after re-enable = %d, want 1", n)
	}
}

func TestPowerUpTimerResetsEveryCheck(t *testing.T) {
	s, store := newTestScheduler()
	// Never spawns, but the timer must still reset on each check.
	s.SetPowerUpRule(entity.PowerUpAmmo, PowerUpRule{Interval: 1, Chance: 0})
	s.EnablePowerUp(entity.PowerUpHealth, false)
	s.EnablePowerUp(entity.PowerUpShield, false)

	s.Advance(1.5) // check fires, fails the probability roll, timer resets
	s.SetPowerUpRule(entity.PowerUpAmmo, PowerUpRule{Interval: 1, Chance: 1})

	s.Advance(0.5) // only half an interval since the reset
	if n := livePowerUps(store); n != 0 {
		t.Fatalf("power-up spawned %v after timer reset, want none", n)
	}

	s.Advance(0.6)
	if n := livePowerUps(store); n != 1 {
		t.Errorf("power-ups after full interval = %d, want 1", n)
	}
}

func TestPowerUpCategoriesIndependent(t *testing.T) {
	s, store := newTestScheduler()
	s.SetPowerUpRule(entity.PowerUpAmmo, PowerUpRule{Interval: 1, Chance: 1})
	s.SetPowerUpRule(entity.PowerUpHealth, PowerUpRule{Interval: 2, Chance: 1})
	s.EnablePowerUp(entity.PowerUpShield, false)

	s.Advance(1.1)
	if n := livePowerUps(store); n != 1 {
		t.Fatalf("after 1.1s power-ups = %d, want 1 (ammo only)", n)
	}
	s.Advance(1.0)
	if n := livePowerUps(store); n != 3 {
		t.Errorf("after 2.1s power-ups = %d, want 3 (two ammo + one health)", n)
	}
}

func TestDifficultyScalesEnemyRate(t *testing.T) {
	s, store := newTestScheduler()
	s.SetDifficulty(DifficultyHard)

	// Hard scales the 1.6s base interval to 0.96s.
	s.Advance(1.0)
	if n := liveEnemies(store); n != 1 {
		t.Errorf("hard difficulty enemies after 1s = %d, want 1", n)
	}

	s2, store2 := newTestScheduler()
	s2.SetDifficulty(DifficultyEasy)
	s2.Advance(2.0) // easy interval is 2.4s
	if n := liveEnemies(store2); n != 0 {
		t.Errorf("easy difficulty enemies after 2s = %d, want 0", n)
	}
}

func TestForceSpawn(t *testing.T) {
	s, store := newTestScheduler()

	e := s.ForceSpawnEnemy(entity.EnemyHeavy)
	if e.Type != entity.EnemyHeavy {
		t.Errorf("forced enemy type = %v, want heavy", e.Type)
	}
	u := s.ForceSpawnPowerUp(entity.PowerUpShield)
	if u.Type != entity.PowerUpShield {
		t.Errorf("forced power-up type = %v, want shield", u.Type)
	}

	if n := liveEnemies(store); n != 1 {
		t.Errorf("enemies = %d, want 1", n)
	}
}

func TestResetZeroesTimers(t *testing.T) {
	s, store := newTestScheduler()
	s.Advance(1.5)
	s.Reset()
	s.Advance(1.5)
	if n := liveEnemies(store); n != 0 {
		t.Errorf("enemies after reset + partial interval = %d, want 0", n)
	}
}

func TestWeightDistribution(t *testing.T) {
	s, _ := newTestScheduler()
	counts := map[entity.EnemyType]int{}
	const draws = 10000
	for i := 0; i < draws; i++ {
		counts[s.pickEnemyType()]++
	}

	// 60/30/10 split with a generous tolerance.
	checks := []struct {
		t    entity.EnemyType
		want float64
	}{
		{entity.EnemyBasic, 0.6},
		{entity.EnemyFast, 0.3},
		{entity.EnemyHeavy, 0.1},
	}
	for _, c := range checks {
		got := float64(counts[c.t]) / draws
		if math.Abs(got-c.want) > 0.03 {
			t.Errorf("%v frequency = %v, want ~%v", c.t, got, c.want)
		}
	}
}
