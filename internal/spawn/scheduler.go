// Package spawn schedules procedural enemy and power-up creation. One shared
// timer gates enemy spawns behind a weighted type table; each power-up type
// runs its own timer and probability check so rare drops never starve
// frequent ones.
package spawn

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tmarek/voidrain/internal/entity"
)

// Difficulty scales the base enemy spawn rate.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
)

// intervalScale returns the multiplier applied to the base enemy interval.
func (d Difficulty) intervalScale() float64 {
	switch d {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.6
	default:
		return 1.0
	}
}

// PowerUpRule configures one power-up category: how often its timer fires
// and the probability that a firing actually spawns.
type PowerUpRule struct {
	Interval float64 // seconds between checks
	Chance   float64 // 0..1 probability per check
}

// Config holds the scheduler tunables.
type Config struct {
	EnemyInterval float64 // base seconds between enemy spawns
	EnemyWeights  map[entity.EnemyType]float64
	PowerUps      map[entity.PowerUpType]PowerUpRule
}

// DefaultConfig returns the normal-difficulty spawn tables.
func DefaultConfig() Config {
	return Config{
		EnemyInterval: 1.6,
		EnemyWeights: map[entity.EnemyType]float64{
			entity.EnemyBasic: 0.6,
			entity.EnemyFast:  0.3,
			entity.EnemyHeavy: 0.1,
		},
		PowerUps: map[entity.PowerUpType]PowerUpRule{
			entity.PowerUpAmmo:   {Interval: 9, Chance: 0.5},
			entity.PowerUpHealth: {Interval: 13, Chance: 0.4},
			entity.PowerUpShield: {Interval: 21, Chance: 0.3},
		},
	}
}

type powerUpState struct {
	rule    PowerUpRule
	enabled bool
	timer   float64
}

// Scheduler drives timed entity creation against a Store. Not safe for
// concurrent use; the simulation clock advances it once per tick.
type Scheduler struct {
	store  *entity.Store
	logger *log.Logger
	rng    *rand.Rand

	baseEnemyInterval float64
	difficulty        Difficulty
	enemyWeights      [len(entity.EnemyTypes)]float64 // normalized, table order
	enemiesEnabled    bool
	enemyTimer        float64

	powerUps [len(entity.PowerUpTypes)]powerUpState
}

// NewScheduler creates a scheduler with the given tables. logger may be nil.
func NewScheduler(store *entity.Store, cfg Config, logger *log.Logger) *Scheduler {
	s := &Scheduler{
		store:             store,
		logger:            logger,
		rng:               rand.New(rand.NewSource(time.Now().UnixNano())),
		baseEnemyInterval: cfg.EnemyInterval,
		difficulty:        DifficultyNormal,
		enemiesEnabled:    true,
	}
	s.SetEnemyWeights(cfg.EnemyWeights)
	for i, t := range entity.PowerUpTypes {
		s.powerUps[i] = powerUpState{rule: cfg.PowerUps[t], enabled: true}
	}
	return s
}

// SetRand replaces the randomness source, for deterministic tests.
func (s *Scheduler) SetRand(rng *rand.Rand) {
	s.rng = rng
}

// Advance moves all spawn timers forward by dt seconds and creates entities
// whose timers fired.
func (s *Scheduler) Advance(dt float64) {
	s.advanceEnemies(dt)
	s.advancePowerUps(dt)
}

func (s *Scheduler) advanceEnemies(dt float64) {
	s.enemyTimer += dt
	if !s.enemiesEnabled || s.enemyTimer < s.enemyInterval() {
		return
	}
	t := s.pickEnemyType()
	s.store.CreateEnemy(t)
	// The timer resets only when a spawn actually occurred, so a disabled
	// category spawns immediately once re-enabled.
	s.enemyTimer = 0
	if s.logger != nil {
		s.logger.Debug("spawned enemy", "type", t)
	}
}

func (s *Scheduler) advancePowerUps(dt float64) {
	for i := range s.powerUps {
		st := &s.powerUps[i]
		st.timer += dt
		if st.timer < st.rule.Interval {
			continue
		}
		// Unlike enemies, the timer resets on every check regardless of the
		// probability outcome, keeping categories independent.
		st.timer = 0
		if !st.enabled || s.rng.Float64() >= st.rule.Chance {
			continue
		}
		t := entity.PowerUpTypes[i]
		s.store.CreatePowerUp(t)
		if s.logger != nil {
			s.logger.Debug("spawned power-up", "type", t)
		}
	}
}

// pickEnemyType walks the cumulative weight table against one uniform draw.
// The first bucket whose cumulative weight exceeds the draw wins; if the
// weights don't cover the draw (rounding), the first type is the fallback.
func (s *Scheduler) pickEnemyType() entity.EnemyType {
	draw := s.rng.Float64()
	cum := 0.0
	for i, w := range s.enemyWeights {
		cum += w
		if draw < cum {
			return entity.EnemyTypes[i]
		}
	}
	return entity.EnemyTypes[0]
}

func (s *Scheduler) enemyInterval() float64 {
	return s.baseEnemyInterval * s.difficulty.intervalScale()
}

// SetEnemyInterval changes the base seconds between enemy spawns.
func (s *Scheduler) SetEnemyInterval(seconds float64) {
	if seconds > 0 {
		s.baseEnemyInterval = seconds
	}
}

// SetEnemyWeights replaces the enemy type weights. Weights are normalized on
// write; a missing type gets weight zero. A non-positive total is rejected.
func (s *Scheduler) SetEnemyWeights(weights map[entity.EnemyType]float64) {
	total := 0.0
	for _, t := range entity.EnemyTypes {
		if w := weights[t]; w > 0 {
			total += w
		}
	}
	if total <= 0 {
		if s.logger != nil {
			s.logger.Debug("rejecting non-positive enemy weights")
		}
		return
	}
	for i, t := range entity.EnemyTypes {
		w := weights[t]
		if w < 0 {
			w = 0
		}
		s.enemyWeights[i] = w / total
	}
}

// EnemyWeights returns the normalized weights in entity.EnemyTypes order.
func (s *Scheduler) EnemyWeights() []float64 {
	out := make([]float64, len(s.enemyWeights))
	copy(out, s.enemyWeights[:])
	return out
}

// SetPowerUpRule changes one power-up category's interval and chance.
func (s *Scheduler) SetPowerUpRule(t entity.PowerUpType, rule PowerUpRule) {
	s.powerUps[t] = powerUpState{rule: rule, enabled: s.powerUps[t].enabled}
}

// EnableEnemies toggles enemy spawning.
func (s *Scheduler) EnableEnemies(enabled bool) {
	s.enemiesEnabled = enabled
}

// EnablePowerUp toggles one power-up category.
func (s *Scheduler) EnablePowerUp(t entity.PowerUpType, enabled bool) {
	s.powerUps[t].enabled = enabled
}

// SetDifficulty applies a preset rate multiplier to enemy spawning.
func (s *Scheduler) SetDifficulty(d Difficulty) {
	s.difficulty = d
}

// ForceSpawnEnemy creates an enemy immediately, bypassing the timer.
// Intended for tests and tuning sessions.
func (s *Scheduler) ForceSpawnEnemy(t entity.EnemyType) *entity.Enemy {
	return s.store.CreateEnemy(t)
}

// ForceSpawnPowerUp creates a power-up immediately, bypassing the timer.
func (s *Scheduler) ForceSpawnPowerUp(t entity.PowerUpType) *entity.PowerUp {
	return s.store.CreatePowerUp(t)
}

// Reset zeroes all spawn timers. Called on game start and restart.
func (s *Scheduler) Reset() {
	s.enemyTimer = 0
	for i := range s.powerUps {
		s.powerUps[i].timer = 0
	}
}
