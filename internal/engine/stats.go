package engine

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is the frozen end-of-game statistics, taken on the tick that
// transitioned to game over.
type Snapshot struct {
	SessionID        uuid.UUID
	Score            int
	ShotsFired       int
	Hits             int
	Accuracy         float64 // Hits/ShotsFired, 0 when no shots were fired
	EnemiesDestroyed int
	EnemiesEscaped   int
	Elapsed          time.Duration
}

// runningStats accumulates while playing.
type runningStats struct {
	shotsFired       int
	hits             int
	enemiesDestroyed int
	enemiesEscaped   int
}

func (r runningStats) accuracy() float64 {
	if r.shotsFired == 0 {
		return 0
	}
	return float64(r.hits) / float64(r.shotsFired)
}
