package entity

import "github.com/tmarek/voidrain/internal/physics"

// World holds the logical play area. Bounds is the full simulated space;
// Movement is the rectangle the player ship is clamped to near the bottom.
type World struct {
	Bounds   physics.Rect
	Movement physics.Rect
}

// Logical resolution. Rendering scales this to the actual terminal size;
// vertical units are sub-pixels (two per terminal row).
const (
	WorldWidth  = 120.0
	WorldHeight = 80.0
)

// DefaultWorld returns the standard play area.
func DefaultWorld() World {
	return World{
		Bounds: physics.Rect{
			Min: physics.Vec2{X: 0, Y: 0},
			Max: physics.Vec2{X: WorldWidth, Y: WorldHeight},
		},
		Movement: physics.Rect{
			Min: physics.Vec2{X: 3, Y: 58},
			Max: physics.Vec2{X: WorldWidth - 3, Y: WorldHeight - 3},
		},
	}
}

// PlayerStart returns the player's initial position.
func (w World) PlayerStart() physics.Vec2 {
	return physics.Vec2{
		X: (w.Movement.Min.X + w.Movement.Max.X) / 2,
		Y: w.Movement.Max.Y - 2,
	}
}
