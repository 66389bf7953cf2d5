package entity

import "github.com/tmarek/voidrain/internal/physics"

// PlayerConfig holds the player ship tunables.
type PlayerConfig struct {
	MaxHealth     int
	MaxAmmo       int
	Speed         float64 // world units per second
	Radius        float64 // collision radius
	FireCooldown  float64 // minimum seconds between shots
	EscapePenalty int     // health lost per escaped enemy
}

// DefaultPlayerConfig returns the standard player ship.
func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		MaxHealth:     100,
		MaxAmmo:       50,
		Speed:         35,
		Radius:        1.6,
		FireCooldown:  0.22,
		EscapePenalty: 10,
	}
}

// Player is the session's scalar player state. It is not a pooled entity;
// there is exactly one per simulation and it never has an entity handle in
// the store's collections.
type Player struct {
	Health    int
	MaxHealth int
	Ammo      int
	MaxAmmo   int
	Score     int
	Pos       physics.Vec2
}

// NewPlayer creates a player with full health and ammo at the given position.
func NewPlayer(cfg PlayerConfig, start physics.Vec2) *Player {
	return &Player{
		Health:    cfg.MaxHealth,
		MaxHealth: cfg.MaxHealth,
		Ammo:      cfg.MaxAmmo,
		MaxAmmo:   cfg.MaxAmmo,
		Pos:       start,
	}
}

// Damage reduces health by amount, clamping at zero. Returns true when
// health reached zero.
func (p *Player) Damage(amount int) bool {
	p.Health -= amount
	if p.Health <= 0 {
		p.Health = 0
		return true
	}
	return false
}

// Heal increases health by amount, clamped to the maximum.
func (p *Player) Heal(amount int) {
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}

// AddAmmo increases ammo by amount, clamped to the maximum.
func (p *Player) AddAmmo(amount int) {
	p.Ammo += amount
	if p.Ammo > p.MaxAmmo {
		p.Ammo = p.MaxAmmo
	}
}
