package entity

import "fmt"

// EnemyType selects an enemy archetype. The set is closed; configs live in a
// table indexed by type and validated at package init.
type EnemyType int

const (
	EnemyBasic EnemyType = iota
	EnemyFast
	EnemyHeavy
	enemyTypeCount
)

// EnemyTypes lists every valid enemy type, in table order.
var EnemyTypes = [...]EnemyType{EnemyBasic, EnemyFast, EnemyHeavy}

func (t EnemyType) String() string {
	switch t {
	case EnemyBasic:
		return "basic"
	case EnemyFast:
		return "fast"
	case EnemyHeavy:
		return "heavy"
	default:
		return fmt.Sprintf("EnemyType(%d)", int(t))
	}
}

// EnemyConfig is the immutable per-type configuration.
type EnemyConfig struct {
	Health        int
	Speed         float64 // world units per second, straight down
	Radius        float64 // collision radius
	Score         int     // awarded once on destruction
	ContactDamage int     // inflicted on the player on contact
}

var enemyConfigs = [enemyTypeCount]EnemyConfig{
	EnemyBasic: {Health: 20, Speed: 8, Radius: 1.8, Score: 100, ContactDamage: 10},
	EnemyFast:  {Health: 10, Speed: 14, Radius: 1.4, Score: 150, ContactDamage: 15},
	EnemyHeavy: {Health: 50, Speed: 5, Radius: 2.6, Score: 300, ContactDamage: 25},
}

// Config returns the type's configuration. An out-of-range type is a
// programming defect and panics.
func (t EnemyType) Config() EnemyConfig {
	if t < 0 || t >= enemyTypeCount {
		panic(fmt.Sprintf("entity: unknown enemy type %d", int(t)))
	}
	return enemyConfigs[t]
}

// PowerUpType selects a power-up archetype.
type PowerUpType int

const (
	PowerUpAmmo PowerUpType = iota
	PowerUpHealth
	PowerUpShield
	powerUpTypeCount
)

// PowerUpTypes lists every valid power-up type, in table order.
var PowerUpTypes = [...]PowerUpType{PowerUpAmmo, PowerUpHealth, PowerUpShield}

func (t PowerUpType) String() string {
	switch t {
	case PowerUpAmmo:
		return "ammo"
	case PowerUpHealth:
		return "health"
	case PowerUpShield:
		return "shield"
	default:
		return fmt.Sprintf("PowerUpType(%d)", int(t))
	}
}

// PowerUpConfig is the immutable per-type configuration. Magnitude is the
// effect size: rounds of ammo, points of health, or seconds of shield.
type PowerUpConfig struct {
	Magnitude float64
	Speed     float64 // fall speed, world units per second
	Radius    float64
	Lifetime  float64 // seconds before despawn
}

var powerUpConfigs = [powerUpTypeCount]PowerUpConfig{
	PowerUpAmmo:   {Magnitude: 15, Speed: 6, Radius: 1.4, Lifetime: 12},
	PowerUpHealth: {Magnitude: 25, Speed: 6, Radius: 1.4, Lifetime: 12},
	PowerUpShield: {Magnitude: 6, Speed: 6, Radius: 1.4, Lifetime: 12},
}

// Config returns the type's configuration. An out-of-range type is a
// programming defect and panics.
func (t PowerUpType) Config() PowerUpConfig {
	if t < 0 || t >= powerUpTypeCount {
		panic(fmt.Sprintf("entity: unknown power-up type %d", int(t)))
	}
	return powerUpConfigs[t]
}

// ProjectileConfig holds the defaults merged into new projectiles.
type ProjectileConfig struct {
	Speed    float64 // world units per second, straight up
	Damage   int
	Lifetime float64 // seconds
	Radius   float64
}

// DefaultProjectileConfig returns the standard player projectile.
func DefaultProjectileConfig() ProjectileConfig {
	return ProjectileConfig{Speed: 40, Damage: 10, Lifetime: 2.5, Radius: 0.6}
}

func init() {
	// Config tables are closed; a zero entry means someone added a type
	// without adding its configuration.
	for _, t := range EnemyTypes {
		if enemyConfigs[t].Health <= 0 || enemyConfigs[t].Radius <= 0 {
			panic(fmt.Sprintf("entity: incomplete config for enemy type %s", t))
		}
	}
	for _, t := range PowerUpTypes {
		if powerUpConfigs[t].Radius <= 0 || powerUpConfigs[t].Lifetime <= 0 {
			panic(fmt.Sprintf("entity: incomplete config for power-up type %s", t))
		}
	}
}
