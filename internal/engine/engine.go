// Package engine owns the simulation clock and the game state machine. Each
// Engine is one independent simulation instance; construct as many as
// needed (one per SSH session, one per test) and drive each from a single
// host frame loop.
package engine

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/tmarek/voidrain/internal/collision"
	"github.com/tmarek/voidrain/internal/entity"
	"github.com/tmarek/voidrain/internal/input"
	"github.com/tmarek/voidrain/internal/physics"
	"github.com/tmarek/voidrain/internal/sink"
	"github.com/tmarek/voidrain/internal/spawn"
)

// MaxDelta caps simulated time per tick so a suspended host doesn't replay
// a burst of missed frames as one giant step.
const MaxDelta = 1.0 / 30.0

// Config bundles the simulation tunables.
type Config struct {
	World  entity.World
	Player entity.PlayerConfig
	Spawn  spawn.Config
}

// DefaultConfig returns the standard game setup.
func DefaultConfig() Config {
	return Config{
		World:  entity.DefaultWorld(),
		Player: entity.DefaultPlayerConfig(),
		Spawn:  spawn.DefaultConfig(),
	}
}

// intent is the player's current per-tick input intent, updated from the
// action event stream.
type intent struct {
	left, right, up, down, shoot bool
}

// Engine drives one simulation. Not safe for concurrent use: all state
// mutation for a tick happens synchronously inside Tick, and the only yield
// point is between ticks.
type Engine struct {
	cfg      Config
	store    *entity.Store
	sched    *spawn.Scheduler
	resolver *collision.Resolver

	renderer  sink.Renderer
	audio     sink.Audio
	particles sink.Particles
	ui        sink.UI
	logger    *log.Logger

	state  State
	player *entity.Player
	intent intent

	sessionID    uuid.UUID
	lastTick     time.Time
	haveLast     bool
	elapsed      float64 // simulated seconds this session
	fireCooldown float64 // seconds until the next shot is allowed
	shieldTime   float64 // damage immunity seconds remaining
	stats        runningStats
	final        *Snapshot
}

// New creates an engine in the menu state. Sinks must be non-nil (use the
// sink.Nop* types for unused ports); logger may be nil.
func New(cfg Config, renderer sink.Renderer, audio sink.Audio, particles sink.Particles, ui sink.UI, logger *log.Logger) *Engine {
	store := entity.NewStore(cfg.World, renderer, logger)
	return &Engine{
		cfg:       cfg,
		store:     store,
		sched:     spawn.NewScheduler(store, cfg.Spawn, logger),
		resolver:  collision.NewResolver(store, cfg.Player.Radius, particles, audio, logger),
		renderer:  renderer,
		audio:     audio,
		particles: particles,
		ui:        ui,
		logger:    logger,
		state:     StateMenu,
	}
}

// State returns the current game phase.
func (e *Engine) State() State {
	return e.state
}

// Player returns the session player, or nil before the first game starts.
func (e *Engine) Player() *entity.Player {
	return e.player
}

// Store returns the engine's entity store.
func (e *Engine) Store() *entity.Store {
	return e.store
}

// Scheduler returns the spawn scheduler, for runtime tuning.
func (e *Engine) Scheduler() *spawn.Scheduler {
	return e.sched
}

// ShieldRemaining returns the damage-immunity seconds left, 0 when none.
func (e *Engine) ShieldRemaining() float64 {
	return e.shieldTime
}

// FinalStats returns the frozen game-over snapshot, or nil while no game
// has ended.
func (e *Engine) FinalStats() *Snapshot {
	return e.final
}

// Apply consumes one action event, updating the input intent and driving
// state transitions on press edges.
func (e *Engine) Apply(ev input.Event) {
	switch ev.Action {
	case input.ActionMoveLeft:
		e.intent.left = ev.Pressed
	case input.ActionMoveRight:
		e.intent.right = ev.Pressed
	case input.ActionMoveUp:
		e.intent.up = ev.Pressed
	case input.ActionMoveDown:
		e.intent.down = ev.Pressed
	case input.ActionShoot:
		e.intent.shoot = ev.Pressed
		if ev.Pressed && e.state != StatePlaying {
			e.confirm()
		}
	case input.ActionPause:
		if !ev.Pressed {
			return
		}
		switch e.state {
		case StatePlaying:
			e.Pause()
		case StatePaused:
			e.Resume()
		}
	case input.ActionConfirm:
		if ev.Pressed {
			e.confirm()
		}
	case input.ActionBack:
		if ev.Pressed && e.state == StateGameOver {
			e.ReturnToMenu()
		}
	}
}

// confirm starts or restarts a game from the menu or game-over screens.
func (e *Engine) confirm() {
	switch e.state {
	case StateMenu, StateGameOver:
		e.StartGame()
	}
}

// StartGame resets all player stats, clears every entity, resets spawn
// timers and begins ticking. Valid from any state.
func (e *Engine) StartGame() {
	e.store.ClearAll()
	e.sched.Reset()
	e.player = entity.NewPlayer(e.cfg.Player, e.cfg.World.PlayerStart())
	e.sessionID = uuid.New()
	e.elapsed = 0
	e.fireCooldown = 0
	e.shieldTime = 0
	e.stats = runningStats{}
	e.final = nil
	e.state = StatePlaying

	e.notifyScore()
	e.notifyHealth()
	e.notifyAmmo()
	if e.logger != nil {
		e.logger.Info("game started", "session", e.sessionID)
	}
}

// Pause freezes the simulation; rendering continues.
func (e *Engine) Pause() {
	if e.state == StatePlaying {
		e.state = StatePaused
	}
}

// Resume continues a paused game. Paused wall-time is never converted into
// simulated time: the clock re-bases on every tick in every state.
func (e *Engine) Resume() {
	if e.state == StatePaused {
		e.state = StatePlaying
	}
}

// ReturnToMenu leaves the game-over screen, dropping all entity state.
func (e *Engine) ReturnToMenu() {
	e.store.ClearAll()
	e.player = nil
	e.state = StateMenu
}

// Tick advances the simulation by one frame. The host calls this once per
// rendered frame in every state; entity state only advances while playing,
// but RenderFrame is signaled unconditionally so menu and pause overlays
// stay visible.
func (e *Engine) Tick(now time.Time) {
	var dt float64
	if e.haveLast {
		dt = now.Sub(e.lastTick).Seconds()
		if dt < 0 {
			dt = 0
		}
		if dt > MaxDelta {
			dt = MaxDelta
		}
	}
	e.lastTick = now
	e.haveLast = true

	if e.state == StatePlaying {
		e.step(dt)
	}

	sink.Guard(e.logger, "renderer", e.renderer.RenderFrame)
}

// step runs one simulated tick: spawn scheduling, player movement and
// shooting, position integration, escape penalties, then collision
// resolution. Entities spawned this tick join the live collections after
// integration, so they are never moved on their spawn tick.
func (e *Engine) step(dt float64) {
	e.elapsed += dt
	if e.shieldTime > 0 {
		e.shieldTime -= dt
		if e.shieldTime < 0 {
			e.shieldTime = 0
		}
	}

	e.sched.Advance(dt)
	e.movePlayer(dt)
	e.tryShoot(dt)

	e.store.UpdateProjectiles(dt)
	escaped := e.store.UpdateEnemies(dt)
	e.store.UpdatePowerUps(dt)
	e.store.Flush()

	for _, esc := range escaped {
		e.stats.enemiesEscaped++
		if e.logger != nil {
			e.logger.Debug("enemy escaped", "type", esc.Type)
		}
		e.damagePlayer(e.cfg.Player.EscapePenalty)
		if e.state != StatePlaying {
			return // died to the escape penalty this tick
		}
	}

	res := e.resolver.CheckAll(e.player.Pos)
	e.applyResult(res)
}

// movePlayer translates directional intent into a clamped position delta.
func (e *Engine) movePlayer(dt float64) {
	var dir physics.Vec2
	if e.intent.left {
		dir.X -= 1
	}
	if e.intent.right {
		dir.X += 1
	}
	if e.intent.up {
		dir.Y -= 1
	}
	if e.intent.down {
		dir.Y += 1
	}
	delta := dir.Scale(e.cfg.Player.Speed * dt)
	e.player.Pos = e.cfg.World.Movement.ClampPoint(e.player.Pos.Add(delta))
}

// tryShoot fires when the shoot intent is held, the cooldown has elapsed
// and ammo remains. Shooting dry or during cooldown is a silent no-op.
func (e *Engine) tryShoot(dt float64) {
	e.fireCooldown -= dt
	if e.fireCooldown < 0 {
		e.fireCooldown = 0
	}
	if !e.intent.shoot {
		return
	}
	if e.fireCooldown > 0 {
		return
	}
	if e.player.Ammo <= 0 {
		if e.logger != nil {
			e.logger.Debug("shoot with no ammo")
		}
		return
	}

	e.player.Ammo--
	e.fireCooldown = e.cfg.Player.FireCooldown
	e.stats.shotsFired++

	nose := e.player.Pos.Add(physics.Vec2{Y: -(e.cfg.Player.Radius + 0.5)})
	e.store.CreateProjectile(nose)

	e.notifyAmmo()
	e.playSound(sink.SoundShoot)
}

// applyResult folds the collision outcome into player stats, in the same
// fixed order the passes ran.
func (e *Engine) applyResult(res collision.Result) {
	for _, hit := range res.ProjectileHits {
		e.stats.hits++
		if hit.Destroyed {
			e.stats.enemiesDestroyed++
			e.player.Score += hit.Score
			e.notifyScore()
		}
	}

	for _, col := range res.PlayerCollisions {
		e.playSound(sink.SoundHurt)
		e.damagePlayer(col.Damage)
		if e.state != StatePlaying {
			return
		}
	}

	for _, c := range res.PowerUpCollections {
		e.applyPowerUp(c)
	}
}

// damagePlayer applies damage unless a shield window is active, and
// transitions to game over when health reaches zero.
func (e *Engine) damagePlayer(amount int) {
	if e.shieldTime > 0 {
		return
	}
	dead := e.player.Damage(amount)
	e.notifyHealth()
	if dead {
		e.gameOver()
	}
}

func (e *Engine) applyPowerUp(c collision.Collection) {
	switch c.Type {
	case entity.PowerUpAmmo:
		e.player.AddAmmo(int(c.Magnitude))
		e.notifyAmmo()
	case entity.PowerUpHealth:
		e.player.Heal(int(c.Magnitude))
		e.notifyHealth()
	case entity.PowerUpShield:
		e.shieldTime = c.Magnitude
	}
}

// gameOver freezes the final stats snapshot and stops entity updates until
// a restart or return command.
func (e *Engine) gameOver() {
	e.state = StateGameOver
	e.final = &Snapshot{
		SessionID:        e.sessionID,
		Score:            e.player.Score,
		ShotsFired:       e.stats.shotsFired,
		Hits:             e.stats.hits,
		Accuracy:         e.stats.accuracy(),
		EnemiesDestroyed: e.stats.enemiesDestroyed,
		EnemiesEscaped:   e.stats.enemiesEscaped,
		Elapsed:          time.Duration(e.elapsed * float64(time.Second)),
	}
	e.playSound(sink.SoundGameOver)
	if e.logger != nil {
		e.logger.Info("game over",
			"session", e.sessionID,
			"score", e.final.Score,
			"accuracy", e.final.Accuracy,
			"destroyed", e.final.EnemiesDestroyed,
			"escaped", e.final.EnemiesEscaped)
	}
}

func (e *Engine) playSound(s sink.Sound) {
	sink.Guard(e.logger, "audio", func() {
		e.audio.PlaySound(s, sink.PlayOpts{})
	})
}

func (e *Engine) notifyScore() {
	sink.Guard(e.logger, "ui", func() { e.ui.ScoreChanged(e.player.Score) })
}

func (e *Engine) notifyHealth() {
	sink.Guard(e.logger, "ui", func() { e.ui.HealthChanged(e.player.Health, e.player.MaxHealth) })
}

func (e *Engine) notifyAmmo() {
	sink.Guard(e.logger, "ui", func() { e.ui.AmmoChanged(e.player.Ammo, e.player.MaxAmmo) })
}
