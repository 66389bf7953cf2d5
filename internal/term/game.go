// Package term is the terminal frontend: it implements the simulation's
// rendering, particle and UI ports on top of an ANSI half-block canvas and
// drives the host frame loop.
package term

import (
	"bufio"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tmarek/voidrain/internal/draw"
	"github.com/tmarek/voidrain/internal/engine"
	"github.com/tmarek/voidrain/internal/entity"
	"github.com/tmarek/voidrain/internal/input"
	"github.com/tmarek/voidrain/internal/physics"
	"github.com/tmarek/voidrain/internal/sink"
)

const (
	targetFPS       = 60
	targetFrameTime = time.Second / targetFPS

	// Shield blink rate while the immunity window runs out.
	shieldBlinkHz = 6.0
)

// Options configures a Game.
type Options struct {
	// TermSize reports the terminal dimensions; defaults to probing stdout.
	TermSize draw.TermSizeFunc
	// Audio receives sound requests; defaults to the silent sink.
	Audio sink.Audio
	// Logger may be nil.
	Logger *log.Logger
}

// visualState is one renderable entity as last reported by the simulation.
type visualState struct {
	visual sink.Visual
	pos    physics.Vec2
}

// Game couples one Engine to one terminal session. It implements the
// Renderer, Particles and UI ports; the Engine writes into them and the
// frame loop reads them back out onto the screen.
type Game struct {
	engine    *engine.Engine
	stream    *input.Stream
	out       *bufio.Writer
	termSize  draw.TermSizeFunc
	canvas    *draw.Canvas
	logger    *log.Logger
	visuals   map[sink.Handle]*visualState
	particles *particleField
	hud       hudState
	running   bool
	lastFrame time.Time
}

// New creates a game session reading raw input from r and drawing to w.
func New(r *bufio.Reader, w io.Writer, opts Options) *Game {
	if opts.TermSize == nil {
		opts.TermSize = draw.StdoutSize
	}
	audio := opts.Audio
	if audio == nil {
		audio = sink.NopAudio{}
	}

	g := &Game{
		stream:    input.StartStream(r),
		out:       bufio.NewWriterSize(w, 16*1024),
		termSize:  opts.TermSize,
		logger:    opts.Logger,
		visuals:   make(map[sink.Handle]*visualState),
		particles: newParticleField(rand.New(rand.NewSource(time.Now().UnixNano()))),
		running:   true,
	}
	g.canvas = draw.NewCanvas(80, 24, entity.WorldWidth, entity.WorldHeight)
	g.engine = engine.New(engine.DefaultConfig(), g, audio, g, g, opts.Logger)
	return g
}

// Engine returns the session's simulation instance.
func (g *Game) Engine() *engine.Engine {
	return g.engine
}

// Run drives the Input → Tick → Draw cycle until the player quits or the
// input stream closes. The engine signals drawing itself via RenderFrame at
// the end of every tick.
func (g *Game) Run() error {
	draw.HideCursor(g.out)
	defer func() {
		draw.ClearScreen(g.out)
		draw.ShowCursor(g.out)
		g.out.Flush()
	}()

	for g.running {
		frameStart := time.Now()

		for _, ev := range g.stream.Poll(frameStart) {
			if ev.Action == input.ActionQuit && ev.Pressed {
				g.running = false
				continue
			}
			g.engine.Apply(ev)
		}
		if g.stream.Closed() {
			g.running = false
		}

		if err := g.resizeCanvas(); err != nil {
			return err
		}

		g.engine.Tick(frameStart)

		if elapsed := time.Since(frameStart); elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}
	return nil
}

// resizeCanvas adapts the canvas to the current terminal size, reserving
// the top row for the HUD.
func (g *Game) resizeCanvas() error {
	width, height, err := g.termSize()
	if err != nil {
		return err
	}
	if height > 2 {
		height -= 2
	}
	if width < 10 {
		width = 10
	}
	g.canvas.Resize(width, height)
	g.canvas.SetOffset(0, 1)
	return nil
}

// AddEntity implements sink.Renderer.
func (g *Game) AddEntity(h sink.Handle, v sink.Visual) {
	g.visuals[h] = &visualState{visual: v}
}

// RemoveEntity implements sink.Renderer.
func (g *Game) RemoveEntity(h sink.Handle) {
	delete(g.visuals, h)
}

// UpdateTransform implements sink.Renderer.
func (g *Game) UpdateTransform(h sink.Handle, pos physics.Vec2) {
	if v, ok := g.visuals[h]; ok {
		v.pos = pos
	}
}

// RenderFrame implements sink.Renderer: composites entities, the player
// ship, particles and the text overlay into one frame.
func (g *Game) RenderFrame() {
	now := time.Now()
	var dt float64
	if !g.lastFrame.IsZero() {
		dt = now.Sub(g.lastFrame).Seconds()
	}
	g.lastFrame = now

	draw.ClearScreen(g.out)
	g.canvas.Clear()

	switch g.engine.State() {
	case engine.StatePlaying, engine.StatePaused:
		for _, v := range g.visuals {
			g.drawVisual(v)
		}
		g.drawPlayer()
	case engine.StateMenu:
		g.particles.Clear()
	}

	if g.engine.State() != engine.StatePaused {
		g.particles.Update(dt)
	}
	g.particles.Draw(g.canvas)

	g.canvas.Render(g.out)
	g.drawOverlay(g.out)
	if err := g.out.Flush(); err != nil && g.logger != nil {
		g.logger.Debug("frame flush failed", "err", err)
	}
}

func (g *Game) drawVisual(v *visualState) {
	switch v.visual.Shape {
	case sink.ShapeDot:
		// Short vertical streak reads better than a single pixel.
		g.canvas.Set(v.pos.X, v.pos.Y)
		g.canvas.Set(v.pos.X, v.pos.Y+0.8)
	case sink.ShapeBlob:
		g.canvas.DrawCircle(v.pos.X, v.pos.Y, v.visual.Radius)
		g.canvas.Set(v.pos.X, v.pos.Y)
	case sink.ShapeRing:
		g.canvas.DrawCircle(v.pos.X, v.pos.Y, v.visual.Radius)
	default:
		g.canvas.Set(v.pos.X, v.pos.Y)
	}
}

// drawPlayer renders the ship as an upward triangle, blinking while the
// shield window runs and ringed while it is active.
func (g *Game) drawPlayer() {
	player := g.engine.Player()
	if player == nil {
		return
	}

	shield := g.engine.ShieldRemaining()
	if shield > 0 {
		g.canvas.DrawCircle(player.Pos.X, player.Pos.Y, 3.2)
		if !blinkOn(shield, shieldBlinkHz) {
			return
		}
	}

	size := 2.0
	g.canvas.DrawPolygon([]draw.Point{
		{X: player.Pos.X, Y: player.Pos.Y - size},
		{X: player.Pos.X - size, Y: player.Pos.Y + size},
		{X: player.Pos.X + size, Y: player.Pos.Y + size},
	}, true)
}

// blinkOn returns whether a blinking element is visible this frame.
func blinkOn(remaining, frequency float64) bool {
	return int(math.Floor(remaining*frequency))%2 == 0
}

// SpawnEffect implements sink.Particles.
func (g *Game) SpawnEffect(kind sink.EffectKind, pos physics.Vec2) {
	g.particles.Spawn(kind, pos)
}

// ScoreChanged implements sink.UI.
func (g *Game) ScoreChanged(score int) {
	g.hud.score = score
}

// HealthChanged implements sink.UI.
func (g *Game) HealthChanged(health, max int) {
	g.hud.health = health
	g.hud.maxHealth = max
}

// AmmoChanged implements sink.UI.
func (g *Game) AmmoChanged(ammo, max int) {
	g.hud.ammo = ammo
	g.hud.maxAmmo = max
}

var (
	_ sink.Renderer  = (*Game)(nil)
	_ sink.Particles = (*Game)(nil)
	_ sink.UI        = (*Game)(nil)
)
