package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/tmarek/voidrain/internal/draw"
	"github.com/tmarek/voidrain/internal/engine"
)

// hudState caches the latest UI notifications for overlay drawing.
type hudState struct {
	score     int
	health    int
	maxHealth int
	ammo      int
	maxAmmo   int
}

// drawOverlay writes the text layer for the current game phase on top of
// the rendered canvas.
func (g *Game) drawOverlay(w io.Writer) {
	termWidth := g.canvas.TerminalWidth()
	termHeight := g.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	switch g.engine.State() {
	case engine.StateMenu:
		drawMenuScreen(w, centerX, centerY)
	case engine.StatePlaying:
		drawHUD(w, g.hud, termWidth)
	case engine.StatePaused:
		drawHUD(w, g.hud, termWidth)
		drawCentered(w, centerX, centerY, "P A U S E D")
		drawCentered(w, centerX, centerY+2, "Press P to resume")
	case engine.StateGameOver:
		drawGameOverScreen(w, g.engine.FinalStats(), centerX, centerY)
	}
}

func drawCentered(w io.Writer, centerX, row int, s string) {
	draw.WriteAt(w, centerX-len(s)/2, row, s)
}

func drawMenuScreen(w io.Writer, centerX, centerY int) {
	drawCentered(w, centerX, centerY-3, "V O I D R A I N")
	drawCentered(w, centerX, centerY, "Press SPACE to Start")
	drawCentered(w, centerX, centerY+3,
		"A/D or Arrows to move, SPACE to shoot, P to pause, Q to quit")
	drawCentered(w, centerX, centerY+5,
		"Don't let them through: every enemy that slips past you hurts.")
}

func drawHUD(w io.Writer, hud hudState, termWidth int) {
	draw.WriteAt(w, 2, 1, fmt.Sprintf("Score: %d", hud.score))

	health := fmt.Sprintf("HP %s %d/%d", statBar(hud.health, hud.maxHealth, 10), hud.health, hud.maxHealth)
	drawCentered(w, termWidth/2, 1, health)

	ammo := fmt.Sprintf("Ammo: %d/%d", hud.ammo, hud.maxAmmo)
	draw.WriteAt(w, termWidth-len(ammo)-1, 1, ammo)
}

// statBar renders a fixed-width gauge like "██████░░░░".
func statBar(value, max, width int) string {
	if max <= 0 {
		return strings.Repeat("░", width)
	}
	filled := value * width / max
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func drawGameOverScreen(w io.Writer, stats *engine.Snapshot, centerX, centerY int) {
	drawCentered(w, centerX, centerY-4, "G A M E   O V E R")
	if stats != nil {
		drawCentered(w, centerX, centerY-1, fmt.Sprintf("Score: %d", stats.Score))
		drawCentered(w, centerX, centerY,
			fmt.Sprintf("Accuracy: %.0f%% (%d/%d shots)", stats.Accuracy*100, stats.Hits, stats.ShotsFired))
		drawCentered(w, centerX, centerY+1,
			fmt.Sprintf("Destroyed: %d   Escaped: %d", stats.EnemiesDestroyed, stats.EnemiesEscaped))
	}
	drawCentered(w, centerX, centerY+3, "Press SPACE to Restart, M for Menu")
}
