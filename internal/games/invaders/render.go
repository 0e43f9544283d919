package invaders

import (
	"fmt"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar = '▲'
	EnemyChar  = '▼'
	BulletChar = '│'
)

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	renderSnapshot(dst, g.Snapshot())
}

func renderSnapshot(dst *core.Screen, s Snapshot) {
	// HUD
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", s.Score), core.ColorBrightWhite)
	dst.DrawTextCentered(0, fmt.Sprintf("Enemies: %d/%d", s.Alive, s.NumEnemies))
	levelText := fmt.Sprintf("Level: %d", s.Level)
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	vp := core.NewViewport(s.FieldW, s.FieldH, dst.Width(), dst.Height(), 1)

	for _, e := range s.Enemies {
		vp.Fill(dst, e, EnemyChar, core.ColorGreen)
	}
	for _, b := range s.Bullets {
		vp.Fill(dst, b, BulletChar, core.ColorBrightYellow)
	}
	vp.Fill(dst, s.Player, PlayerChar, core.ColorBrightCyan)

	switch {
	case s.Phase == core.PhaseIdle:
		drawMessage(dst, "INVADERS", "Press ENTER to start")
	case s.Paused:
		drawMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawMessage draws a boxed two-line message in the middle of the screen.
func drawMessage(dst *core.Screen, title, hint string) {
	w := max(len(title), len([]rune(hint))) + 4
	h := 4
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2

	dst.FillRect(x, y, w, h, ' ', core.ColorDefault)
	dst.DrawBox(x, y, w, h)
	dst.DrawTextCentered(y+1, title)
	dst.DrawTextCentered(y+2, hint)
}
