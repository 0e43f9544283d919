package pong

import (
	"fmt"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	renderSnapshot(dst, g.Snapshot())
}

func renderSnapshot(dst *core.Screen, s Snapshot) {
	vp := core.NewViewport(s.FieldW, s.FieldH, dst.Width(), dst.Height(), 1)

	// Draw center line (net)
	centerX := dst.Width() / 2
	for y := vp.Y; y < dst.Height(); y += 2 {
		dst.SetColored(centerX, y, NetChar, core.ColorGray)
	}

	for _, p := range s.Paddles {
		vp.Fill(dst, p, PaddleChar, s.Color)
	}
	vp.Fill(dst, s.Ball, BallChar, s.Color)

	// Draw scores
	dst.DrawText(centerX-5, 0, fmt.Sprintf("%d", s.Scores[SideLeft]))
	dst.DrawText(centerX+4, 0, fmt.Sprintf("%d", s.Scores[SideRight]))

	// Draw labels
	right := "P2"
	if s.CPU {
		right = "CPU"
	}
	dst.DrawText(1, 0, "P1")
	dst.DrawText(dst.Width()-len(right)-1, 0, right)

	switch {
	case s.Phase == core.PhaseIdle:
		drawCenteredMessage(dst, "PONG", "Press ENTER to start")
	case s.Phase == core.PhaseGameOver:
		drawCenteredMessage(dst, winnerText(s), fmt.Sprintf("%d - %d  |  Press R to restart", s.Scores[SideLeft], s.Scores[SideRight]))
	case s.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func winnerText(s Snapshot) string {
	switch {
	case s.Winner == core.Player1:
		return "P1 WINS!"
	case s.CPU:
		return "CPU WINS!"
	default:
		return "P2 WINS!"
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
