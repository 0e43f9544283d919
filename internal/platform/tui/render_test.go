package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

func TestScreenRendererPlainProfile(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "SCORE 10")
	s.DrawTextColored(2, 1, "▲▲", core.ColorGreen)
	s.SetColored(11, 2, '▼', core.Color(200))

	r := NewScreenRenderer(lipgloss.NewRenderer(io.Discard))
	if got, expected := r.Render(s), s.String(); got != expected {
		t.Errorf("Render() = %q, expected %q", got, expected)
	}
}
