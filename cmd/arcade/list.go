package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long: `Shows every registered game with its play mode.

Modes:
  solo       - single player, best scores are kept
  2 players  - shared keyboard (W/S and 1/2), matches are kept
  vs CPU     - right paddle is computer-driven, matches are kept`,
	Run: runList,
}

// cpuOpponent is implemented by versus games that can field a computer player.
type cpuOpponent interface {
	CPU() bool
}

// gameRow is one line of the game list.
type gameRow struct {
	ID    string
	Title string
	Mode  string
}

// gameRows builds the list from the registry. Each game is created with
// default options to read its mode; a game whose config fails to load is
// still listed.
func gameRows() []gameRow {
	games := registry.List()
	rows := make([]gameRow, 0, len(games))

	for _, info := range games {
		row := gameRow{ID: info.ID, Title: info.Title, Mode: "solo"}

		g, err := registry.Create(info.ID, registry.Options{})
		switch {
		case err != nil:
			row.Mode = "unavailable"
		case registry.IsVersus(g):
			row.Mode = "2 players"
			if c, ok := g.(cpuOpponent); ok && c.CPU() {
				row.Mode = "vs CPU"
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func runList(_ *cobra.Command, _ []string) {
	rows := gameRows()
	if len(rows) == 0 {
		fmt.Println("No games available.")
		return
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("ID", "TITLE", "MODE")
	for _, r := range rows {
		t.Row(r.ID, r.Title, r.Mode)
	}

	fmt.Println(t.Render())
	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game, 'arcade scores <id>' for results.")
}
