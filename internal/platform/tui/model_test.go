package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/platform/audio"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

// scriptedGame replays queued step results and records the inputs it saw.
type scriptedGame struct {
	id      string
	results []core.StepResult
	state   core.GameState
	inputs  []core.InputFrame
	resets  int
}

func (g *scriptedGame) ID() string { return g.id }
func (g *scriptedGame) Title() string { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *scriptedGame) Render(dst *core.Screen) { dst.DrawText(0, 0, g.id) }
func (g *scriptedGame) State() core.GameState { return g.state }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	if len(g.results) == 0 {
		return core.StepResult{State: g.state}
	}
	r := g.results[0]
	g.results = g.results[1:]
	g.state = r.State
	return r
}

type scriptedVersus struct {
	scriptedGame
}

func (*scriptedVersus) Versus() bool { return true }

type recordingStore struct {
	scores  []storage.ScoreEntry
	matches []storage.MatchResult
}

func (s *recordingStore) SaveScore(gameID string, score, level int) (int64, error) {
	s.scores = append(s.scores, storage.ScoreEntry{GameID: gameID, Score: score, Level: level})
	return int64(len(s.scores)), nil
}

func (s *recordingStore) SaveMatch(result storage.MatchResult) (int64, error) {
	s.matches = append(s.matches, result)
	return int64(len(s.matches)), nil
}

type recordingSounds struct {
	effects []audio.Effect
	paused  []bool
}

func (s *recordingSounds) Play(e audio.Effect) { s.effects = append(s.effects, e) }
func (s *recordingSounds) SetMusicPaused(paused bool) { s.paused = append(s.paused, paused) }

func testModel(t *testing.T, game registry.Game) (GameModel, *recordingStore, *recordingSounds) {
	t.Helper()

	store := &recordingStore{}
	sounds := &recordingSounds{}
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}

	m := NewGameModel(game, Env{Sounds: sounds}, cfg)
	m.results = store

	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time {
		clock = clock.Add(30 * time.Second)
		return clock
	}
	return m, store, sounds
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected GameModel", next)
	}
	return gm
}

func TestGameModelForwardsInput(t *testing.T) {
	game := &scriptedGame{id: "invaders"}
	m, _, _ := testModel(t, game)

	m = update(t, m, runeKey('a'))
	m = update(t, m, TickMsg{ID: m.tickID})
	m = update(t, m, TickMsg{ID: m.tickID})

	if len(game.inputs) != 2 {
		t.Fatalf("Step() called %d times, expected 2", len(game.inputs))
	}
	if !game.inputs[0].Pressed(core.ActionLeft) {
		t.Error("first tick: Pressed(Left) = false, expected true")
	}
	if game.inputs[1].Pressed(core.ActionLeft) || !game.inputs[1].Held(core.ActionLeft) {
		t.Error("second tick: expected Left held but not pressed")
	}
}

func TestGameModelDropsForeignTicks(t *testing.T) {
	game := &scriptedGame{id: "invaders"}
	m, _, _ := testModel(t, game)

	m = update(t, m, TickMsg{ID: m.tickID + 1000})

	if len(game.inputs) != 0 {
		t.Errorf("Step() called %d times for a foreign tick, expected 0", len(game.inputs))
	}
}

func TestGameModelSavesScoreOnLeave(t *testing.T) {
	game := &scriptedGame{
		id: "invaders",
		results: []core.StepResult{{
			State:  core.GameState{Phase: core.PhasePlaying, Score: 120, Level: 2},
			Events: []core.Event{{Kind: core.EventEnemyKilled}, {Kind: core.EventLevelAdvanced, Level: 2}},
		}},
	}
	m, store, sounds := testModel(t, game)

	m = update(t, m, TickMsg{ID: m.tickID})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if !m.BackToMenu() {
		t.Error("BackToMenu() = false, expected true")
	}
	if len(store.scores) != 1 {
		t.Fatalf("saved %d scores, expected 1", len(store.scores))
	}
	if got := store.scores[0]; got.Score != 120 || got.Level != 2 || got.GameID != "invaders" {
		t.Errorf("saved score = %+v, expected invaders 120 at level 2", got)
	}

	expected := []audio.Effect{audio.EffectKill, audio.EffectLevel}
	if len(sounds.effects) != len(expected) {
		t.Fatalf("effects = %v, expected %v", sounds.effects, expected)
	}
	for i := range expected {
		if sounds.effects[i] != expected[i] {
			t.Errorf("effects[%d] = %v, expected %v", i, sounds.effects[i], expected[i])
		}
	}

	// Leaving again must not duplicate the row.
	m = update(t, m, runeKey('q'))
	if len(store.scores) != 1 {
		t.Errorf("saved %d scores after second leave, expected 1", len(store.scores))
	}
}

func TestGameModelSkipsZeroScore(t *testing.T) {
	game := &scriptedGame{id: "invaders"}
	m, store, _ := testModel(t, game)

	m = update(t, m, TickMsg{ID: m.tickID})
	m = update(t, m, runeKey('q'))

	if !m.IsQuitting() {
		t.Error("IsQuitting() = false, expected true")
	}
	if len(store.scores) != 0 {
		t.Errorf("saved %d scores, expected 0", len(store.scores))
	}
}

func TestGameModelSavesMatchOnGameOver(t *testing.T) {
	game := &scriptedVersus{scriptedGame{
		id: "pong",
		results: []core.StepResult{
			{
				State:  core.GameState{Phase: core.PhasePlaying, Level: 1},
				Events: []core.Event{{Kind: core.EventPhaseChanged, From: core.PhaseIdle, To: core.PhasePlaying}},
			},
			{
				State: core.GameState{Phase: core.PhaseGameOver, Score: 10, Level: 1, Winner: core.Player1, Scores: [2]int{10, 4}},
				Events: []core.Event{
					{Kind: core.EventPointScored, By: core.Player1},
					{Kind: core.EventPhaseChanged, From: core.PhasePlaying, To: core.PhaseGameOver},
				},
			},
		},
	}}
	m, store, sounds := testModel(t, game)

	m = update(t, m, TickMsg{ID: m.tickID})
	m = update(t, m, TickMsg{ID: m.tickID})
	m = update(t, m, runeKey('q'))

	if len(store.matches) != 1 {
		t.Fatalf("saved %d matches, expected 1", len(store.matches))
	}
	got := store.matches[0]
	if got.GameID != "pong" || got.Score1 != 10 || got.Score2 != 4 || got.Winner != 1 {
		t.Errorf("saved match = %+v, expected pong 10-4 won by 1", got)
	}
	if got.Duration != 30 {
		t.Errorf("match duration = %d, expected 30", got.Duration)
	}
	if len(store.scores) != 0 {
		t.Errorf("saved %d scores for a versus game, expected 0", len(store.scores))
	}
	if n := len(sounds.effects); n != 2 || sounds.effects[n-1] != audio.EffectGameOver {
		t.Errorf("effects = %v, expected point then game over", sounds.effects)
	}
}

func TestGameModelPausesMusic(t *testing.T) {
	game := &scriptedGame{
		id: "invaders",
		results: []core.StepResult{
			{State: core.GameState{Phase: core.PhasePlaying, Paused: true}},
			{State: core.GameState{Phase: core.PhasePlaying, Paused: true}},
			{State: core.GameState{Phase: core.PhasePlaying}},
		},
	}
	m, _, sounds := testModel(t, game)

	for range 3 {
		m = update(t, m, TickMsg{ID: m.tickID})
	}

	if len(sounds.paused) != 2 || !sounds.paused[0] || sounds.paused[1] {
		t.Errorf("SetMusicPaused calls = %v, expected [true false]", sounds.paused)
	}
}

func TestGameModelViewAddsHelpLine(t *testing.T) {
	game := &scriptedGame{id: "invaders"}
	m, _, _ := testModel(t, game)

	if m.screen.Height() != 9 {
		t.Errorf("screen height = %d, expected 9", m.screen.Height())
	}
	if m.View() == "" {
		t.Error("View() is empty")
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if m.screen.Width() != 60 || m.screen.Height() != 19 {
		t.Errorf("screen = %dx%d after resize, expected 60x19", m.screen.Width(), m.screen.Height())
	}
}
