package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("invaders", 120, 2); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("invaders")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 120 {
		t.Errorf("HighScore() = %d, expected 120", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saves := []struct {
		game  string
		score int
		level int
	}{
		{"invaders", 100, 1},
		{"invaders", 50, 1},
		{"invaders", 200, 3},
		{"invaders", 200, 2},
		{"pong", 7, 1},
	}
	for _, s := range saves {
		if _, err := store.SaveScore(s.game, s.score, s.level); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("invaders", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 4 {
		t.Fatalf("TopScores() returned %d entries, expected 4", len(scores))
	}

	expected := []struct{ score, level int }{{200, 3}, {200, 2}, {100, 1}, {50, 1}}
	for i, e := range expected {
		if scores[i].Score != e.score || scores[i].Level != e.level {
			t.Errorf("scores[%d] = %d/L%d, expected %d/L%d", i, scores[i].Score, scores[i].Level, e.score, e.level)
		}
		if scores[i].GameID != "invaders" {
			t.Errorf("scores[%d].GameID = %q, expected invaders", i, scores[i].GameID)
		}
	}
}

func TestStoreSaveScoreClampsLevel(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore("invaders", 10, 0); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("invaders", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Level != 1 {
		t.Errorf("TopScores() = %+v, expected one entry at level 1", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 1; i <= 15; i++ {
		if _, err := store.SaveScore("invaders", i*10, 1); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	tests := []struct {
		limit    int
		expected int
	}{
		{5, 5},
		{0, 10},
		{-1, 10},
		{100, 15},
	}
	for _, tt := range tests {
		scores, err := store.TopScores("invaders", tt.limit)
		if err != nil {
			t.Fatalf("TopScores() failed: %v", err)
		}
		if len(scores) != tt.expected {
			t.Errorf("TopScores(limit %d) returned %d, expected %d", tt.limit, len(scores), tt.expected)
		}
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("invaders")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() with no scores = %d, expected 0", high)
	}

	store.SaveScore("invaders", 30, 1)
	store.SaveScore("invaders", 90, 2)
	store.SaveScore("invaders", 60, 1)

	high, err = store.HighScore("invaders")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 90 {
		t.Errorf("HighScore() = %d, expected 90", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("invaders", 100, 1)
	store.SaveScore("pong", 5, 1)
	store.SaveMatch(MatchResult{GameID: "pong", Score1: 10, Score2: 4, Winner: 1})

	if err := store.ClearScores("pong"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	pongScores, _ := store.TopScores("pong", 10)
	if len(pongScores) != 0 {
		t.Errorf("pong scores after clear = %d, expected 0", len(pongScores))
	}
	matches, _ := store.RecentMatches("pong", 10)
	if len(matches) != 0 {
		t.Errorf("pong matches after clear = %d, expected 0", len(matches))
	}
	invScores, _ := store.TopScores("invaders", 10)
	if len(invScores) != 1 {
		t.Errorf("invaders scores after clearing pong = %d, expected 1", len(invScores))
	}
}

func TestStoreMatches(t *testing.T) {
	store := openTestStore(t)

	results := []MatchResult{
		{GameID: "pong", Score1: 10, Score2: 3, Winner: 1, Duration: 95},
		{GameID: "pong_cpu", Score1: 6, Score2: 10, Winner: 2, Duration: 120},
		{GameID: "pong", Score1: 8, Score2: 10, Winner: 2, Duration: 140},
	}
	for _, r := range results {
		id, err := store.SaveMatch(r)
		if err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
		if id <= 0 {
			t.Errorf("SaveMatch() id = %d, expected positive", id)
		}
	}

	pong, err := store.RecentMatches("pong", 10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(pong) != 2 {
		t.Fatalf("RecentMatches(pong) returned %d, expected 2", len(pong))
	}
	// Newest first.
	if pong[0].Score1 != 8 || pong[0].Winner != 2 || pong[0].Duration != 140 {
		t.Errorf("RecentMatches(pong)[0] = %+v, expected the 8-10 match", pong[0])
	}

	all, err := store.RecentMatches("", 2)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("RecentMatches(all, 2) returned %d, expected 2", len(all))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GameStats("invaders")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("GameStats() with no scores = %+v", empty)
	}

	store.SaveScore("invaders", 100, 2)
	store.SaveScore("invaders", 300, 4)

	stats, err := store.GameStats("invaders")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 300 || stats.BestLevel != 4 {
		t.Errorf("HighScore/BestLevel = %d/%d, expected 300/4", stats.HighScore, stats.BestLevel)
	}
	if stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("AvgScore/TotalScore = %v/%d, expected 200/400", stats.AvgScore, stats.TotalScore)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.arcade/test.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".arcade", "test.db")); err != nil {
		t.Errorf("expected database under HOME: %v", err)
	}
}
