package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var inv InvadersConfig
	if err := yaml.Unmarshal(GetDefaultYAML("invaders"), &inv); err != nil {
		t.Fatalf("embedded invaders.yaml: %v", err)
	}
	if inv != DefaultInvadersConfig() {
		t.Errorf("embedded invaders.yaml = %+v, expected %+v", inv, DefaultInvadersConfig())
	}

	var pong PongConfig
	if err := yaml.Unmarshal(GetDefaultYAML("pong"), &pong); err != nil {
		t.Fatalf("embedded pong.yaml: %v", err)
	}
	if pong != DefaultPongConfig() {
		t.Errorf("embedded pong.yaml = %+v, expected %+v", pong, DefaultPongConfig())
	}

	if GetDefaultYAML("unknown") != nil {
		t.Error("GetDefaultYAML(unknown) should be nil")
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultInvadersConfig().Validate(); err != nil {
		t.Errorf("DefaultInvadersConfig().Validate() = %v", err)
	}
	if err := DefaultPongConfig().Validate(); err != nil {
		t.Errorf("DefaultPongConfig().Validate() = %v", err)
	}
}

func TestInvadersValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*InvadersConfig)
	}{
		{"empty formation rows", func(c *InvadersConfig) { c.Formation.Rows = 0 }},
		{"empty formation cols", func(c *InvadersConfig) { c.Formation.Cols = 0 }},
		{"zero bullet capacity", func(c *InvadersConfig) { c.Bullets.Capacity = 0 }},
		{"negative bullet capacity", func(c *InvadersConfig) { c.Bullets.Capacity = -3 }},
		{"zero bullet speed", func(c *InvadersConfig) { c.Bullets.Speed = 0 }},
		{"zero playfield", func(c *InvadersConfig) { c.Playfield.Width = 0 }},
		{"player wider than field", func(c *InvadersConfig) { c.Player.Width = 1000 }},
		{"zero flips per descent", func(c *InvadersConfig) { c.Formation.FlipsPerDescent = 0 }},
		{"negative points", func(c *InvadersConfig) { c.Scoring.PointsPerKill = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestPongValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PongConfig)
	}{
		{"zero win score", func(c *PongConfig) { c.Gameplay.WinScore = 0 }},
		{"zero ball size", func(c *PongConfig) { c.Ball.Size = 0 }},
		{"zero ball speed", func(c *PongConfig) { c.Ball.SpeedX = 0 }},
		{"paddle taller than field", func(c *PongConfig) { c.Paddles.Height = 500 }},
		{"skill out of range", func(c *PongConfig) { c.CPU.MaxSkill = 1.5 }},
		{"skill inverted", func(c *PongConfig) { c.CPU.MinSkill = 0.9 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPongConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestLoadInvadersCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invaders.yaml")
	data := []byte("bullets:\n  capacity: 9\nformation:\n  rows: 2\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders() error = %v", err)
	}
	if cfg.Bullets.Capacity != 9 {
		t.Errorf("Bullets.Capacity = %d, expected 9", cfg.Bullets.Capacity)
	}
	if cfg.Formation.Rows != 2 {
		t.Errorf("Formation.Rows = %d, expected 2", cfg.Formation.Rows)
	}
	// Keys missing from the file keep their defaults.
	if cfg.Formation.Cols != 11 {
		t.Errorf("Formation.Cols = %d, expected 11", cfg.Formation.Cols)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadPong(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadPong(missing) expected error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("ball: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPong(bad); err == nil {
		t.Error("LoadPong(bad yaml) expected error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("formation:\n  rows: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadInvaders(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("LoadInvaders(rows 0) = %v, expected ErrInvalid", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadPong("")
	if err != nil {
		t.Fatalf("LoadPong() error = %v", err)
	}
	if cfg != DefaultPongConfig() {
		t.Errorf("LoadPong() = %+v, expected defaults", cfg)
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "pong.yaml"), []byte("gameplay:\n  win_score: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPong("")
	if err != nil {
		t.Fatalf("LoadPong() error = %v", err)
	}
	if cfg.Gameplay.WinScore != 3 {
		t.Errorf("Gameplay.WinScore = %d, expected 3", cfg.Gameplay.WinScore)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", "", false},
		{"easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyInvadersPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		capacity int
		speed    float64
	}{
		{DifficultyEasy, 8, 10},
		{DifficultyNormal, 5, 8},
		{DifficultyHard, 3, 8},
		{DifficultyFixed, 5, 8},
		{"", 5, 8},
	}

	for _, tt := range tests {
		cfg := DefaultInvadersConfig()
		ApplyInvadersPreset(&cfg, tt.preset)
		if cfg.Bullets.Capacity != tt.capacity || cfg.Bullets.Speed != tt.speed {
			t.Errorf("preset %q: capacity/speed = %d/%v, expected %d/%v",
				tt.preset, cfg.Bullets.Capacity, cfg.Bullets.Speed, tt.capacity, tt.speed)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %q: Validate() = %v", tt.preset, err)
		}
	}
}

func TestApplyPongPreset(t *testing.T) {
	cfg := DefaultPongConfig()
	ApplyPongPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset = %+v, expected enabled at 0.7", cfg.Difficulty)
	}

	ApplyPongPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestDifficultyManager(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
	})

	tests := []struct {
		ticks    int
		expected float64
	}{
		{0, 0.2},
		{50, 0.6},
		{100, 1.0},
		{500, 1.0},
	}
	for _, tt := range tests {
		if got := dm.Level(0, tt.ticks); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("Level(0, %d) = %v, expected %v", tt.ticks, got, tt.expected)
		}
	}

	if got := dm.Lerp(0.5, 1.0, 0, 100); got != 1.0 {
		t.Errorf("Lerp() at max = %v, expected 1.0", got)
	}

	fixed := NewDifficultyManager(DifficultyConfig{Enabled: false, InitialLevel: 0.4})
	if fixed.IsEnabled() {
		t.Error("IsEnabled() = true for disabled config")
	}
	if got := fixed.Level(1000, 1000); got != 0.4 {
		t.Errorf("fixed Level() = %v, expected 0.4", got)
	}
}
