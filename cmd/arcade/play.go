package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-arcade/internal/assets"
	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/platform/audio"
	"github.com/vovakirdan/retro-arcade/internal/platform/tui"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagAssets     string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Enter        - Start
  A/D, ←/→     - Move ship (invaders)
  W/S, ↑/↓     - Move left paddle (pong)
  1/2          - Move right paddle (pong)
  Space        - Fire
  C            - New color (pong)
  P            - Pause
  R            - Restart after game over
  B/Esc        - Leave the game
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More bullets and faster shots, slow CPU progression
  normal - Config values, CPU starts at 30%
  hard   - Fewer bullets, CPU starts at 70%
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play invaders
  arcade play invaders --difficulty easy
  arcade play pong_cpu --difficulty hard
  arcade play pong --config ./my-pong.yaml
  arcade play invaders --assets ./assets --mute`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags shared by commands that launch games.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagAssets, "assets", "~/.arcade/assets", "Directory with optional media (music.mp3)")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable music and sound effects")
}

func gameOptions() (registry.Options, error) {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return registry.Options{}, err
	}
	return registry.Options{ConfigPath: flagConfig, Difficulty: flagDifficulty}, nil
}

// startAudio opens the speaker and starts the music track if one exists.
// Every failure is logged and leaves the game silent.
func startAudio(logger *log.Logger) *audio.Player {
	if flagMute {
		return nil
	}

	player := audio.New()
	if err := player.Init(); err != nil {
		logger.Warn("audio disabled", "error", err)
		return nil
	}

	data, err := assets.NewLoader(flagAssets).Load(assets.Music)
	switch {
	case errors.Is(err, assets.ErrUnavailable):
		logger.Info("no background music", "reason", err)
	case err != nil:
		logger.Warn("could not load music", "error", err)
	default:
		if err := player.PlayMusic(data); err != nil {
			logger.Warn("could not play music", "error", err)
		}
	}
	return player
}

// newEnv wires the shared collaborators of an interactive session.
func newEnv(logger *log.Logger) (tui.Env, func()) {
	env := tui.Env{Logger: logger}

	store := openStore(logger)
	if store != nil {
		env.Store = store
	}

	player := startAudio(logger)
	if player != nil {
		env.Sounds = player
	}

	return env, func() {
		player.Close()
		if store != nil {
			store.Close()
		}
	}
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	opts, err := gameOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := mustLogger(true)
	env, cleanup := newEnv(logger)

	logger.Info("starting game", "game", gameID, "difficulty", opts.Difficulty, "fps", flagFPS)
	runErr := tui.Run(game, env, runtimeConfig())

	cleanup()
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
