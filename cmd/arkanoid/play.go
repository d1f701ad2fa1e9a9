package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-arkanoid/internal/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/platform/tui"
	"github.com/vovakirdan/tui-arkanoid/internal/sound"
)

var (
	flagSounds string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a new game of Arkanoid.

Controls:
  Left/Right, A/D  - Move paddle
  Space            - Start, launch ball(s), skip level intro
  F                - Fire lasers (with the laser power-up)
  M / click [♪]    - Toggle sound
  P                - Pause
  Q/Ctrl+C         - Quit

Sound cues are read from <sounds>/bounce.wav, brick_break.wav, laser.wav
and game_over.wav. Missing files are played as silence.

Examples:
  arkanoid play
  arkanoid play --sounds ./assets --mute
  arkanoid play --seed 42 --log-file arkanoid.log --debug

While the game runs, logs go to --log-file. Without it, --debug writes
them to arkanoid-debug.log and other logs are discarded.`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagSounds, "sounds", "sounds", "Directory with sound cue WAV files")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closer, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if width < arkanoid.MinScreenW || height < arkanoid.MinScreenH {
		logger.Warn("terminal is smaller than the playfield minimum",
			"width", width, "height", height,
			"min_width", arkanoid.MinScreenW, "min_height", arkanoid.MinScreenH)
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	constants, err := config.Load()
	if err != nil {
		logger.Warn("invalid game constants, using defaults", "error", err)
		constants = config.DefaultArkanoidConfig()
	}

	game, err := arkanoid.New(constants)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	game.SetMuted(flagMute)

	player := sound.Load(flagSounds, logger)
	player.SetMuted(flagMute)

	// The alt screen owns the terminal while the game runs, so stderr logs
	// would be drawn over the playfield.
	if flagLogFile == "" {
		out, outCloser, outErr := tuiLogOutput(flagDebug, debugLogPath)
		if outErr != nil {
			logger.Warn("cannot open debug log, discarding logs", "path", debugLogPath, "error", outErr)
		}
		logger.SetOutput(out)
		defer outCloser.Close()
	}

	runErr := tui.Run(game, player, logger, cfg)
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closer.Close()
		os.Exit(1)
	}
}

// debugLogPath receives logs during play when --debug is set without --log-file.
const debugLogPath = "arkanoid-debug.log"

// tuiLogOutput returns where logs go while the game owns the terminal: a
// debug log file with --debug, otherwise nowhere. If the file cannot be
// opened, logs are discarded and the error is returned.
func tuiLogOutput(debug bool, path string) (io.Writer, io.Closer, error) {
	if !debug {
		return io.Discard, io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return io.Discard, io.NopCloser(nil), fmt.Errorf("cannot open debug log: %w", err)
	}
	return f, f, nil
}
