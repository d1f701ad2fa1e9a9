// arkanoid is a brick-breaker game for the terminal.
//
// Usage:
//
//	arkanoid                 - Play the game
//	arkanoid play            - Play the game
//	arkanoid levels          - Show per-level difficulty parameters
//	arkanoid sim             - Run a headless autopilot game
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--log-file <path>  - Write logs to a file instead of stderr
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid",
	Short: "Arkanoid - break bricks in your terminal",
	Long: `Arkanoid is a terminal brick breaker with power-ups, lasers,
multi-ball and five levels of rising difficulty.

Available commands:
  play     - Play the game (default)
  levels   - Show per-level difficulty parameters
  sim      - Run a headless autopilot game and print its hash

Examples:
  arkanoid
  arkanoid play --seed 42 --mute
  arkanoid levels
  arkanoid sim --ticks 5000 --seed 7`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	addPlayFlags(rootCmd)
	addPlayFlags(playCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger builds the process logger. The returned closer releases the log
// file, if one was opened.
func newLogger() (*log.Logger, io.Closer, error) {
	var out io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "arkanoid",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}
