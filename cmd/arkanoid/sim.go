package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

var flagTicks int

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless autopilot game",
	Long: `Plays the game without a terminal using a simple autopilot and prints
the final state with a hash of the last snapshot. Two runs with the same
seed and tick count print the same hash.

Examples:
  arkanoid sim
  arkanoid sim --ticks 20000 --seed 42`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 10000, "Number of simulation ticks")
}

func runSim(cmd *cobra.Command, args []string) {
	logger, closer, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	constants, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	game, err := arkanoid.New(constants)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	game.Reset(cfg)

	pilot := arkanoid.NewAutopilot()
	counts := make(map[core.Event]int)
	phase := game.Phase()
	ticks := 0
	for ; ticks < flagTicks; ticks++ {
		res := game.Step(pilot.Next(game.Snapshot()))
		for _, e := range res.Events {
			counts[e]++
		}
		if p := game.Phase(); p != phase {
			logger.Debug("phase changed", "tick", ticks, "from", phase, "to", p, "score", res.State.Score)
			phase = p
		}
		if phase == arkanoid.PhaseGameOver || phase == arkanoid.PhaseWin {
			ticks++
			break
		}
	}

	snap := game.Snapshot()
	hash, err := snap.Hash()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	st := game.State()
	fmt.Printf("seed:   %d\n", seed)
	fmt.Printf("ticks:  %s\n", humanize.Comma(int64(ticks)))
	fmt.Printf("state:  %s\n", st.Phase)
	fmt.Printf("score:  %s\n", humanize.Comma(int64(st.Score)))
	fmt.Printf("level:  %d\n", st.Level)
	fmt.Printf("lives:  %d\n", st.Lives)
	for _, e := range core.Events {
		fmt.Printf("%-7s %d\n", e.String()+":", counts[e])
	}
	fmt.Printf("hash:   %016x\n", hash)
}
