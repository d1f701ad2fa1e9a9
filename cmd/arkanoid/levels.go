package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show per-level difficulty parameters",
	Long:  `Prints brick rows, gap chance, power-up drop chance, ball speed and the power-up pool for every level.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	constants, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	dm := config.NewDifficultyManager(constants)

	fmt.Printf("  %-5s  %-4s  %-4s  %-5s  %-5s  %s\n", "Level", "Rows", "Gaps", "Drop", "Speed", "Power-ups")
	fmt.Printf("  %-5s  %-4s  %-4s  %-5s  %-5s  %s\n", "-----", "----", "----", "----", "-----", "---------")
	for level := 1; level <= dm.MaxLevel(); level++ {
		p := dm.Params(level)
		fmt.Printf("  %-5d  %-4d  %3.0f%%  %4.0f%%  %-5.1f  %s\n",
			p.Level, p.Rows, p.GapChance*100, p.DropChance*100, p.BallSpeed, strings.Join(p.Pool, ", "))
	}
}
