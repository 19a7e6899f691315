// asteroids is a minimal real-time arcade game: steer a ship over a
// wrapping playfield and shoot the rocks before they shoot you down by
// sheer inertia.
//
// Controls:
//
//	Up/W        - thrust
//	Left/A      - turn left
//	Right/D     - turn right
//	Space       - fire
//	P           - pause
//	Q/Escape    - quit
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"asteroids/game"
)

var (
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids - dodge and shoot rocks on a wrapping playfield",
	Long: `Asteroids opens an 800x600 window and runs until you quit.

The defaults need no flags. A YAML config can override the tuning
(screen size, thrust, bullet speed, lives, ...), and a fixed seed makes
asteroid spawns and splits reproducible.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to tuning config YAML")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func run(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "asteroids",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	cfg, err := game.LoadConfig(flagConfig)
	if err != nil {
		// Setup failures are fatal: no retry, no degraded mode.
		logger.Fatal("config load failed", "error", err)
	}
	cfg.Seed = flagSeed

	g := game.NewGame(cfg, logger)

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Asteroids")
	// The close button is delivered to the game as a quit press instead
	// of killing the window out from under the loop.
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("frame loop failed", "error", err)
	}
	logger.Info("clean exit")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
