// diamondfall is a counter widget and a one-scene platformer: walk with the
// cursor keys, jump onto the ledges and catch the falling diamonds.
//
// Usage:
//
//	diamondfall                 - run the game with the host bar
//	diamondfall counter         - run the counter widget alone
//
// Flags:
//
//	--config <path>     - YAML config decoded over the defaults
//	--seed <value>      - RNG seed for spawn positions (0 = random)
//	--log-level <lvl>   - debug, info, warn or error
//	--debug             - draw colliders and player state
//	--watch             - remount the scene when prefabs or the config change
package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/diamondfall/common"
	"github.com/milk9111/diamondfall/config"
	"github.com/milk9111/diamondfall/ui"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagSeed     uint64
	flagLogLevel string
	flagDebug    bool
	flagWatch    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "diamondfall",
	Short: "Catch falling diamonds in a one-screen platformer",
	Long: `diamondfall runs a single platformer scene above a host bar with a click
counter, the live score and a Start/Stop button that mounts the scene.

Controls:
  Left/Right  - Run
  Up          - Jump (only while standing on something)`,
	SilenceUsage: true,
	RunE:         runGame,
}

var counterCmd = &cobra.Command{
	Use:   "counter",
	Short: "Run the click counter widget alone",
	RunE: func(cmd *cobra.Command, args []string) error {
		ebiten.SetWindowSize(counterWidth, counterHeight)
		ebiten.SetWindowTitle("diamondfall counter")
		return ebiten.RunGame(NewCounterApp(&ui.Counter{}))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (default from config)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a config YAML")
	rootCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Draw colliders and player state")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload prefabs and config on change")

	rootCmd.AddCommand(counterCmd)
}

func runGame(cmd *cobra.Command, args []string) error {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	level := cfg.Log.Level
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	logger := common.NewLogger(os.Stderr, level)
	logger.Info("config loaded", "source", source)

	app, err := NewApp(cfg, appOptions{
		configPath: flagConfig,
		seed:       flagSeed,
		debug:      flagDebug,
		watch:      flagWatch,
	}, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	scale := cfg.Window.Scale
	if scale <= 0 {
		scale = 1
	}
	w, h := app.Layout(0, 0)
	ebiten.SetWindowSize(int(float64(w)*scale), int(float64(h)*scale))
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.TPS)

	return ebiten.RunGame(app)
}
