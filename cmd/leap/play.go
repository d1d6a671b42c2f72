package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/leapengine/internal/loop"
	"github.com/vovakirdan/leapengine/internal/platform/window"
)

var flagScale float64

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in a desktop window",
	Long: `Open a window and play the given variant.

Controls:
  Left/A, Right/D  - Move
  Space/W          - Jump (hold to charge in the charged variant)
  Up/W, Down/S     - Move vertically (free roam)
  Esc              - Exit

Examples:
  leap play
  leap play charged
  leap play freeroam --scale 0.75
  leap play --config ./my-world.yaml --watch`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size multiplier")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)
	variant := variantArg(args)

	scene, source, err := loadScene(logger, variant)
	if err != nil {
		logger.Fatal("failed to load world", "err", err)
	}

	reload, err := startReload(logger, source, variant)
	if err != nil {
		logger.Fatal("failed to start config watcher", "err", err)
	}
	defer reload.Close()

	surface := window.New(window.Options{
		Title:    "LeapEngine - " + scene.Title(),
		Scale:    flagScale,
		TickRate: flagFPS,
	})
	l := loop.New(surface, scene,
		loop.WithLogger(logger),
		loop.WithReload(reload.Scenes()),
	)

	logger.Info("opening window", "variant", scene.ID(), "fps", flagFPS)
	if err := surface.Run(l); err != nil {
		reload.Close()
		logger.Fatal("window closed with error", "frames", l.Frame(), "err", err)
	}
	logger.Info("bye", "frames", l.Frame())
}
