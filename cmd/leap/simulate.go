package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/leapengine/internal/core"
	"github.com/vovakirdan/leapengine/internal/loop"
	"github.com/vovakirdan/leapengine/internal/platform/headless"
)

var (
	flagFrames int
	flagPress  string
	flagPNG    string
	flagTrace  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [variant]",
	Short: "Run headless and print the final player state",
	Long: `Run the simulation without a display for a fixed number of frames.

Inputs are scripted with --press as comma-separated input@from-to ranges
(frames are 0-based, the end is exclusive; input@n holds for one frame).
Inputs: left, right, up, down, jump, exit.

The charge clock advances exactly one frame (1/fps) per step, so runs are
reproducible.

Examples:
  leap simulate
  leap simulate --frames 300 --press "right@0-120,jump@60"
  leap simulate charged --press "jump@100-160" --png last.png
  leap simulate --trace --frames 80`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 600, "Number of frames to run")
	simulateCmd.Flags().StringVar(&flagPress, "press", "", "Input script, e.g. \"right@0-120,jump@60\"")
	simulateCmd.Flags().StringVar(&flagPNG, "png", "", "Write the last frame to this PNG file")
	simulateCmd.Flags().BoolVar(&flagTrace, "trace", false, "Print the player state after every frame")
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)

	holds, err := headless.ParseScript(flagPress)
	if err != nil {
		logger.Fatal("invalid --press script", "err", err)
	}

	scene, _, err := loadScene(logger, variantArg(args))
	if err != nil {
		logger.Fatal("failed to load world", "err", err)
	}

	surface := headless.New(flagFrames, holds...)
	opts := []loop.Option{
		loop.WithLogger(logger),
		loop.WithClock(loop.NewStepClock(time.Unix(0, 0), loop.FrameStep(flagFPS))),
	}
	if flagTrace {
		opts = append(opts, loop.WithStepHook(func(res core.StepResult) {
			fmt.Println(formatState(res))
		}))
	}
	l := loop.New(surface, scene, opts...)

	if err := l.Run(); err != nil {
		logger.Fatal("simulation failed", "err", err)
	}

	if flagPNG != "" {
		f, err := os.Create(flagPNG)
		if err != nil {
			logger.Fatal("failed to create png", "path", flagPNG, "err", err)
		}
		if err := surface.WritePNG(f); err != nil {
			f.Close()
			logger.Fatal("failed to write png", "path", flagPNG, "err", err)
		}
		if err := f.Close(); err != nil {
			logger.Fatal("failed to write png", "path", flagPNG, "err", err)
		}
		logger.Info("wrote last frame", "path", flagPNG)
	}

	if !flagTrace {
		fmt.Println(formatState(l.Last()))
	}
}

func formatState(res core.StepResult) string {
	p := res.Player
	return fmt.Sprintf("frame=%d x=%.2f y=%.2f vy=%.2f on_ground=%t phase=%s",
		res.Frame, p.X, p.Y, p.VelocityY, p.OnGround, p.Phase)
}
