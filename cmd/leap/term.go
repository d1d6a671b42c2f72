package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/leapengine/internal/loop"
	"github.com/vovakirdan/leapengine/internal/platform/tui"
)

var flagLogFile string

var termCmd = &cobra.Command{
	Use:   "term [variant]",
	Short: "Play in the terminal",
	Long: `Play the given variant in the terminal using truecolor half blocks.

Terminals do not report key releases, so a key counts as held for a short
time after each press or autorepeat. Holding a key works as expected;
very short taps last about half a second.

Controls:
  Left/A, Right/D  - Move
  Space/W          - Jump (hold to charge in the charged variant)
  Up/W, Down/S     - Move vertically (free roam)
  Esc              - Exit
  Q/Ctrl+C         - Quit
  ?                - Toggle help

Logs go to --log-file because the terminal is in use.

Examples:
  leap term
  leap term oneway --fps 30
  leap term --log-file /tmp/leap.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runTerm,
}

func init() {
	termCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
}

func runTerm(cmd *cobra.Command, args []string) {
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			newLogger(os.Stderr).Fatal("failed to open log file", "path", flagLogFile, "err", err)
		}
		defer f.Close()
		out = f
	}
	logger := newLogger(out)
	fatal := newLogger(os.Stderr)

	variant := variantArg(args)
	scene, source, err := loadScene(logger, variant)
	if err != nil {
		fatal.Fatal("failed to load world", "err", err)
	}

	reload, err := startReload(logger, source, variant)
	if err != nil {
		fatal.Fatal("failed to start config watcher", "err", err)
	}
	defer reload.Close()

	// Get terminal size; Bubble Tea sends the real size once it starts.
	cols, rows := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cols, rows = w, h
	}

	surface := tui.NewSurface(cols, rows-2)
	l := loop.New(surface, scene,
		loop.WithLogger(logger),
		loop.WithReload(reload.Scenes()),
	)

	if err := tui.Run(l, surface, flagFPS, logger); err != nil {
		reload.Close()
		fatal.Fatal("terminal session ended with error", "frames", l.Frame(), "err", err)
	}
}
