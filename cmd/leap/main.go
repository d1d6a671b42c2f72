// leap is a 2D platformer movement demo: one rectangle, gravity, jumping
// and axis-aligned collision against static platforms.
//
// Usage:
//
//	leap list                 - List motion variants
//	leap play [variant]       - Play in a desktop window
//	leap term [variant]       - Play in the terminal
//	leap simulate [variant]   - Run headless and print the final state
//	leap config [variant]     - Print the effective world config as YAML
//
// Global flags:
//
//	--config <path>     - World config YAML (default: search ~/.leap/configs, ./configs, embedded)
//	--fps <rate>        - Frames per second (default: 60)
//	--log-level <lvl>   - debug, info, warn, error (default: info)
//	--watch             - Reload the world when the config file changes
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
	flagConfig   string
	flagFPS      int
	flagLogLevel string
	flagWatch    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "leap",
	Short: "LeapEngine - a minimal 2D platformer movement demo",
	Long: `LeapEngine simulates a single rectangle moving under gravity, horizontal
input and jumping, colliding with static rectangular platforms.

Available commands:
  list      - Show the motion variants
  play      - Play in a desktop window
  term      - Play in the terminal
  simulate  - Run without a display and print the final state
  config    - Print the effective world configuration

Examples:
  leap play
  leap play charged
  leap term oneway --fps 30
  leap simulate --frames 300 --press "right@0-120,jump@60"
  leap play --config ./configs/world.yaml --watch`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to world config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frames per second")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagWatch, "watch", false, "Reload the world when the config file changes")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the process logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "leap",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
