package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/leapengine/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [variant]",
	Short: "Print the effective world configuration",
	Long: `Print the world configuration that play/term/simulate would use, as YAML.
With a variant, its motion policy is applied first.

The output is a valid config file:
  leap config charged > ~/.leap/configs/world.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("failed to load config", "err", err)
	}

	if len(args) == 1 {
		v, err := config.ParseVariant(args[0])
		if err != nil {
			logger.Fatal("invalid variant", "err", err)
		}
		config.ApplyVariant(&cfg, v)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		logger.Fatal("failed to encode config", "err", err)
	}

	fmt.Printf("# source: %s\n", source)
	if _, err := os.Stdout.Write(data); err != nil {
		logger.Fatal("failed to write config", "err", err)
	}
}
