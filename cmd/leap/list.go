package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/leapengine/internal/config"
	"github.com/vovakirdan/leapengine/internal/registry"
	"github.com/vovakirdan/leapengine/internal/world"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all motion variants",
	Long: `Shows every registered motion variant and the jump, collision and
movement modes it runs with. The variant matching the config file's own
policy is marked with '*'.`,
	Run: runList,
}

func runList(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("failed to load config", "err", err)
	}
	if err := writeVariants(os.Stdout, cfg); err != nil {
		logger.Fatal("failed to list variants", "err", err)
	}

	fmt.Printf("\nConfig: %s\n", source)
	fmt.Println("Run 'leap play <id>' to play a variant.")
}

// variantRow is one line of the variant table.
type variantRow struct {
	id, title string
	policy    world.MotionPolicy
}

// writeVariants builds every registered variant over cfg and prints its
// motion policy.
func writeVariants(w io.Writer, cfg config.WorldConfig) error {
	infos := registry.List()
	if len(infos) == 0 {
		_, err := fmt.Fprintln(w, "No variants available.")
		return err
	}

	own, err := world.New(cfg)
	if err != nil {
		return err
	}

	rows := make([]variantRow, 0, len(infos))
	idW, titleW := len("ID"), len("TITLE")
	for _, info := range infos {
		scene, err := registry.Create(info.ID, cfg)
		if err != nil {
			return err
		}
		wld, ok := scene.(*world.World)
		if !ok {
			return fmt.Errorf("variant %q is not a world", info.ID)
		}
		rows = append(rows, variantRow{info.ID, info.Title, wld.Policy()})
		idW = max(idW, len(info.ID))
		titleW = max(titleW, len(info.Title))
	}

	fmt.Fprintf(w, "  %-*s  %-*s  %-8s  %-10s  %s\n", idW, "ID", titleW, "TITLE", "JUMP", "COLLISION", "MOVEMENT")
	for _, r := range rows {
		mark := " "
		if r.id == own.ID() {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %-*s  %-*s  %-8s  %-10s  %s\n",
			mark, idW, r.id, titleW, r.title, r.policy.Jump, r.policy.Collision, r.policy.Movement)
	}
	if own.ID() == world.CustomID {
		_, err = fmt.Fprintf(w, "* %-*s  %-*s  %s\n", idW, world.CustomID, titleW, "From config", own.Policy())
	}
	return err
}
