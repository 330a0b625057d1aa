package cli

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/spf13/cobra"

	"github.com/gridshell/envelope/pkg/block"
	"github.com/gridshell/envelope/pkg/errors"
	"github.com/gridshell/envelope/pkg/model"
)

// inspectOpts holds the command-line flags for the inspect command.
type inspectOpts struct {
	blockName string // restrict output to one block
}

// newInspectCmd creates the inspect command for reviewing a definition file
// before building. It prints one table per block with the storey index,
// floor and ceiling elevations, and surface counts.
func newInspectCmd() *cobra.Command {
	var opts inspectOpts

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show per-storey elevations for a definition file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.blockName, "block", "b", "", "inspect only the named block")

	return cmd
}

func runInspect(cmd *cobra.Command, path string, opts *inspectOpts) error {
	f, err := model.LoadFile(path)
	if err != nil {
		return err
	}

	found := false
	for _, def := range f.Blocks {
		if opts.blockName != "" && def.Name != opts.blockName {
			continue
		}
		found = true

		b, err := def.Block()
		if err != nil {
			return err
		}
		printBlock(cmd, def, b)
	}

	if !found {
		if opts.blockName != "" {
			return errors.New(errors.ErrCodeBlockNotFound, "no block named %q in %s", opts.blockName, path)
		}
		return errors.New(errors.ErrCodeInvalidDefinition, "no blocks defined in %s", path)
	}
	return nil
}

// printBlock writes one block's header line and storey table.
func printBlock(cmd *cobra.Command, def model.Definition, b *block.Block) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s  %s\n",
		styleTitle.Render(b.Name()),
		styleDim.Render(fmt.Sprintf("height %.2f, footprint area %.2f", b.Height(), footprintArea(def))))

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("Storey", "Floor", "Ceiling", "Walls", "Ceil.", "Roofs").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			return styleCell
		})

	for _, s := range b.Storeys() {
		t.Row(
			fmt.Sprintf("%d", s.Index),
			fmt.Sprintf("%.2f", s.Floor),
			fmt.Sprintf("%.2f", s.Ceiling),
			fmt.Sprintf("%d", len(s.Surfaces.Walls)),
			fmt.Sprintf("%d", len(s.Surfaces.Ceilings)),
			fmt.Sprintf("%d", len(s.Surfaces.Roofs)),
		)
	}

	fmt.Fprintln(out, t)
}

// footprintArea computes the plan-view area of a definition's footprint.
func footprintArea(def model.Definition) float64 {
	ring := make(orb.Ring, 0, len(def.Footprint)+1)
	for _, pt := range def.Footprint {
		if len(pt) == 2 {
			ring = append(ring, orb.Point{pt[0], pt[1]})
		}
	}
	if len(ring) > 0 && ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	return math.Abs(planar.Area(ring))
}
