package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridshell/envelope/pkg/model"
)

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	output string // output file path; stdout when empty
}

// newBuildCmd creates the build command for deriving zone geometry.
// It reads a block definition file (TOML, YAML or JSON), derives one zone
// per storey for every block, and writes the resulting model as JSON.
func newBuildCmd() *cobra.Command {
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build [file]",
		Short: "Derive building zones from a definition file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (defaults to stdout)")

	return cmd
}

func runBuild(cmd *cobra.Command, path string, opts *buildOpts) error {
	logger := loggerFromContext(cmd.Context())
	p := newProgress(logger)

	f, err := model.LoadFile(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded definitions", "file", path, "blocks", len(f.Blocks))

	m, err := f.Build()
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Derived %d zones from %d blocks", len(m.Zones), len(f.Blocks)))

	if opts.output == "" {
		return model.WriteModel(m, cmd.OutOrStdout())
	}
	if err := model.ExportModel(m, opts.output); err != nil {
		return err
	}
	logger.Info("wrote model", "file", opts.output)
	return nil
}
