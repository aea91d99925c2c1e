package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/emforge/internal/core/domain"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove recorded build artifacts and the CMake build tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputDir, _ := cmd.Flags().GetString("output-dir")
			return c.app.Clean(cmd.Context(), outputDir)
		},
	}

	cmd.Flags().StringP("output-dir", "o", domain.DefaultOutputDir, "Output directory to clean")

	return cmd
}
