package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/endotarter/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the endorsement cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dump, _ := cmd.Flags().GetBool("dump")
			return c.app.Clean(cmd.Context(), app.CleanOptions{
				ConfigPath: configPath(cmd),
				Dump:       dump,
			})
		},
	}

	cmd.Flags().BoolP("dump", "d", false, "Also remove the downloaded nations dump")

	return cmd
}
