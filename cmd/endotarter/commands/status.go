package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/endotarter/internal/app"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the nations left to endorse without logging in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Status(cmd.Context(), app.StatusOptions{ConfigPath: configPath(cmd)})
		},
	}
}
