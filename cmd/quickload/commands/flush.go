package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newFlushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flush",
		Short: "Persist unsaved cache changes",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.app.Flush()
		},
	}
}
