package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newWarmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "warm",
		Short: "Pre-compile every discoverable module into the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := c.app.Warm(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "compiled %d, skipped %d, failed %d\n",
				stats.Compiled, stats.Skipped, stats.Failed)
			return nil
		},
	}
}
