package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newGetCmd() *cobra.Command {
	var showStats bool

	cmd := &cobra.Command{
		Use:   "get <module>...",
		Short: "Load modules and print their export values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				out, err := c.app.Get(cmd.Context(), name)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			if showStats {
				c.app.Stats(cmd.OutOrStdout())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showStats, "stats", false, "Print resolution statistics after loading")
	return cmd
}
