package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (c *CLI) newLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List cached modules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			infos := c.app.List()
			if len(infos) == 0 {
				fmt.Fprintf(out, "cache empty (%s)\n", c.app.CachePath())
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "MODULE\tSOURCE\tSIZE")
			for _, info := range infos {
				fmt.Fprintf(tw, "%s\t%s\t%d\n", info.Name, info.Source, info.BlobSize)
			}
			return tw.Flush()
		},
	}
}
