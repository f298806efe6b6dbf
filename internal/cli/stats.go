package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

// statsCommand creates the stats command: node count, link count, total flow
// and efficiency of a dataset.
func (c *CLI) statsCommand() *cobra.Command {
	var (
		in     inputFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "stats [dataset]",
		Short: "Summarize a dataset",
		Long: `Summarize a dataset.

Efficiency is the inflow of nodes without outgoing links divided by the
outflow of nodes without incoming links, as a rounded percentage.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, source, err := in.load(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			opts := c.baseOptions()
			opts.Dataset = ds
			opts.Source = source

			runner, err := c.newRunner(true)
			if err != nil {
				return err
			}
			defer runner.Close()

			st, err := runner.Stats(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(st)
			}
			printStatsTable(source, st)
			return nil
		},
	}

	in.bind(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")

	return cmd
}
