package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sankeyflow/pkg/dataset"
)

// sampleCommand creates the sample command, which prints a built-in dataset
// as a starting point for your own.
func (c *CLI) sampleCommand() *cobra.Command {
	var (
		format string
		output string
		seed   uint64
	)

	cmd := &cobra.Command{
		Use:       "sample [name]",
		Short:     "Print a built-in dataset",
		Long:      "Print a built-in dataset (" + strings.Join(dataset.BuiltinNames(), ", ") + ") as text, JSON or YAML.",
		ValidArgs: dataset.BuiltinNames(),
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		Example: `  sankeyflow sample > flows.txt
  sankeyflow sample energy --format yaml -o energy.yaml
  sankeyflow sample random --seed 42 | sankeyflow render - -o random.svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "sample"
			if len(args) == 1 {
				name = args[0]
			}
			ds, err := dataset.Builtin(name, seed)
			if err != nil {
				return err
			}

			f := dataset.DetectFormat(output)
			if format != "" {
				if f, err = dataset.ParseFormat(format); err != nil {
					return err
				}
			}

			out, err := openOutput(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			if err := dataset.Write(out, ds, f); err != nil {
				out.Close()
				return err
			}
			return out.Close()
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "encoding: text, json, yaml (default: by output extension)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "seed for the random dataset")

	completeChoices(cmd, "format", dataset.FormatNames)

	return cmd
}
