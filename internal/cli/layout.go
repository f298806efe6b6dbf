package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sankeyflow/pkg/pipeline"
)

// layoutCommand creates the layout command for computing diagram geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		in      inputFlags
		df      diagramFlags
		output  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "layout [dataset]",
		Short: "Compute node rectangles and link paths as JSON",
		Long: `Compute the geometry of a Sankey diagram.

The layout command assigns layers, packs nodes proportionally to their flow
and writes every node rectangle and link path as JSON (the same document as
'render -f json' at the identity view).

Results are cached locally for faster subsequent runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, source, err := in.load(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			opts := c.baseOptions()
			df.apply(cmd, &opts)
			opts.Dataset = ds
			opts.Source = source
			return c.runLayout(cmd.Context(), opts, output, noCache)
		},
	}

	in.bind(cmd)
	df.bind(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", `output file (default: <dataset>.layout.json); "-" for stdout`)
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runLayout computes the layout snapshot and writes it.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, "Computing layout...")
	defer spinner.follow()()
	spinner.Start()

	res, err := runner.Layout(ctx, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()
	g, snap, cacheHit := res.Graph, res.Snapshot, res.Cached

	if ctx.Err() != nil {
		return ctx.Err()
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	data = append(data, '\n')

	if output == stdinName {
		out, _ := openOutput(output)
		_, err := out.Write(data)
		return err
	}

	outputPath := output
	if outputPath == "" {
		outputPath = outputBase(opts.Source) + ".layout.json"
	}
	if err := writeFile(outputPath, data); err != nil {
		return err
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printSummary(g.Stats(), cacheHit)
	printNextStep("Render", appName+" render "+opts.Source)

	return nil
}
