package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sankeyflow/pkg/pipeline"
	"github.com/matzehuels/sankeyflow/pkg/render"
	"github.com/matzehuels/sankeyflow/pkg/view"
)

// renderCommand creates the render command: dataset → diagram → files.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		in         inputFlags
		df         diagramFlags
		formatsStr string
		output     string
		scale      float64
		zoom       float64
		panX, panY float64
		detailed   bool
		noCache    bool
		refresh    bool
	)

	cmd := &cobra.Command{
		Use:   "render [dataset]",
		Short: "Render a dataset to SVG, PNG, JSON, DOT or a Graphviz node-link SVG",
		Long: `Render a dataset as a Sankey diagram.

The dataset is a text file with "nodes:" and "links:" sections, a JSON or YAML
file with the same shape, two list files passed with --nodes and --links, or
one of the built-in datasets (--builtin sample).

Results are cached locally for faster subsequent runs.`,
		Example: `  sankeyflow render --builtin sample
  sankeyflow render flows.yaml -f svg,png --scale 2
  sankeyflow render --nodes nodes.txt --links links.txt -o energy.svg --theme dark`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats, err := parseFormats(formatsStr)
			if err != nil {
				return err
			}
			ds, source, err := in.load(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			opts := c.baseOptions()
			df.apply(cmd, &opts)
			opts.Dataset = ds
			opts.Source = source
			opts.Formats = formats
			opts.Scale = scale
			opts.Detailed = detailed
			opts.Refresh = refresh
			opts.View = view.Transform{Scale: zoom, TranslateX: panX, TranslateY: panY}
			return c.runRender(cmd.Context(), opts, output, noCache)
		},
	}

	in.bind(cmd)
	df.bind(cmd)

	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json, dot, nodelink (comma-separated)")
	cmd.Flags().StringVarP(&output, "output", "o", "", `output file (single format) or base path (multiple); "-" for stdout`)
	cmd.Flags().Float64Var(&scale, "scale", pipeline.DefaultScale, "PNG pixel density")
	cmd.Flags().Float64Var(&zoom, "zoom", 1, "view zoom, clamped to [0.1, 3]")
	cmd.Flags().Float64Var(&panX, "pan-x", 0, "view horizontal translation")
	cmd.Flags().Float64Var(&panY, "pan-y", 0, "view vertical translation")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "label DOT and nodelink edges with their values")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "ignore cached results and re-render")

	completeFormatList(cmd, "format")

	return cmd
}

// runRender executes the pipeline and writes one file per format.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, "Loading "+opts.Source+"...")
	defer spinner.follow()()
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		source:    opts.Source,
		output:    output,
	}); err != nil {
		return err
	}

	if output != stdinName {
		printSummary(result.Flow, result.CacheInfo.RenderHit)
	}
	return nil
}

// =============================================================================
// Artifact Output
// =============================================================================

// artifactWriteParams describes where rendered artifacts go.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	source    string
	output    string
}

// writeArtifacts writes each artifact to disk, or a single artifact to stdout
// when output is "-".
func writeArtifacts(p artifactWriteParams) error {
	if p.output == stdinName {
		if len(p.formats) != 1 {
			return fmt.Errorf("stdout output needs exactly one format, got %d", len(p.formats))
		}
		out, _ := openOutput(p.output)
		_, err := out.Write(p.artifacts[p.formats[0]])
		return err
	}

	paths := outputPaths(p.output, p.source, p.formats)
	for _, format := range p.formats {
		path := paths[format]
		if err := writeFile(path, p.artifacts[format]); err != nil {
			return err
		}
	}

	printSuccess("Rendered %s", strings.Join(p.formats, ", "))
	for _, format := range p.formats {
		printArtifact(paths[format], len(p.artifacts[format]))
	}
	return nil
}

// outputPaths maps each format to its file. A single format uses output as
// given; several formats share its base with per-format extensions.
func outputPaths(output, source string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, source)
	for _, f := range formats {
		paths[f] = base + render.Format(f).Ext()
	}
	return paths
}

// basePath derives the base output path from the output flag and the
// dataset source. A known format extension on output is stripped.
func basePath(output, source string) string {
	if output == "" {
		return outputBase(source)
	}
	base, _ := render.TrimExt(output)
	return base
}

// writeFile creates path and writes data to it.
func writeFile(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return out.Close()
}
