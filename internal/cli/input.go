package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sankeyflow/pkg/dataset"
)

// stdinName is the file argument that reads the dataset from standard input.
const stdinName = "-"

// inputFlags selects where a command reads its dataset from. Exactly one of a
// file argument, --nodes/--links or --builtin must be given.
type inputFlags struct {
	nodes   string // node list file, one name per line
	links   string // link list file, source,target,value per line
	builtin string // built-in dataset name
	seed    uint64 // seed for the random built-in
	format  string // encoding of the file argument; empty means by extension
}

// bind registers the input flags on cmd.
func (f *inputFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.nodes, "nodes", "", "node list file (one name per line)")
	cmd.Flags().StringVar(&f.links, "links", "", "link list file (source,target,value per line)")
	cmd.Flags().StringVarP(&f.builtin, "builtin", "b", "", "built-in dataset: "+strings.Join(dataset.BuiltinNames(), ", "))
	cmd.Flags().Uint64Var(&f.seed, "seed", 1, "seed for the random built-in dataset")
	cmd.Flags().StringVar(&f.format, "input-format", "", "dataset encoding: text, json, yaml (default: by extension)")

	completeChoices(cmd, "builtin", dataset.BuiltinNames)
	completeChoices(cmd, "input-format", dataset.FormatNames)
}

// load resolves the dataset and a short source name for logs and output
// paths. stdin is read when the file argument is "-".
func (f *inputFlags) load(args []string, stdin io.Reader) (dataset.Dataset, string, error) {
	sources := 0
	if len(args) > 0 {
		sources++
	}
	if f.nodes != "" || f.links != "" {
		sources++
	}
	if f.builtin != "" {
		sources++
	}
	switch {
	case sources == 0:
		return dataset.Dataset{}, "", fmt.Errorf("no dataset: pass a file, --nodes and --links, or --builtin")
	case sources > 1:
		return dataset.Dataset{}, "", fmt.Errorf("choose one dataset source: a file, --nodes/--links or --builtin")
	}

	switch {
	case f.builtin != "":
		ds, err := dataset.Builtin(f.builtin, f.seed)
		return ds, f.builtin, err

	case f.nodes != "" || f.links != "":
		if f.nodes == "" || f.links == "" {
			return dataset.Dataset{}, "", fmt.Errorf("--nodes and --links must be given together")
		}
		ds, err := dataset.LoadLists(f.nodes, f.links)
		return ds, f.nodes, err
	}

	path := args[0]
	if path == stdinName {
		format, err := dataset.ParseFormat(f.format)
		if err != nil {
			return dataset.Dataset{}, "", err
		}
		ds, err := dataset.Read(stdin, format)
		if err != nil {
			return dataset.Dataset{}, "", fmt.Errorf("stdin: %w", err)
		}
		return ds, "stdin", nil
	}
	if f.format == "" {
		ds, err := dataset.Load(path)
		return ds, path, err
	}
	format, err := dataset.ParseFormat(f.format)
	if err != nil {
		return dataset.Dataset{}, "", err
	}
	file, err := os.Open(path)
	if err != nil {
		return dataset.Dataset{}, "", fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	ds, err := dataset.Read(file, format)
	if err != nil {
		return dataset.Dataset{}, "", fmt.Errorf("%s: %w", path, err)
	}
	return ds, path, nil
}

// outputBase derives an output base path from a dataset source name: the
// source without its extension, or "sankey" for stdin.
func outputBase(source string) string {
	if source == "" || source == "stdin" {
		return "sankey"
	}
	return strings.TrimSuffix(source, filepath.Ext(source))
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty or "-", it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == stdinName {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
