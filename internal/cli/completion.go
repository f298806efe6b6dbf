package cli

import (
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sankeyflow/pkg/render"
)

// shells maps each supported shell to its script generator.
var shells = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash":       func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	"zsh":        func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	"fish":       func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": func(root *cobra.Command, w io.Writer) error { return root.GenPowerShellCompletionWithDesc(w) },
}

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	names := make([]string, 0, len(shells))
	for name := range shells {
		names = append(names, name)
	}
	slices.Sort(names)

	return &cobra.Command{
		Use:   "completion [" + strings.Join(names, "|") + "]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for sankeyflow.

Besides commands and flags, the scripts complete theme names, built-in
datasets and output formats (including comma-separated lists for --format).

Bash:
  $ source <(sankeyflow completion bash)

Zsh:
  $ sankeyflow completion zsh > "${fpath[1]}/_sankeyflow"

Fish:
  $ sankeyflow completion fish > ~/.config/fish/completions/sankeyflow.fish

PowerShell:
  PS> sankeyflow completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             names,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Annotations:           map[string]string{skipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return shells[args[0]](cmd.Root(), cmd.OutOrStdout())
		},
	}
}

// =============================================================================
// Flag Value Completion
// =============================================================================

// completeChoices registers a fixed set of values for flag.
func completeChoices(cmd *cobra.Command, flag string, choices func() []string) {
	_ = cmd.RegisterFlagCompletionFunc(flag, func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return choices(), cobra.ShellCompDirectiveNoFileComp
	})
}

// completeFormatList registers completion for a comma-separated format list:
// the part before the last comma is kept and formats already listed are
// skipped.
func completeFormatList(cmd *cobra.Command, flag string) {
	_ = cmd.RegisterFlagCompletionFunc(flag, func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return formatCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
	})
}

func formatCompletions(toComplete string) []string {
	prefix, last := "", toComplete
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix, last = toComplete[:i+1], toComplete[i+1:]
	}
	listed := strings.Split(prefix, ",")

	var out []string
	for _, f := range render.Formats {
		name := string(f)
		if strings.HasPrefix(name, last) && !slices.Contains(listed, name) {
			out = append(out, prefix+name)
		}
	}
	return out
}
