package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand generates shell completion scripts via cobra's
// built-in generators.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for your shell.

Bash:
  $ source <(isogrid completion bash)
  # or install permanently:
  $ isogrid completion bash > /etc/bash_completion.d/isogrid

Zsh:
  $ isogrid completion zsh > "${fpath[1]}/_isogrid"
  # (run "autoload -U compinit; compinit" first if completion is not
  # already enabled)

Fish:
  $ isogrid completion fish > ~/.config/fish/completions/isogrid.fish

PowerShell:
  PS> isogrid completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}
