package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdZsh creates the zsh completion command.
func NewCmdZsh() *cobra.Command {
	return &cobra.Command{
		Use:   "zsh",
		Short: "Generate zsh completion script",
		Long: `Generate zsh completion script for mdc.

To load completions in your current shell session:

  source <(mdc completion zsh)

To load completions for every new session, first ensure completion is enabled
(add to ~/.zshrc if not already present):

  autoload -Uz compinit && compinit

Then add the completion script to your fpath:

  mdc completion zsh > "${fpath[1]}/_mdc"

You may need to start a new shell for completions to take effect.`,
		Example: `  # Load in current session
  source <(mdc completion zsh)

  # Install permanently
  mkdir -p ~/.zsh/completions
  mdc completion zsh > ~/.zsh/completions/_mdc`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
		},
	}
}
