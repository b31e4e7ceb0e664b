package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdFish creates the fish completion command.
func NewCmdFish() *cobra.Command {
	return &cobra.Command{
		Use:   "fish",
		Short: "Generate fish completion script",
		Long: `Generate fish completion script for mdc.

To load completions in your current shell session:

  mdc completion fish | source

To load completions for every new session:

  mdc completion fish > ~/.config/fish/completions/mdc.fish`,
		Example: `  # Load in current session
  mdc completion fish | source

  # Install permanently
  mdc completion fish > ~/.config/fish/completions/mdc.fish`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
		},
	}
}
