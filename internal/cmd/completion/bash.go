package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdBash creates the bash completion command.
func NewCmdBash() *cobra.Command {
	return &cobra.Command{
		Use:   "bash",
		Short: "Generate bash completion script",
		Long: `Generate bash completion script for mdc.

To load completions in your current shell session:

  source <(mdc completion bash)

To load completions for every new session:

  # Linux
  mdc completion bash > /etc/bash_completion.d/mdc

  # macOS (requires bash-completion)
  mdc completion bash > $(brew --prefix)/etc/bash_completion.d/mdc`,
		Example: `  # Load in current session
  source <(mdc completion bash)

  # Install permanently (Linux)
  mdc completion bash | sudo tee /etc/bash_completion.d/mdc > /dev/null`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
		},
	}
}
