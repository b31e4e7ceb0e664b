// Package convert provides the convert command for mdc.
package convert

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-doc-collective/mdc/internal/view"
	"github.com/open-doc-collective/mdc/pkg/callout"
)

type convertOptions struct {
	out     string
	noColor bool
}

// NewCmdConvert creates the convert command.
func NewCmdConvert() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert rendered HTML back to callout markdown",
		Long: `Convert an HTML document back to markdown, turning callout
containers into '> [!type] Title' quote syntax. Reads from stdin when
no file is given.`,
		Example: `  # Convert a rendered page back to markdown
  mdc convert page.html

  # Round-trip through a pipe
  mdc render notes.md | mdc convert`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.noColor, _ = cmd.Flags().GetBool("no-color")

			file := ""
			if len(args) > 0 {
				file = args[0]
			}
			return runConvert(file, os.Stdin, os.Stdout, os.Stderr, opts)
		},
	}

	cmd.Flags().StringVar(&opts.out, "out", "", "write markdown to this file instead of stdout")

	return cmd
}

func runConvert(file string, stdin io.Reader, stdout, stderr io.Writer, opts *convertOptions) error {
	var (
		input []byte
		err   error
	)
	if file != "" {
		input, err = os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
	} else {
		input, err = io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	renderer := view.NewRenderer(stdout, stderr, view.FormatPlain, opts.noColor)

	markdown, warnings, err := callout.FromHTML(string(input))
	if err != nil {
		return fmt.Errorf("failed to convert: %w", err)
	}
	for _, w := range warnings {
		renderer.Warning(w)
	}

	if opts.out != "" {
		if err := os.WriteFile(opts.out, []byte(markdown+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", opts.out, err)
		}
		renderer.Success(fmt.Sprintf("Wrote %s", opts.out))
		return nil
	}

	fmt.Fprintln(stdout, markdown)
	return nil
}
