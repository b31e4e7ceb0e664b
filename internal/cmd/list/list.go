// Package list provides the list command for mdc.
package list

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/open-doc-collective/mdc/internal/view"
	"github.com/open-doc-collective/mdc/pkg/callout"
)

type listOptions struct {
	output  string
	noColor bool
}

// NewCmdList creates the list command.
func NewCmdList() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:     "list [file]",
		Aliases: []string{"ls"},
		Short:   "List the callouts in a markdown document",
		Long:    `Parse a markdown document and list every callout it declares, including nested ones.`,
		Example: `  # List callouts in a file
  mdc list notes.md

  # Output as JSON
  mdc list notes.md -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")

			file := ""
			if len(args) > 0 {
				file = args[0]
			}
			return runList(file, os.Stdin, os.Stdout, os.Stderr, opts)
		},
	}

	return cmd
}

func runList(file string, stdin io.Reader, stdout, stderr io.Writer, opts *listOptions) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	var (
		src []byte
		err error
	)
	if file != "" {
		src, err = os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
	} else {
		src, err = io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	renderer := view.NewRenderer(stdout, stderr, view.Format(opts.output), opts.noColor)

	rows := collectCallouts(src)
	if len(rows) == 0 {
		renderer.Text("No callouts found.")
		return nil
	}

	renderer.Table([]string{"TYPE", "FOLD", "TITLE", "LINE"}, rows)
	return nil
}

// collectCallouts parses src with the callout extension and returns one
// row per callout in document order.
func collectCallouts(src []byte) [][]string {
	md := goldmark.New(goldmark.WithExtensions(callout.Enabled))
	doc := md.Parser().Parse(text.NewReader(src))

	var rows [][]string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		c, ok := n.(*callout.Callout)
		if !ok {
			return ast.WalkContinue, nil
		}

		fold := ""
		if c.Fold != 0 {
			fold = string(rune(c.Fold))
		}
		line := bytes.Count(src[:c.Position], []byte("\n")) + 1
		rows = append(rows, []string{
			c.CalloutType,
			fold,
			view.Truncate(c.Title, 60),
			fmt.Sprintf("%d", line),
		})
		return ast.WalkContinue, nil
	})
	return rows
}
