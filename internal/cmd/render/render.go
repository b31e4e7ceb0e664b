// Package render provides the render command for mdc.
package render

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/open-doc-collective/mdc/internal/config"
	"github.com/open-doc-collective/mdc/internal/view"
	"github.com/open-doc-collective/mdc/pkg/callout"
)

type renderOptions struct {
	out        string
	configPath string
	noColor    bool
}

// NewCmdRender creates the render command.
func NewCmdRender() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render markdown with callouts to HTML",
		Long: `Render a markdown document to HTML, rewriting callout blockquotes
into styled containers. Reads from stdin when no file is given.`,
		Example: `  # Render a file to stdout
  mdc render notes.md

  # Render stdin into a file
  cat notes.md | mdc render --out notes.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			if opts.configPath == "" {
				opts.configPath = config.DefaultConfigPath()
			}

			file := ""
			if len(args) > 0 {
				file = args[0]
			}
			return runRender(file, os.Stdin, os.Stdout, os.Stderr, opts)
		},
	}

	cmd.Flags().StringVar(&opts.out, "out", "", "write HTML to this file instead of stdout")

	return cmd
}

func runRender(file string, stdin io.Reader, stdout, stderr io.Writer, opts *renderOptions) error {
	cfg, err := config.LoadWithEnv(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w (run 'mdc init' to reconfigure)", err)
	}

	var src []byte
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

	renderer := view.NewRenderer(stdout, stderr, view.FormatPlain, opts.noColor)
	html, err := RenderHTML(src, cfg, func(format string, args ...any) {
		renderer.Warning(fmt.Sprintf(format, args...))
	})
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}

	if opts.out != "" {
		if err := os.WriteFile(opts.out, html, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", opts.out, err)
		}
		renderer.Success(fmt.Sprintf("Wrote %s", opts.out))
		return nil
	}

	_, err = stdout.Write(html)
	return err
}

// RenderHTML converts markdown to HTML with the configured callout
// extension and GFM tables enabled.
func RenderHTML(src []byte, cfg *config.Config, diag func(format string, args ...any)) ([]byte, error) {
	opts := cfg.Options()
	if diag != nil {
		opts = append(opts, callout.WithDiagnostic(diag))
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.Table, callout.New(opts...)),
	)

	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
