// Package root provides the root command for the mdc CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-doc-collective/mdc/internal/cmd/completion"
	"github.com/open-doc-collective/mdc/internal/cmd/configcmd"
	"github.com/open-doc-collective/mdc/internal/cmd/convert"
	initcmd "github.com/open-doc-collective/mdc/internal/cmd/init"
	"github.com/open-doc-collective/mdc/internal/cmd/list"
	"github.com/open-doc-collective/mdc/internal/cmd/render"
	"github.com/open-doc-collective/mdc/internal/cmd/serve"
	"github.com/open-doc-collective/mdc/internal/version"
)

// NewCmdRoot creates the root command for mdc.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mdc",
		Short: "Markdown callouts on the command line",
		Long: `mdc renders markdown with Obsidian-style callouts.

A blockquote whose first line starts with a bracketed tag such as
[!note] or [!warning] becomes a styled callout container with an
optional title. mdc renders such documents to HTML, lists the callouts
they contain, converts rendered HTML back to callout markdown, and
serves live previews.

Customize container elements, title symbols and empty-title handling
via 'mdc init' or ~/.config/mdc/config.yml.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/mdc/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	// Set version template
	cmd.SetVersionTemplate("mdc version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(render.NewCmdRender())
	cmd.AddCommand(list.NewCmdList())
	cmd.AddCommand(convert.NewCmdConvert())
	cmd.AddCommand(serve.NewCmdServe())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
