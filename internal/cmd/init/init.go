// Package init provides the init command for mdc.
package init

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-doc-collective/mdc/internal/config"
	"github.com/open-doc-collective/mdc/pkg/callout"
)

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var (
		defaultElement string
		symbols        []string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize mdc configuration",
		Long: `Initialize mdc with your preferred callout rendering settings.

This command will guide you through choosing the container and title
elements, the empty-title fallback, and optional per-type symbols. The
configuration will be saved to ~/.config/mdc/config.yml.`,
		Example: `  # Interactive setup
  mdc init

  # Pre-populate the container element and a couple of symbols
  mdc init --element aside --symbol "warning=(!)" --symbol "note=(i)"`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(defaultElement, symbols)
		},
	}

	cmd.Flags().StringVar(&defaultElement, "element", "", "container element for callouts (e.g., div, aside)")
	cmd.Flags().StringArrayVar(&symbols, "symbol", nil, `per-type symbol as "type=text" (repeatable)`)

	return cmd
}

func runInit(prefillElement string, symbolFlags []string) error {
	configPath := config.DefaultConfigPath()

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Initialization cancelled.")
			return nil
		}
	}

	cfg := config.Default()

	if prefillElement != "" {
		cfg.DefaultElement = prefillElement
	}
	symbols, err := parseSymbolFlags(symbolFlags)
	if err != nil {
		return err
	}
	cfg.Symbols = symbols

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Container element").
				Description("HTML element wrapping each callout").
				Placeholder("div").
				Value(&cfg.DefaultElement).
				Validate(validateElement),

			huh.NewInput().
				Title("Title element").
				Description("HTML element for callout titles").
				Placeholder("h3").
				Value(&cfg.TitleElement).
				Validate(validateElement),

			huh.NewInput().
				Title("Symbol element").
				Description("HTML element wrapping title symbols").
				Placeholder("span").
				Value(&cfg.SymbolElement).
				Validate(validateElement),

			huh.NewSelect[string]().
				Title("Empty-title fallback").
				Description("What to render when a callout has no title").
				Options(
					huh.NewOption("No title header", string(callout.FallbackNone)),
					huh.NewOption("Blank title header", string(callout.FallbackBlank)),
					huh.NewOption("Capitalized callout type", string(callout.FallbackType)),
				).
				Value(&cfg.EmptyTitle),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	fmt.Println("\nYou're all set! Try running:")
	fmt.Println("  mdc render notes.md")
	fmt.Println("  mdc serve ./docs")

	return nil
}

func validateElement(s string) error {
	if s == "" {
		return fmt.Errorf("element is required")
	}
	return nil
}

// parseSymbolFlags turns repeated "type=text" flags into a symbol map.
func parseSymbolFlags(flags []string) (map[string]string, error) {
	if len(flags) == 0 {
		return nil, nil
	}
	symbols := make(map[string]string, len(flags))
	for _, f := range flags {
		typ, text, ok := strings.Cut(f, "=")
		if !ok || strings.TrimSpace(typ) == "" {
			return nil, fmt.Errorf("invalid --symbol %q: expected \"type=text\"", f)
		}
		symbols[strings.ToLower(strings.TrimSpace(typ))] = text
	}
	return symbols, nil
}
