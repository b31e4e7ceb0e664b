package configcmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-doc-collective/mdc/internal/config"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the current mdc configuration with source indicators.`,
		Example: `  # Show current config
  mdc config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runShow(noColor)
		},
	}

	return cmd
}

func runShow(noColor bool) error {
	if noColor {
		color.NoColor = true
	}

	configPath := config.DefaultConfigPath()

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	// Load full config with env overrides
	cfg, _ := config.LoadWithEnv(configPath)

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value, fileValue string, envVar string) {
		_, _ = bold.Printf("%-16s", label+":")
		if value == "" {
			_, _ = dim.Println("-")
			return
		}

		fmt.Print(value)

		source := "default"
		if fileErr == nil && fileValue == value {
			source = "config"
		}
		if v := os.Getenv(envVar); v != "" && v == value {
			source = envVar
		}

		_, _ = dim.Printf("  (source: %s)\n", source)
	}

	printField("Element", cfg.DefaultElement, fileCfg.DefaultElement, "MDC_DEFAULT_ELEMENT")
	printField("Title element", cfg.TitleElement, fileCfg.TitleElement, "MDC_TITLE_ELEMENT")
	printField("Symbol element", cfg.SymbolElement, fileCfg.SymbolElement, "MDC_SYMBOL_ELEMENT")
	printField("Empty title", cfg.EmptyTitle, fileCfg.EmptyTitle, "MDC_EMPTY_TITLE")

	printMap(bold, dim, "Elements", cfg.Elements)
	printMap(bold, dim, "Symbols", cfg.Symbols)

	fmt.Println()
	_, _ = dim.Printf("Config file: %s\n", configPath)
	if fileErr != nil {
		_, _ = dim.Println("(file not found)")
	}

	return nil
}

// printMap renders a per-type override map one line per type, sorted for
// stable output.
func printMap(bold, dim *color.Color, label string, m map[string]string) {
	_, _ = bold.Printf("%-16s", label+":")
	if len(m) == 0 {
		_, _ = dim.Println("-")
		return
	}
	fmt.Println()

	types := make([]string, 0, len(m))
	for t := range m {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		fmt.Printf("  %-14s%s\n", t, m[t])
	}
}
