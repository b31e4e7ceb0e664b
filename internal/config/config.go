// Package config provides configuration management for mdc.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/open-doc-collective/mdc/pkg/callout"
)

// Config holds the mdc configuration. All fields are optional; zero values
// fall back to the defaults in Default.
type Config struct {
	DefaultElement string            `yaml:"default_element,omitempty"`
	Elements       map[string]string `yaml:"elements,omitempty"`
	TitleElement   string            `yaml:"title_element,omitempty"`
	SymbolElement  string            `yaml:"symbol_element,omitempty"`
	Symbols        map[string]string `yaml:"symbols,omitempty"`
	EmptyTitle     string            `yaml:"empty_title,omitempty"`
}

// elementName matches a bare element name as it may appear in a tag.
var elementName = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*$`)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DefaultElement: "div",
		TitleElement:   "h3",
		SymbolElement:  "span",
		EmptyTitle:     string(callout.FallbackNone),
	}
}

// Normalize fills in defaults for unset fields and lowercases per-type map
// keys so lookups match the lowercased callout types.
func (c *Config) Normalize() {
	def := Default()
	if c.DefaultElement == "" {
		c.DefaultElement = def.DefaultElement
	}
	if c.TitleElement == "" {
		c.TitleElement = def.TitleElement
	}
	if c.SymbolElement == "" {
		c.SymbolElement = def.SymbolElement
	}
	if c.EmptyTitle == "" {
		c.EmptyTitle = def.EmptyTitle
	}
	c.Elements = lowerKeys(c.Elements)
	c.Symbols = lowerKeys(c.Symbols)
}

func lowerKeys(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[strings.ToLower(k)] = v
	}
	return out
}

// Validate checks element names and the empty-title policy.
func (c *Config) Validate() error {
	for name, value := range map[string]string{
		"default_element": c.DefaultElement,
		"title_element":   c.TitleElement,
		"symbol_element":  c.SymbolElement,
	} {
		if value != "" && !elementName.MatchString(value) {
			return fmt.Errorf("%s: %q is not a valid element name", name, value)
		}
	}
	for typ, value := range c.Elements {
		if !elementName.MatchString(value) {
			return fmt.Errorf("elements.%s: %q is not a valid element name", typ, value)
		}
	}

	switch callout.TitleFallback(c.EmptyTitle) {
	case "", callout.FallbackNone, callout.FallbackBlank, callout.FallbackType:
		return nil
	}
	return fmt.Errorf("empty_title must be %q, %q or %q, got %q",
		callout.FallbackNone, callout.FallbackBlank, callout.FallbackType, c.EmptyTitle)
}

// Options converts the configuration into callout extension options.
func (c *Config) Options() []callout.Option {
	opts := []callout.Option{
		callout.WithDefaultElement(c.DefaultElement),
		callout.WithTitleElement(c.TitleElement),
		callout.WithSymbolElement(c.SymbolElement),
		callout.WithTitleFallback(callout.TitleFallback(c.EmptyTitle)),
	}
	if len(c.Elements) > 0 {
		opts = append(opts, callout.WithElements(c.Elements))
	}
	if len(c.Symbols) > 0 {
		opts = append(opts, callout.WithSymbols(c.Symbols))
	}
	return opts
}

// LoadFromEnv overrides configuration values from MDC_* environment
// variables when they are set and non-empty.
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("MDC_DEFAULT_ELEMENT"); v != "" {
		c.DefaultElement = v
	}
	if v := os.Getenv("MDC_TITLE_ELEMENT"); v != "" {
		c.TitleElement = v
	}
	if v := os.Getenv("MDC_SYMBOL_ELEMENT"); v != "" {
		c.SymbolElement = v
	}
	if v := os.Getenv("MDC_EMPTY_TITLE"); v != "" {
		c.EmptyTitle = v
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "mdc", "config.yml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".mdc", "config.yml")
	}
	return filepath.Join(home, ".config", "mdc", "config.yml")
}

// Save writes the configuration to the specified path, creating the
// directory when needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

// LoadWithEnv loads configuration from file, falls back to defaults when
// the file is missing, applies environment overrides and normalizes the
// result.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		cfg = Default()
	}

	cfg.LoadFromEnv()
	cfg.Normalize()
	return cfg, nil
}
