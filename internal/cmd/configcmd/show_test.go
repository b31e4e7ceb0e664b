package configcmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/open-doc-collective/mdc/internal/config"
)

func TestRunShow_WithConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg := &config.Config{
		DefaultElement: "aside",
		TitleElement:   "h4",
		Symbols:        map[string]string{"warning": "(!)"},
		EmptyTitle:     "blank",
	}
	configPath := filepath.Join(tmpDir, "mdc", "config.yml")
	require.NoError(t, cfg.Save(configPath))

	require.NoError(t, runShow(true))
}

func TestRunShow_NoConfigFile(t *testing.T) {
	for _, v := range []string{"MDC_DEFAULT_ELEMENT", "MDC_TITLE_ELEMENT", "MDC_SYMBOL_ELEMENT", "MDC_EMPTY_TITLE"} {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	require.NoError(t, runShow(true))
}

func TestRunShow_EnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("MDC_DEFAULT_ELEMENT", "section")

	require.NoError(t, runShow(true))
}
