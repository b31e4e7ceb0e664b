package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-doc-collective/mdc/internal/config"
)

func TestRenderHTML(t *testing.T) {
	cfg := config.Default()
	cfg.Normalize()

	html, err := RenderHTML([]byte("> [!note] Title\n> Body.\n"), cfg, nil)
	require.NoError(t, err)

	assert.Contains(t, string(html), `<div class="callout callout-note">`)
	assert.Contains(t, string(html), `<h3 class="callout-title">Title</h3>`)
	assert.Contains(t, string(html), "<p>Body.</p>")
}

func TestRenderHTML_ConfigApplied(t *testing.T) {
	cfg := &config.Config{
		Elements:   map[string]string{"note": "aside"},
		Symbols:    map[string]string{"warning": "W"},
		EmptyTitle: "blank",
	}
	cfg.Normalize()

	html, err := RenderHTML([]byte("> [!note] A\n\n> [!warning]\n> B.\n"), cfg, nil)
	require.NoError(t, err)

	assert.Contains(t, string(html), `<aside class="callout callout-note">`)
	assert.Contains(t, string(html), `<span class="callout-symbol">W</span>`)
}

func TestRenderHTML_TablesEnabled(t *testing.T) {
	cfg := config.Default()
	cfg.Normalize()

	html, err := RenderHTML([]byte("| a | b |\n|---|---|\n| 1 | 2 |\n"), cfg, nil)
	require.NoError(t, err)
	assert.Contains(t, string(html), "<table>")
}

func TestRunRender_FileToStdout(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(file, []byte("> [!tip] Hint\n> Use mdc.\n"), 0644))

	var stdout, stderr bytes.Buffer
	opts := &renderOptions{configPath: filepath.Join(dir, "missing.yml"), noColor: true}
	require.NoError(t, runRender(file, strings.NewReader(""), &stdout, &stderr, opts))

	assert.Contains(t, stdout.String(), `<div class="callout callout-tip">`)
	assert.Contains(t, stdout.String(), `<h3 class="callout-title">Hint</h3>`)
}

func TestRunRender_StdinToFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "doc.html")

	var stdout, stderr bytes.Buffer
	opts := &renderOptions{
		out:        out,
		configPath: filepath.Join(dir, "missing.yml"),
		noColor:    true,
	}
	stdin := strings.NewReader("> [!note]\n> Body.\n")
	require.NoError(t, runRender("", stdin, &stdout, &stderr, opts))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<div class="callout callout-note">`)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Wrote")
}

func TestRunRender_MissingInputFile(t *testing.T) {
	dir := t.TempDir()
	opts := &renderOptions{configPath: filepath.Join(dir, "missing.yml"), noColor: true}

	err := runRender(filepath.Join(dir, "nope.md"), strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestRunRender_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("empty_title: sometimes\n"), 0644))

	opts := &renderOptions{configPath: cfgPath, noColor: true}
	err := runRender("", strings.NewReader("x"), &bytes.Buffer{}, &bytes.Buffer{}, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
