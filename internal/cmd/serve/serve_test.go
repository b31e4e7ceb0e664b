package serve

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-doc-collective/mdc/internal/config"
)

func newTestServer(t *testing.T) (*server, string) {
	t.Helper()
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"),
		[]byte("> [!note] Remember\n> Check twice.\n"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "deep.md"),
		[]byte("# Deep\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "secret.txt"),
		[]byte("hidden"), 0644))

	return newServer(dir, config.Default()), dir
}

func TestServeHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServeIndexListsMarkdownFiles(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<a href="/notes.md">notes.md</a>`)
	assert.Contains(t, body, `<a href="/sub/deep.md">sub/deep.md</a>`)
	assert.NotContains(t, body, "secret.txt")
}

func TestServeRendersCallouts(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/notes.md", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<div class="callout callout-note">`)
	assert.Contains(t, body, `<h3 class="callout-title">Remember</h3>`)
	assert.Contains(t, body, "Check twice.")
}

func TestServeNestedPath(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sub/deep.md", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<h1>Deep</h1>")
}

func TestServeMissingFile(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing.md", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServeRejectsNonMarkdown(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/secret.txt", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResolveRejectsTraversal(t *testing.T) {
	srv, _ := newTestServer(t)

	_, ok := srv.resolve("../outside.md")
	assert.False(t, ok)

	_, ok = srv.resolve("sub/../../outside.md")
	assert.False(t, ok)

	_, ok = srv.resolve("")
	assert.False(t, ok)
}
