package convert

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunConvert_Stdin(t *testing.T) {
	input := "<div class=\"callout callout-note\">\n" +
		"<h3 class=\"callout-title\">Title</h3>\n" +
		"<p>Body.</p>\n" +
		"</div>\n"

	var stdout, stderr bytes.Buffer
	opts := &convertOptions{noColor: true}
	require.NoError(t, runConvert("", strings.NewReader(input), &stdout, &stderr, opts))

	assert.Equal(t, "> [!note] Title\n> Body.\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunConvert_FileToFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "page.html")
	out := filepath.Join(dir, "page.md")
	require.NoError(t, os.WriteFile(in, []byte("<p>hello</p>\n"), 0644))

	var stdout, stderr bytes.Buffer
	opts := &convertOptions{out: out, noColor: true}
	require.NoError(t, runConvert(in, strings.NewReader(""), &stdout, &stderr, opts))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
	assert.Contains(t, stderr.String(), "Wrote")
}

func TestRunConvert_WarningsReported(t *testing.T) {
	input := "<div class=\"callout callout-note\">\n<p>oops\n"

	var stdout, stderr bytes.Buffer
	opts := &convertOptions{noColor: true}
	require.NoError(t, runConvert("", strings.NewReader(input), &stdout, &stderr, opts))

	assert.Contains(t, stderr.String(), "unclosed callout container")
	assert.Contains(t, stdout.String(), "oops")
}

func TestRunConvert_MissingFile(t *testing.T) {
	opts := &convertOptions{noColor: true}
	err := runConvert("/nonexistent/page.html", strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}
