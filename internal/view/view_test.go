package view

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(format Format) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	return NewRenderer(out, errOut, format, true), out, errOut
}

func TestValidateFormat(t *testing.T) {
	assert.NoError(t, ValidateFormat("table"))
	assert.NoError(t, ValidateFormat("json"))
	assert.NoError(t, ValidateFormat("plain"))
	assert.Error(t, ValidateFormat("xml"))
}

func TestTable(t *testing.T) {
	r, out, _ := newTestRenderer(FormatTable)

	r.Table([]string{"TYPE", "TITLE"}, [][]string{
		{"note", "Remember"},
		{"warning", "Careful"},
	})

	got := out.String()
	assert.Contains(t, got, "TYPE")
	assert.Contains(t, got, "note")
	assert.Contains(t, got, "warning")
	// Columns are aligned: "note" is padded to the width of "warning".
	assert.Contains(t, got, "note     Remember")
}

func TestTableJSON(t *testing.T) {
	r, out, _ := newTestRenderer(FormatJSON)

	r.Table([]string{"TYPE", "TITLE"}, [][]string{{"note", "Remember"}})

	var parsed []map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &parsed))
	require.Len(t, parsed, 1)
	assert.Equal(t, "note", parsed[0]["type"])
	assert.Equal(t, "Remember", parsed[0]["title"])
}

func TestTablePlain(t *testing.T) {
	r, out, _ := newTestRenderer(FormatPlain)

	r.Table([]string{"TYPE", "TITLE"}, [][]string{{"note", "Remember"}})

	assert.Equal(t, "note\tRemember\n", out.String())
}

func TestStatusMessages(t *testing.T) {
	r, out, errOut := newTestRenderer(FormatTable)

	r.Success("done")
	r.Warning("careful")
	r.Error("failed")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "✓ done")
	assert.Contains(t, errOut.String(), "! careful")
	assert.Contains(t, errOut.String(), "✗ failed")
}

func TestKeyValue(t *testing.T) {
	r, out, _ := newTestRenderer(FormatTable)

	r.KeyValue("default_element", "div")

	assert.Equal(t, "default_element: div\n", out.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exact", Truncate("exact", 5))
	assert.Equal(t, "long st...", Truncate("long string here", 10))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
}
