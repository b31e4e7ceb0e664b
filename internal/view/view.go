// Package view provides output formatting for mdc commands.
package view

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Format represents an output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
)

// ValidateFormat returns an error for unknown output formats.
func ValidateFormat(format string) error {
	switch Format(format) {
	case FormatTable, FormatJSON, FormatPlain:
		return nil
	}
	return fmt.Errorf("invalid output format %q (expected table, json or plain)", format)
}

// Renderer renders command output in a specific format.
type Renderer struct {
	format Format
	out    io.Writer
	err    io.Writer
}

// NewRenderer creates a renderer writing results to out and status
// messages to errOut.
func NewRenderer(out, errOut io.Writer, format Format, noColor bool) *Renderer {
	if noColor {
		color.NoColor = true
	}
	return &Renderer{format: format, out: out, err: errOut}
}

// Table renders rows under headers, honoring the configured format.
func (r *Renderer) Table(headers []string, rows [][]string) {
	switch r.format {
	case FormatJSON:
		r.tableJSON(headers, rows)
	case FormatPlain:
		r.tablePlain(rows)
	default:
		widths := make([]int, len(headers))
		for i, h := range headers {
			widths[i] = len(h)
		}
		for _, row := range rows {
			for i, cell := range row {
				if i < len(widths) && len(cell) > widths[i] {
					widths[i] = len(cell)
				}
			}
		}

		bold := color.New(color.Bold)
		for i, h := range headers {
			if i > 0 {
				fmt.Fprint(r.out, "  ")
			}
			_, _ = bold.Fprintf(r.out, "%-*s", widths[i], h)
		}
		fmt.Fprintln(r.out)

		for _, row := range rows {
			for i, cell := range row {
				if i > 0 {
					fmt.Fprint(r.out, "  ")
				}
				fmt.Fprintf(r.out, "%-*s", widths[i], cell)
			}
			fmt.Fprintln(r.out)
		}
	}
}

func (r *Renderer) tableJSON(headers []string, rows [][]string) {
	result := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		item := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(row) {
				item[strings.ToLower(header)] = row[i]
			}
		}
		result = append(result, item)
	}

	data, _ := json.MarshalIndent(result, "", "  ")
	fmt.Fprintln(r.out, string(data))
}

func (r *Renderer) tablePlain(rows [][]string) {
	for _, row := range rows {
		fmt.Fprintln(r.out, strings.Join(row, "\t"))
	}
}

// Text renders a plain text line to the output stream.
func (r *Renderer) Text(text string) {
	fmt.Fprintln(r.out, text)
}

// KeyValue renders a key-value pair with a bold key.
func (r *Renderer) KeyValue(key, value string) {
	bold := color.New(color.Bold)
	_, _ = bold.Fprintf(r.out, "%s: ", key)
	fmt.Fprintln(r.out, value)
}

// Success prints a success message to the status stream.
func (r *Renderer) Success(msg string) {
	green := color.New(color.FgGreen)
	_, _ = green.Fprintln(r.err, "✓ "+msg)
}

// Warning prints a warning message to the status stream.
func (r *Renderer) Warning(msg string) {
	yellow := color.New(color.FgYellow)
	_, _ = yellow.Fprintln(r.err, "! "+msg)
}

// Error prints an error message to the status stream.
func (r *Renderer) Error(msg string) {
	red := color.New(color.FgRed)
	_, _ = red.Fprintln(r.err, "✗ "+msg)
}

// Truncate shortens a string to maxLen, appending an ellipsis when it had
// to cut.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
