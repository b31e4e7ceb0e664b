package callout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchTitle(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		def      Definition
		consumed int
		ok       bool
	}{
		{
			name:     "tag only",
			line:     "[!note]",
			def:      Definition{Type: "note"},
			consumed: 7,
			ok:       true,
		},
		{
			name:     "tag with title",
			line:     "[!note] Remember this",
			def:      Definition{Type: "note", Title: "Remember this"},
			consumed: 21,
			ok:       true,
		},
		{
			name:     "uppercase tag is lowercased",
			line:     "[!WARNING] Careful",
			def:      Definition{Type: "warning", Title: "Careful"},
			consumed: 18,
			ok:       true,
		},
		{
			name:     "mixed case tag",
			line:     "[!Note]",
			def:      Definition{Type: "note"},
			consumed: 7,
			ok:       true,
		},
		{
			name:     "hyphens and digits in tag",
			line:     "[!faq-2] Q",
			def:      Definition{Type: "faq-2", Title: "Q"},
			consumed: 10,
			ok:       true,
		},
		{
			name:     "fold marker minus",
			line:     "[!faq]- Folded",
			def:      Definition{Type: "faq", Fold: '-', Title: "Folded"},
			consumed: 14,
			ok:       true,
		},
		{
			name:     "fold marker plus without title",
			line:     "[!faq]+",
			def:      Definition{Type: "faq", Fold: '+'},
			consumed: 7,
			ok:       true,
		},
		{
			name:     "whitespace-only title means no title",
			line:     "[!note]   ",
			def:      Definition{Type: "note"},
			consumed: 10,
			ok:       true,
		},
		{
			name:     "title trimmed of trailing whitespace",
			line:     "[!note] Title  ",
			def:      Definition{Type: "note", Title: "Title"},
			consumed: 15,
			ok:       true,
		},
		{
			name:     "no space after tag leaves remainder",
			line:     "[!note]Body text",
			def:      Definition{Type: "note"},
			consumed: 7,
			ok:       true,
		},
		{
			name:     "tab after tag is not a title separator",
			line:     "[!note]\tBody",
			def:      Definition{Type: "note"},
			consumed: 8,
			ok:       true,
		},
		{
			name: "missing bang",
			line: "[note] x",
			ok:   false,
		},
		{
			name: "unclosed bracket",
			line: "[!note Title",
			ok:   false,
		},
		{
			name: "empty tag",
			line: "[!]",
			ok:   false,
		},
		{
			name: "not at line start",
			line: " [!note]",
			ok:   false,
		},
		{
			name: "plain text",
			line: "just a quote",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, consumed, ok := MatchTitle([]byte(tt.line))
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			assert.Equal(t, tt.def, def)
			assert.Equal(t, tt.consumed, consumed)
		})
	}
}
