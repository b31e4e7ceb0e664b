package callout

import (
	"regexp"
	"strings"
)

// titleLine matches a callout declaration anchored at the start of a quote
// block's first line: a bracketed tag of word characters and hyphens, an
// optional fold marker, then optionally one or more spaces and the rest of
// the line as the title.
var titleLine = regexp.MustCompile(`^\[!([\w-]+)\]([-+])?(?: +(.*))?`)

// Definition is the parsed form of a callout declaration. It is derived
// once per quote block and consumed immediately by the transformer.
type Definition struct {
	// Type is the lowercased type tag.
	Type string
	// Title is the declared title, trimmed of surrounding whitespace.
	// "" means the declaration had no title (or only whitespace).
	Title string
	// Fold is '+' or '-' when a collapse marker followed the tag, else 0.
	Fold byte
}

// MatchTitle applies the declaration grammar to the first line of a quote
// block. consumed is the number of leading bytes covered by the match,
// including any whitespace separating the declaration from trailing body
// text; everything after it remains ordinary content. ok is false when the
// line does not declare a callout.
func MatchTitle(line []byte) (def Definition, consumed int, ok bool) {
	m := titleLine.FindSubmatchIndex(line)
	if m == nil {
		return Definition{}, 0, false
	}

	def.Type = strings.ToLower(string(line[m[2]:m[3]]))
	if m[4] >= 0 {
		def.Fold = line[m[4]]
	}
	if m[6] >= 0 {
		def.Title = strings.TrimSpace(string(line[m[6]:m[7]]))
	}

	consumed = m[1]
	for consumed < len(line) && (line[consumed] == ' ' || line[consumed] == '\t') {
		consumed++
	}
	return def, consumed, true
}
