package callout

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// revertPlaceholder marks where callout blocks sit while the surrounding
// HTML goes through the generic converter. The format survives markdown
// conversion untouched (no underscores, asterisks or brackets).
const (
	revertPlaceholderPrefix = "MDCALLOUT"
	revertPlaceholderSuffix = "END"
)

// calloutOpen matches the opening tag of a rendered callout container and
// captures the element name and the type class.
var calloutOpen = regexp.MustCompile(`<([a-zA-Z][a-zA-Z0-9-]*)\s+class="callout callout-([\w-]+)">`)

// titleOpen matches the opening tag of a rendered title block.
var titleOpen = regexp.MustCompile(`^<([a-zA-Z][a-zA-Z0-9-]*)\s+class="callout-title">`)

// symbolOpen matches the opening tag of a rendered symbol wrapper.
var symbolOpen = regexp.MustCompile(`^<([a-zA-Z][a-zA-Z0-9-]*)\s+class="callout-symbol">`)

var anyTag = regexp.MustCompile(`<[^>]*>`)

// FromHTML converts HTML produced by the callout renderer back to markdown
// with `> [!type] Title` quote syntax. Containers whose close tag is
// missing are left in place and reported as warnings; conversion of the
// rest of the document continues.
func FromHTML(input string) (string, []string, error) {
	var (
		warnings     []string
		replacements = map[int]string{}
		out          strings.Builder
	)

	rest := input
	next := 0
	for {
		loc := calloutOpen.FindStringSubmatchIndex(rest)
		if loc == nil {
			out.WriteString(rest)
			break
		}
		element := rest[loc[2]:loc[3]]
		calloutType := strings.ToLower(rest[loc[4]:loc[5]])
		out.WriteString(rest[:loc[0]])

		tail := rest[loc[1]:]
		closeStart, closeEnd, ok := findMatchingClose(tail, element)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unclosed callout container %q, leaving markup as-is", calloutType))
			out.WriteString(rest[loc[0]:loc[1]])
			rest = tail
			continue
		}

		quoted, nested, err := revertCallout(calloutType, tail[:closeStart])
		if err != nil {
			return "", warnings, err
		}
		warnings = append(warnings, nested...)
		replacements[next] = quoted
		out.WriteString(formatRevertPlaceholder(next))
		next++
		rest = tail[closeEnd:]
	}

	converted, err := htmltomarkdown.ConvertString(out.String())
	if err != nil {
		return "", warnings, err
	}
	converted = strings.TrimSpace(converted)
	for i := 0; i < next; i++ {
		converted = strings.Replace(converted, formatRevertPlaceholder(i), replacements[i], 1)
	}
	return converted, warnings, nil
}

// revertCallout rebuilds quote syntax for one container body. Nested
// callouts in the body are handled by recursion through FromHTML.
func revertCallout(calloutType, body string) (string, []string, error) {
	title, body, warnings := splitTitle(body)

	converted, nested, err := FromHTML(body)
	if err != nil {
		return "", warnings, err
	}
	warnings = append(warnings, nested...)

	var sb strings.Builder
	sb.WriteString("> [!")
	sb.WriteString(calloutType)
	sb.WriteString("]")
	if title != "" {
		sb.WriteString(" ")
		sb.WriteString(title)
	}
	if converted != "" {
		for _, line := range strings.Split(converted, "\n") {
			sb.WriteString("\n>")
			if line != "" {
				sb.WriteString(" ")
				sb.WriteString(line)
			}
		}
	}
	return sb.String(), warnings, nil
}

// splitTitle extracts the rendered title block from the start of a
// container body, returning the plain title text and the remaining body.
func splitTitle(body string) (string, string, []string) {
	var warnings []string

	trimmed := strings.TrimLeft(body, " \t\n")
	m := titleOpen.FindStringSubmatchIndex(trimmed)
	if m == nil {
		return "", body, nil
	}
	element := trimmed[m[2]:m[3]]

	tail := trimmed[m[1]:]
	closeStart, closeEnd, ok := findMatchingClose(tail, element)
	if !ok {
		warnings = append(warnings, "unclosed callout title, treating it as body content")
		return "", body, warnings
	}

	title := tail[:closeStart]

	// Drop the symbol wrapper so its text does not bleed into the title.
	if sm := symbolOpen.FindStringSubmatchIndex(title); sm != nil {
		symElement := title[sm[2]:sm[3]]
		symTail := title[sm[1]:]
		if _, ce, ok := findMatchingClose(symTail, symElement); ok {
			title = title[:sm[0]] + symTail[ce:]
		}
	}

	title = strings.TrimSpace(html.UnescapeString(anyTag.ReplaceAllString(title, "")))
	return title, tail[closeEnd:], warnings
}

// findMatchingClose scans forward through s for the close tag matching an
// already-consumed opening tag of the named element. A nesting counter is
// incremented for each nested opening of the same element and decremented
// on each close while positive; the first close reached at depth zero is
// the match. ok is false when the element is never closed.
func findMatchingClose(s, element string) (start, end int, ok bool) {
	openTag := "<" + element
	closeTag := "</" + element + ">"

	depth := 0
	pos := 0
	for pos < len(s) {
		openIdx := indexOpenTag(s[pos:], openTag)
		closeIdx := strings.Index(s[pos:], closeTag)
		if closeIdx < 0 {
			return 0, 0, false
		}
		if openIdx >= 0 && openIdx < closeIdx {
			depth++
			pos += openIdx + len(openTag)
			continue
		}
		if depth == 0 {
			return pos + closeIdx, pos + closeIdx + len(closeTag), true
		}
		depth--
		pos += closeIdx + len(closeTag)
	}
	return 0, 0, false
}

// indexOpenTag finds the next occurrence of openTag that is a whole
// element name, not a prefix of a longer one.
func indexOpenTag(s, openTag string) int {
	offset := 0
	for {
		idx := strings.Index(s[offset:], openTag)
		if idx < 0 {
			return -1
		}
		after := offset + idx + len(openTag)
		if after >= len(s) || isNameDelimiter(s[after]) {
			return offset + idx
		}
		offset = after
	}
}

func isNameDelimiter(c byte) bool {
	return c == '>' || c == ' ' || c == '\t' || c == '\n' || c == '/'
}

func formatRevertPlaceholder(id int) string {
	return fmt.Sprintf("%s%d%s", revertPlaceholderPrefix, id, revertPlaceholderSuffix)
}
