package toon

import "strings"

// lineKind classifies a logicalLine per spec §4.5.
type lineKind int

const (
	lineBlank lineKind = iota
	lineScalar
	lineListItem
	lineKeyOnly
	lineKeyValue
	lineTabularHeader
)

// logicalLine is one physical line of input after scanning (spec
// §4.5): its indentation, its 1-based line number, its shape, and the
// raw key/value text slices relevant to that shape. Escape sequences
// inside quotes are NOT unescaped here — that happens lazily in the
// parser, mirroring the teacher's zero-copy scanning design.
type logicalLine struct {
	raw        string
	content    string // raw with leading indentation trimmed
	indent     int    // count of leading space bytes
	lineNumber int
	hasTab     bool // true if any tab appeared in the leading indentation
	kind       lineKind

	key       string // KeyOnly/KeyValue: the raw (possibly quoted) key text
	keyQuoted bool
	value     string // KeyValue/ListItem/Scalar: the raw value text (may be empty)
	delimiter string // TabularHeader: the delimiter character
}

// scan splits input into logicalLines, classifying each. Trailing
// all-blank lines are dropped so the caller never has to special-case
// a trailing newline.
func scan(input string) []logicalLine {
	raw := strings.Split(input, "\n")
	lines := make([]logicalLine, 0, len(raw))

	for i, text := range raw {
		indent, hasTab := leadingIndent(text)
		content := text[indentByteLen(text):]
		trimmed := strings.TrimSpace(text)

		ll := logicalLine{
			raw:        text,
			content:    content,
			indent:     indent,
			lineNumber: i + 1,
			hasTab:     hasTab,
		}

		if trimmed == "" {
			ll.kind = lineBlank
			lines = append(lines, ll)
			continue
		}

		classifyLine(&ll)
		lines = append(lines, ll)
	}

	for len(lines) > 0 && lines[len(lines)-1].kind == lineBlank {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// leadingIndent counts leading space bytes (spec §4.5: "raw byte
// count of leading spaces; no tabs in indentation in strict mode").
// Tabs are counted too (as zero-width for the indent tally) so the
// caller can still report a tab-in-indentation error at the right
// line; hasTab signals that a tab was seen.
func leadingIndent(s string) (spaces int, hasTab bool) {
	for _, ch := range s {
		switch ch {
		case ' ':
			spaces++
		case '\t':
			hasTab = true
		default:
			return spaces, hasTab
		}
	}
	return spaces, hasTab
}

func indentByteLen(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

// classifyLine determines ll.kind and populates its key/value/
// delimiter fields, given that ll.content is known non-blank.
func classifyLine(ll *logicalLine) {
	content := ll.content

	if strings.HasPrefix(content, at) && len(content) > 1 {
		ll.kind = lineTabularHeader
		ll.delimiter = string(content[1])
		ll.value = content[2:]
		return
	}

	if content == listItemMarker || strings.HasPrefix(content, listItemPrefix) {
		ll.kind = lineListItem
		if content == listItemMarker {
			ll.value = ""
		} else {
			ll.value = content[len(listItemPrefix):]
		}
		return
	}

	// The empty-collection markers end in ":" and would otherwise be
	// misread by splitKeyColon as a key "[0]"/"{0}" with no value.
	if content == emptyListMarker || content == emptyMapMarker {
		ll.kind = lineScalar
		ll.value = content
		return
	}

	if key, quoted, rest, ok := splitKeyColon(content); ok {
		value := strings.TrimSpace(rest)
		ll.key = key
		ll.keyQuoted = quoted
		if value == "" {
			ll.kind = lineKeyOnly
		} else {
			ll.kind = lineKeyValue
			ll.value = value
		}
		return
	}

	ll.kind = lineScalar
	ll.value = content
}

// splitKeyColon quote-aware-scans content for a key followed by the
// first unquoted colon, per spec §4.5/§4.6: a colon inside a
// double-quoted key does not terminate the key. Returns ok=false if
// content has no such colon (e.g. "- x", a bare scalar, or a quoted
// scalar with no trailing colon).
func splitKeyColon(content string) (key string, quoted bool, rest string, ok bool) {
	if len(content) == 0 {
		return "", false, "", false
	}

	if content[0] == doubleQuote[0] {
		end, closed := scanQuoted(content, 0)
		if !closed {
			return "", false, "", false
		}
		after := content[end:]
		trimmedAfter := strings.TrimLeft(after, " ")
		if strings.HasPrefix(trimmedAfter, colon) {
			return content[1 : end-1], true, trimmedAfter[1:], true
		}
		return "", false, "", false
	}

	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '"':
			end, closed := scanQuoted(content, i)
			if !closed {
				return "", false, "", false
			}
			i = end - 1
		case ':':
			return content[:i], false, content[i+1:], true
		}
	}
	return "", false, "", false
}

// scanQuoted scans a double-quoted span starting at content[start]
// (which must be '"'), honoring backslash escapes, and returns the
// index just past the closing quote. closed is false if the string
// runs off the end of content without a closing quote.
func scanQuoted(content string, start int) (end int, closed bool) {
	i := start + 1
	for i < len(content) {
		switch content[i] {
		case '\\':
			i += 2
			continue
		case '"':
			return i + 1, true
		}
		i++
	}
	return i, false
}

// splitDelimited splits content on delimiter, quote-aware: a
// delimiter byte inside a double-quoted span does not split. Used for
// tabular headers and rows (spec §4.4, §4.6).
func splitDelimited(content string, delimiter byte) []string {
	var fields []string
	start := 0
	i := 0
	for i < len(content) {
		switch content[i] {
		case '"':
			end, closed := scanQuoted(content, i)
			if !closed {
				i = len(content)
				continue
			}
			i = end
			continue
		default:
			if content[i] == delimiter {
				fields = append(fields, content[start:i])
				i++
				start = i
				continue
			}
			i++
		}
	}
	fields = append(fields, content[start:])
	return fields
}
