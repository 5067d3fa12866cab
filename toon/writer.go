package toon

import "strings"

// writer accumulates TOON output lines with an indentation cursor
// (spec §4.1). It has no knowledge of value semantics — only of how
// to compose the reserved line shapes.
type writer struct {
	buf    *strings.Builder
	indent string // two spaces, fixed per spec §6.3
}

// newWriter creates a writer. Indentation is always two spaces.
func newWriter() *writer {
	return &writer{
		buf:    &strings.Builder{},
		indent: strings.Repeat(space, indentWidth),
	}
}

// push adds a line at the specified depth level.
func (w *writer) push(line string, depth int) {
	if w.buf.Len() > 0 {
		w.buf.WriteString(newline)
	}
	for i := 0; i < depth; i++ {
		w.buf.WriteString(w.indent)
	}
	w.buf.WriteString(line)
}

// pushRaw appends content with no indentation or leading newline,
// continuing the current line. The encoder does not call it: a list
// item's map is written on the lines after a bare "-".
func (w *writer) pushRaw(content string) {
	w.buf.WriteString(content)
}

// pushKeyOnly emits "K:" at depth.
func (w *writer) pushKeyOnly(key string, depth int) {
	w.push(key+colon, depth)
}

// pushKeyValue emits "K: V" at depth.
func (w *writer) pushKeyValue(key, value string, depth int) {
	w.push(key+colon+space+value, depth)
}

// pushListItem emits "- V" at depth.
func (w *writer) pushListItem(value string, depth int) {
	w.push(listItemPrefix+value, depth)
}

// pushListItemBare emits "-" alone at depth (opener for a nested
// block under a list item).
func (w *writer) pushListItemBare(depth int) {
	w.push(listItemMarker, depth)
}

// pushTabularHeader emits "@D K1DK2D...Kn" at depth.
func (w *writer) pushTabularHeader(delimiter string, keys []string, depth int) {
	w.push(at+delimiter+strings.Join(keys, delimiter), depth)
}

// pushTabularRow emits "- V1DV2D...Vn" at depth.
func (w *writer) pushTabularRow(delimiter string, values []string, depth int) {
	w.push(listItemPrefix+strings.Join(values, delimiter), depth)
}

// String returns the accumulated content.
func (w *writer) String() string { return w.buf.String() }

// Len returns the current buffer length.
func (w *writer) Len() int { return w.buf.Len() }
