package toon

import "strings"

// parser is an indentation-aware recursive-descent parser over a
// pre-scanned line stream (spec §4.6), grounded on the teacher's
// structuralParser: a cursor (pos) over a flat slice of classified
// lines, with block-shaped helpers that advance pos and return once
// the block's indent is exhausted.
type parser struct {
	lines []logicalLine
	pos   int
	opts  *DecodeOptions
}

func newParser(lines []logicalLine, opts *DecodeOptions) *parser {
	return &parser{lines: lines, opts: opts}
}

// parse is the entry point (spec §4.6).
func (p *parser) parse() (Value, error) {
	if len(p.lines) == 0 {
		return Null(), nil
	}

	if p.opts.Strict {
		if err := p.validateGlobalIndentation(); err != nil {
			return Value{}, err
		}
	}

	first := p.firstNonBlank()
	if first == nil {
		return Null(), nil
	}

	switch first.kind {
	case lineTabularHeader:
		return p.parseTabularBlock(first.indent)
	case lineScalar:
		if len(p.nonBlankLines()) == 1 {
			switch first.value {
			case emptyListMarker:
				return List(), nil
			case emptyMapMarker:
				return Map(nil), nil
			default:
				return p.parseScalarToken(first.value, first.lineNumber, p.opts.Delimiter)
			}
		}
		return Value{}, newDecodeError(KindSyntaxError, first.lineNumber, "unexpected scalar line followed by more input")
	case lineListItem:
		return p.parseListBlock(first.indent)
	case lineKeyOnly, lineKeyValue:
		return p.parseObjectBlock(first.indent)
	default:
		return Value{}, newDecodeError(KindSyntaxError, first.lineNumber, "unrecognized document shape")
	}
}

func (p *parser) firstNonBlank() *logicalLine {
	for i := range p.lines {
		if p.lines[i].kind != lineBlank {
			p.pos = i
			return &p.lines[i]
		}
	}
	return nil
}

func (p *parser) nonBlankLines() []logicalLine {
	out := make([]logicalLine, 0, len(p.lines))
	for _, l := range p.lines {
		if l.kind != lineBlank {
			out = append(out, l)
		}
	}
	return out
}

// validateGlobalIndentation enforces the tab and multiple-of-two
// rules of spec §4.8 across every non-blank line. The "+2 on
// increase, any multiple of 2 on decrease" rule is checked locally
// during block descent instead, since it is relative to the parent
// block's indent.
func (p *parser) validateGlobalIndentation() error {
	for i := range p.lines {
		l := &p.lines[i]
		if l.kind == lineBlank {
			continue
		}
		if l.hasTab {
			return newDecodeError(KindIndentationError, l.lineNumber, "tab characters are not allowed in indentation")
		}
		if l.indent%indentWidth != 0 {
			return newDecodeError(KindIndentationError, l.lineNumber, "indentation must be a multiple of two spaces")
		}
	}
	return nil
}

// skipBlank advances past a blank line if present, honoring strict
// mode's "no blank lines inside a structured block" rule (spec §4.8).
// Returns true if it consumed a blank line.
func (p *parser) skipBlank() (bool, error) {
	if p.pos >= len(p.lines) {
		return false, nil
	}
	if p.lines[p.pos].kind != lineBlank {
		return false, nil
	}
	if p.opts.Strict {
		return false, newDecodeError(KindStructuralError, p.lines[p.pos].lineNumber, "blank line not allowed inside a structured block")
	}
	p.pos++
	return true, nil
}

// parseObjectBlock parses a sequence of KeyOnly/KeyValue lines all at
// exactly indent, building a Map (spec §4.6).
func (p *parser) parseObjectBlock(indent int) (Value, error) {
	om := NewOrderedMap()

	for p.pos < len(p.lines) {
		if skipped, err := p.skipBlank(); err != nil {
			return Value{}, err
		} else if skipped {
			continue
		}
		if p.pos >= len(p.lines) {
			break
		}
		line := &p.lines[p.pos]
		if line.indent < indent {
			break
		}
		if line.indent != indent {
			return Value{}, newDecodeError(KindIndentationError, line.lineNumber, "unexpected indentation inside object block")
		}
		if line.kind != lineKeyOnly && line.kind != lineKeyValue {
			return Value{}, newDecodeError(KindSyntaxError, line.lineNumber, "expected a key inside object block")
		}

		key, err := p.resolveKeyText(line.key, line.keyQuoted, line.lineNumber)
		if err != nil {
			return Value{}, err
		}
		if _, dup := om.Get(key); dup {
			return Value{}, newDecodeErrorToken(KindStructuralError, line.lineNumber, "duplicate key in map", key)
		}

		var value Value
		lineNum := line.lineNumber
		p.pos++

		if line.kind == lineKeyValue {
			switch line.value {
			case emptyListMarker:
				value = List()
			case emptyMapMarker:
				value = Map(nil)
			default:
				value, err = p.parseScalarToken(line.value, lineNum, p.opts.Delimiter)
			}
		} else {
			value, err = p.parseNestedBlock(indent)
		}
		if err != nil {
			return Value{}, err
		}
		om.Set(key, value)
	}

	return Map(om), nil
}

// parseNestedBlock handles the block that follows a KeyOnly line or a
// bare list-item opener at parentIndent: it peeks the next line and,
// if indented exactly two spaces deeper, recurses into the
// appropriate block kind (spec §4.6 "block descent"). If no such line
// follows, the value is Null.
func (p *parser) parseNestedBlock(parentIndent int) (Value, error) {
	for {
		if p.pos >= len(p.lines) {
			return Null(), nil
		}
		if p.lines[p.pos].kind == lineBlank {
			if skipped, err := p.skipBlank(); err != nil {
				return Value{}, err
			} else if skipped {
				continue
			}
		}
		break
	}
	if p.pos >= len(p.lines) {
		return Null(), nil
	}

	next := &p.lines[p.pos]
	if next.indent <= parentIndent {
		return Null(), nil
	}
	if next.indent != parentIndent+indentWidth {
		return Value{}, newDecodeError(KindIndentationError, next.lineNumber, "nested block must be indented exactly two spaces deeper")
	}

	switch next.kind {
	case lineScalar:
		switch next.value {
		case emptyListMarker:
			p.pos++
			return List(), nil
		case emptyMapMarker:
			p.pos++
			return Map(nil), nil
		default:
			return Value{}, newDecodeError(KindSyntaxError, next.lineNumber, "unexpected scalar line inside block")
		}
	case lineTabularHeader:
		return p.parseTabularBlock(next.indent)
	case lineListItem:
		return p.parseListBlock(next.indent)
	case lineKeyOnly, lineKeyValue:
		return p.parseObjectBlock(next.indent)
	default:
		return Value{}, newDecodeError(KindSyntaxError, next.lineNumber, "unrecognized nested block shape")
	}
}

// parseListBlock parses a sequence of ListItem lines all at exactly
// indent, building a List (spec §4.3, §4.6).
func (p *parser) parseListBlock(indent int) (Value, error) {
	var items []Value

	for p.pos < len(p.lines) {
		if skipped, err := p.skipBlank(); err != nil {
			return Value{}, err
		} else if skipped {
			continue
		}
		if p.pos >= len(p.lines) {
			break
		}
		line := &p.lines[p.pos]
		if line.indent < indent {
			break
		}
		if line.indent != indent {
			return Value{}, newDecodeError(KindIndentationError, line.lineNumber, "unexpected indentation inside list block")
		}
		if line.kind != lineListItem {
			break
		}

		lineNum := line.lineNumber
		bare := line.value == ""
		p.pos++

		var item Value
		var err error
		switch {
		case line.value == emptyListMarker:
			item = List()
		case line.value == emptyMapMarker:
			item = Map(nil)
		case bare:
			item, err = p.parseNestedBlock(indent)
		default:
			item, err = p.parseScalarToken(line.value, lineNum, p.opts.Delimiter)
		}
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}

	return List(items...), nil
}

// parseTabularBlock parses a TabularHeader line at indent plus its
// following rows (spec §4.4, §4.6).
func (p *parser) parseTabularBlock(indent int) (Value, error) {
	header := p.lines[p.pos]
	delim := header.delimiter
	if !isValidDelimiter(delim) {
		return Value{}, newDecodeErrorToken(KindTabularError, header.lineNumber, "invalid tabular delimiter", delim)
	}

	rawKeys := splitDelimited(header.value, delim[0])
	if len(rawKeys) == 0 || (len(rawKeys) == 1 && strings.TrimSpace(rawKeys[0]) == "") {
		return Value{}, newDecodeError(KindTabularError, header.lineNumber, "tabular header has no columns")
	}

	keys := make([]string, len(rawKeys))
	seen := make(map[string]bool, len(rawKeys))
	for i, raw := range rawKeys {
		cell := strings.TrimSpace(raw)
		if p.opts.Strict && i == len(rawKeys)-1 && cell == "" {
			return Value{}, newDecodeError(KindTabularError, header.lineNumber, "trailing delimiter in tabular header")
		}
		key, err := p.parseCellAsString(cell, header.lineNumber)
		if err != nil {
			return Value{}, err
		}
		if seen[key] {
			return Value{}, newDecodeErrorToken(KindTabularError, header.lineNumber, "duplicate column key in tabular header", key)
		}
		seen[key] = true
		keys[i] = key
	}
	p.pos++

	var rows []Value
	for p.pos < len(p.lines) {
		if skipped, err := p.skipBlank(); err != nil {
			return Value{}, err
		} else if skipped {
			continue
		}
		if p.pos >= len(p.lines) {
			break
		}
		line := &p.lines[p.pos]
		if line.indent != indent || line.kind != lineListItem || line.value == "" {
			break
		}

		rawCells := splitDelimited(line.value, delim[0])
		if p.opts.Strict && len(rawCells) > 0 && strings.TrimSpace(rawCells[len(rawCells)-1]) == "" {
			return Value{}, newDecodeError(KindTabularError, line.lineNumber, "trailing delimiter in tabular row")
		}
		if len(rawCells) != len(keys) {
			return Value{}, newDecodeError(KindTabularError, line.lineNumber, "tabular row has the wrong number of cells")
		}

		om := NewOrderedMap()
		for i, raw := range rawCells {
			cell := strings.TrimSpace(raw)
			val, err := p.parseScalarToken(cell, line.lineNumber, delim)
			if err != nil {
				return Value{}, err
			}
			om.Set(keys[i], val)
		}
		rows = append(rows, Map(om))
		p.pos++
	}

	return List(rows...), nil
}

// resolveKeyText turns a scanned key token into its final string: if
// it was quoted, unescape it; otherwise use it as-is. Keys are always
// strings regardless of their shape (unlike values, they are never
// classified as bool/number/null).
func (p *parser) resolveKeyText(key string, quoted bool, line int) (string, error) {
	if !quoted {
		return key, nil
	}
	unescaped, err := unescapeString(key)
	if err != nil {
		if de, ok := err.(*DecodeError); ok {
			de.Line = line
			return "", de
		}
		return "", err
	}
	return unescaped, nil
}

// parseCellAsString parses a tabular header cell: quoted cells are
// unescaped strings; bare cells are used literally (column keys never
// undergo bool/number/null classification).
func (p *parser) parseCellAsString(cell string, line int) (string, error) {
	if strings.HasPrefix(cell, doubleQuote) {
		inner, ok := stripQuotes(cell)
		if !ok {
			return "", newDecodeErrorToken(KindSyntaxError, line, "unterminated quoted column key", cell)
		}
		s, err := unescapeString(inner)
		if err != nil {
			if de, ok := err.(*DecodeError); ok {
				de.Line = line
				return "", de
			}
			return "", err
		}
		return s, nil
	}
	return cell, nil
}

// parseScalarToken classifies a raw (already delimiter-split and
// whitespace-trimmed) value token per spec §4.7: quoted string,
// true/false/null, numeric literal, or fall-through string. In strict
// mode, a token that lands on "string" but would itself require
// quoting per §4.2 is rejected (QuotingError/NumericError — the
// scenario in spec S6). delimiter is the delimiter active for this
// token's line: the document-wide DecodeOptions.Delimiter outside a
// tabular block, or the tabular block's own declared @D delimiter for
// cells inside one — a cell must be checked against the delimiter that
// actually splits it, not the document default.
func (p *parser) parseScalarToken(token string, line int, delimiter string) (Value, error) {
	if strings.HasPrefix(token, doubleQuote) {
		inner, ok := stripQuotes(token)
		if !ok {
			return Value{}, newDecodeErrorToken(KindSyntaxError, line, "unterminated string: missing closing quote", token)
		}
		s, err := unescapeString(inner)
		if err != nil {
			if de, ok := err.(*DecodeError); ok {
				de.Line = line
				return Value{}, de
			}
			return Value{}, err
		}
		return String(s), nil
	}

	v := parseScalar(token)
	if v.Kind() == KindString && p.opts.Strict && token != "" {
		if needsQuoting(token, delimiter) {
			kind := KindQuotingError
			if looksNumericPrefixed(token) {
				kind = KindNumericError
			}
			return Value{}, newDecodeErrorToken(kind, line, "unquoted value is ambiguous and must be quoted", token)
		}
	}
	return v, nil
}

// stripQuotes removes a leading and trailing double quote from s,
// honoring backslash escapes so an escaped quote at the very end
// doesn't get mistaken for the closing quote. ok is false if s is not
// a well-formed quoted span.
func stripQuotes(s string) (inner string, ok bool) {
	if len(s) < 2 || s[0] != '"' {
		return "", false
	}
	end, closed := scanQuoted(s, 0)
	if !closed || end != len(s) {
		return "", false
	}
	return s[1 : len(s)-1], true
}

// looksNumericPrefixed reports whether s begins like a numeric token
// (optional sign then a digit), used to choose between QuotingError
// and NumericError for an ambiguous unquoted scalar.
func looksNumericPrefixed(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '-' || s[0] == '+' {
		i++
	}
	return i < len(s) && isASCIIDigit(s[i])
}
