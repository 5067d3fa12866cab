package toon

// decode parses TOON text into a Value (spec §4.6): scan splits and
// classifies lines, then parser walks them with indentation-aware
// recursive descent. opts has already had defaults applied
// (getDecodeOptions).
func decode(text string, opts *DecodeOptions) (Value, error) {
	lines := scan(text)
	p := newParser(lines, opts)
	return p.parse()
}
