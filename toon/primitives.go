package toon

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// isNonFinite reports whether f is NaN or ±Inf.
func isNonFinite(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}

// formatInt renders the canonical decimal form of an integer (spec
// §4.2): no leading zeros other than "0" itself, leading "-" for
// negatives. strconv.FormatInt already satisfies this.
func formatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

// formatFloat renders the canonical decimal form of a finite float
// (spec §4.2): always contains a ".", no exponent notation at any
// magnitude, negative zero normalized to "0.0", trailing zeros trimmed
// to a minimum of one. Non-finite floats must be normalized to Null
// before reaching this function (see Float()).
func formatFloat(f float64) string {
	if f == 0 {
		// Covers negative zero: math.Signbit(f) would be true for -0.0,
		// but the canonical form for either sign of zero is the same.
		return "0.0"
	}

	// 'f' format never emits exponent notation, at any magnitude, and
	// -1 precision picks the shortest decimal that round-trips exactly.
	s := strconv.FormatFloat(f, 'f', -1, 64)

	if !strings.Contains(s, ".") {
		return s + ".0"
	}

	// Trim trailing zeros but keep at least one digit after the point.
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s
}

// encodePrimitive renders the canonical text of a primitive Value.
// v must satisfy v.isPrimitive(); callers (the encoder) only invoke
// this on Null/Bool/Int/Float/String.
func encodePrimitive(v Value, delimiter string) string {
	switch v.Kind() {
	case KindNull:
		return nullLiteral
	case KindBool:
		b, _ := v.Bool()
		if b {
			return trueLiteral
		}
		return falseLiteral
	case KindInt:
		i, _ := v.Int()
		return formatInt(i)
	case KindFloat:
		f, _ := v.Float()
		return formatFloat(f)
	case KindString:
		s, _ := v.Str()
		return encodeString(s, delimiter)
	default:
		return ""
	}
}

// encodeString renders s bare if safe, otherwise double-quoted with
// escapes (spec §4.2).
func encodeString(s string, delimiter string) string {
	if needsQuoting(s, delimiter) {
		return doubleQuote + escapeString(s) + doubleQuote
	}
	return s
}

// encodeKey renders a map/header key using the same quoting rules as
// any other string, since spec §4.4 requires header keys to be quoted
// under the same ambiguity conditions as values.
func encodeKey(k string, delimiter string) string {
	return encodeString(k, delimiter)
}

// needsQuoting implements the mandatory-quoting predicate of spec
// §4.2. Every condition is checked independently and any one hit
// forces quoting.
func needsQuoting(s string, delimiter string) bool {
	if s == "" {
		return true
	}
	if s == listItemMarker {
		return true
	}
	if hasLeadingTrailingSpace(s) {
		return true
	}
	if strings.ContainsAny(s, delimiter+colon+doubleQuote+backslash) {
		return true
	}
	if containsControlChar(s) {
		return true
	}
	if isReservedLiteral(s) {
		return true
	}
	if classifyNumericLiteral(s) != numericNone {
		return true
	}
	if strings.HasPrefix(s, listItemPrefix) {
		return true
	}
	if strings.HasPrefix(s, openBracket) || strings.HasPrefix(s, openBrace) {
		return true
	}
	if strings.HasPrefix(s, "+") {
		return true
	}
	return false
}

func hasLeadingTrailingSpace(s string) bool {
	return strings.HasPrefix(s, space) || strings.HasSuffix(s, space)
}

func isReservedLiteral(s string) bool {
	return s == trueLiteral || s == falseLiteral || s == nullLiteral
}

func containsControlChar(s string) bool {
	for _, r := range s {
		if r < 0x20 {
			return true
		}
	}
	return false
}

// escapeString escapes backslashes first, then quotes and the
// standard control-character shorthands, then any other control
// character as \uXXXX (spec §4.2).
func escapeString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				b.WriteString(`\u`)
				hex := strconv.FormatInt(int64(r), 16)
				for i := len(hex); i < 4; i++ {
					b.WriteByte('0')
				}
				b.WriteString(hex)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// unescapeString reverses escapeString for a validated escape body
// (used once the scanner/parser has already located the quoted span).
func unescapeString(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r != '\\' {
			b.WriteRune(r)
			i += size
			continue
		}
		if i+1 >= len(s) {
			return "", newDecodeError(KindSyntaxError, 0, "unterminated escape sequence")
		}
		next := s[i+1]
		switch next {
		case '\\':
			b.WriteByte('\\')
			i += 2
		case '"':
			b.WriteByte('"')
			i += 2
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'u':
			if i+6 > len(s) {
				return "", newDecodeError(KindSyntaxError, 0, "truncated \\u escape sequence")
			}
			code, err := strconv.ParseUint(s[i+2:i+6], 16, 32)
			if err != nil {
				return "", newDecodeError(KindSyntaxError, 0, "invalid \\u escape sequence")
			}
			b.WriteRune(rune(code))
			i += 6
		default:
			return "", newDecodeError(KindSyntaxError, 0, "invalid escape sequence: \\"+string(next))
		}
	}
	return b.String(), nil
}
