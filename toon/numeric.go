package toon

import "strconv"

// numericClass is the outcome of classifying a token against the
// numeric-literal grammar of spec §4.7.
type numericClass int

const (
	numericNone numericClass = iota
	numericInt
	numericFloat
)

// classifyNumericLiteral implements the numeric-literal grammar of
// spec §4.7 used both to decide whether a string needs quoting on
// encode (§4.2) and to classify an unquoted decode-time token:
//
//	Integer: ["-"] ("0" | [1-9][0-9]*)
//	Float:   ["-"] intpart ["." digits] [("e"|"E") ["+"|"-"] digits+]
//	         — a fractional part or an exponent makes it a Float.
//
// A leading "+" is never accepted. Leading zeros on a multi-digit
// integer part (e.g. "007") disqualify the token entirely — it is
// not numeric at all, so it is left unquoted on encode and read back
// as a plain string on decode.
func classifyNumericLiteral(s string) numericClass {
	i := 0
	n := len(s)
	if i >= n {
		return numericNone
	}
	if s[i] == '-' {
		i++
	}
	intStart := i
	for i < n && isASCIIDigit(s[i]) {
		i++
	}
	intLen := i - intStart
	if intLen == 0 {
		return numericNone
	}
	if intLen > 1 && s[intStart] == '0' {
		return numericNone
	}

	isFloat := false

	if i < n && s[i] == '.' {
		isFloat = true
		i++
		fracStart := i
		for i < n && isASCIIDigit(s[i]) {
			i++
		}
		if i == fracStart {
			return numericNone // "." with no digits following
		}
	}

	if i < n && (s[i] == 'e' || s[i] == 'E') {
		isFloat = true
		i++
		if i < n && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expStart := i
		for i < n && isASCIIDigit(s[i]) {
			i++
		}
		if i == expStart {
			return numericNone // exponent marker with no digits
		}
	}

	if i != n {
		return numericNone // trailing garbage
	}

	if isFloat {
		return numericFloat
	}
	return numericInt
}

func isASCIIDigit(b byte) bool { return b >= '0' && b <= '9' }

// parseScalar classifies an already-unquoted, already-trimmed token
// per spec §4.7 (steps 2-4; step 1, the quoted-string case, is
// handled by the caller before parseScalar is reached).
func parseScalar(s string) Value {
	switch s {
	case trueLiteral:
		return Bool(true)
	case falseLiteral:
		return Bool(false)
	case nullLiteral:
		return Null()
	}

	switch classifyNumericLiteral(s) {
	case numericInt:
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Int(i)
		}
		// Overflow: integers that don't fit int64 fall back to float.
		// ParseFloat returns the nearest float64; only a magnitude
		// beyond float64's range comes back as ±Inf with ErrRange,
		// which Float() normalizes to Null, so the error is not fatal
		// here.
		f, _ := strconv.ParseFloat(s, 64)
		return Float(f)
	case numericFloat:
		// As above: a syntactically valid float literal that
		// overflows float64 comes back as ±Inf with ErrRange, which
		// spec §4.7 resolves to Null via Float()'s normalization, not
		// a fall-through string.
		f, _ := strconv.ParseFloat(s, 64)
		return Float(f)
	default:
		return String(s)
	}
}
