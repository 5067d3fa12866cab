package toon

// Kind identifies which variant of the Value tagged union is populated.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value is the tagged union described by spec §3: Null, Bool, Integer,
// Float, String, List, or Map. Exactly one of the typed fields is
// meaningful for a given Kind. Values are immutable trees: once built,
// a List's elements and a Map's pairs are not reordered or mutated by
// the encoder or decoder.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	list []Value
	m    *OrderedMap
}

// Null returns the Null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a Bool value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an Integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a Float value. Non-finite inputs (NaN, ±Inf) are
// normalized to Null, matching the encoder's pre-formatting rule in
// spec §4.2 so that a Value tree built directly by a caller behaves
// the same as one produced by decoding and re-encoding.
func Float(f float64) Value {
	if isNonFinite(f) {
		return Null()
	}
	return Value{kind: KindFloat, f: f}
}

// String returns a String value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// List returns a List value wrapping the given elements. The slice is
// copied so the caller may reuse or mutate it afterward.
func List(items ...Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: KindList, list: cp}
}

// Map returns a Map value backed by an OrderedMap. A nil om is treated
// as an empty map.
func Map(om *OrderedMap) Value {
	if om == nil {
		om = NewOrderedMap()
	}
	return Value{kind: KindMap, m: om}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the Null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the bool payload; ok is false if v is not a Bool.
func (v Value) Bool() (b bool, ok bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// Int returns the int64 payload; ok is false if v is not an Integer.
func (v Value) Int() (i int64, ok bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

// Float returns the float64 payload; ok is false if v is not a Float.
func (v Value) Float() (f float64, ok bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.f, true
}

// Str returns the string payload; ok is false if v is not a String.
func (v Value) Str() (s string, ok bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// List returns the element slice; ok is false if v is not a List.
// The returned slice aliases v's internal storage and must not be
// mutated by the caller.
func (v Value) List() (items []Value, ok bool) {
	if v.kind != KindList {
		return nil, false
	}
	return v.list, true
}

// Map returns the backing OrderedMap; ok is false if v is not a Map.
func (v Value) Map() (om *OrderedMap, ok bool) {
	if v.kind != KindMap {
		return nil, false
	}
	return v.m, true
}

// isPrimitive reports whether v is Null, Bool, Integer, Float, or
// String — i.e. not a List or a Map. Tabular detection (§4.4) and the
// encoder's scalar-vs-container branch both key off this.
func (v Value) isPrimitive() bool {
	return v.kind != KindList && v.kind != KindMap
}

// EncodeOptions configures encoding behavior (spec §6.1).
type EncodeOptions struct {
	// Delimiter is the active delimiter used inside tabular blocks: one
	// of "," (default), "|", or "\t". Any string containing it is
	// quoted wherever it is written.
	Delimiter string

	// Pretty affects only a downstream JSON rendering of the decoded
	// value, never the TOON text itself (spec §6.1, §9 open question).
	// The TOON encoder carries the field only so a single options
	// struct can be threaded through a host pipeline; it has no effect
	// here.
	Pretty bool
}

// DecodeOptions configures decoding behavior (spec §6.1).
type DecodeOptions struct {
	// Delimiter is the delimiter the strict quoting check applies to
	// values outside tabular blocks; one of "," (default), "|", or
	// "\t". A tabular block is split and checked with the delimiter
	// its own "@D" header declares, whatever this field holds.
	Delimiter string

	// Strict enables the validation rules of spec §4.8. Defaults to
	// true, matching the teacher's decode-side default.
	Strict bool
}

// EncodeOption mutates an EncodeOptions as it is being built.
type EncodeOption func(*EncodeOptions)

// DecodeOption mutates a DecodeOptions as it is being built.
type DecodeOption func(*DecodeOptions)

// WithDelimiter sets the active delimiter for encoding.
func WithDelimiter(delim string) EncodeOption {
	return func(o *EncodeOptions) { o.Delimiter = delim }
}

// WithPretty toggles the Pretty passthrough flag.
func WithPretty(pretty bool) EncodeOption {
	return func(o *EncodeOptions) { o.Pretty = pretty }
}

// WithDecodeDelimiter sets the delimiter strict decoding checks
// values outside tabular blocks against.
func WithDecodeDelimiter(delim string) DecodeOption {
	return func(o *DecodeOptions) { o.Delimiter = delim }
}

// WithStrict toggles strict-mode validation.
func WithStrict(strict bool) DecodeOption {
	return func(o *DecodeOptions) { o.Strict = strict }
}

// arrayFormat determines which of the three list layouts (§4.3, §4.4)
// the encoder uses for a given list.
type arrayFormat int

const (
	arrayFormatEmpty arrayFormat = iota
	arrayFormatTabular
	arrayFormatList
)

// rootType indicates the shape of the document's outermost value
// (spec §4.6 parser entry-point dispatch).
type rootType int

const (
	rootTypeObject rootType = iota
	rootTypeArray
	rootTypeEmptyList
	rootTypeEmptyMap
	rootTypePrimitive
)
