// Package toon implements encoding and decoding of TOON (Token-Oriented
// Object Notation): a line-oriented, indentation-structured data format
// designed to represent the same value space as JSON in fewer tokens.
//
// # Format overview
//
// TOON uses two-space indentation like YAML and supports three list
// layouts, chosen automatically by the encoder:
//
//   - Tabular: a non-empty list of maps that all share the same keys
//     and hold only primitive values is written as a header line
//     ("@D k1Dk2D...") followed by one row per element.
//   - List: any other non-empty list is written as one "- value" line
//     per element, recursing for nested containers.
//   - Empty: an empty list is written as the literal marker "[0]:",
//     and an empty map as "{0}:", inline after a key or list dash, or
//     alone at the document root.
//
// # Public API
//
//	Encode(v Value, opts ...EncodeOption) (string, error)
//	Decode(text string, opts ...DecodeOption) (Value, error)
//	Marshal(v Value, w io.Writer, opts ...EncodeOption) error
//	Unmarshal(r io.Reader, opts ...DecodeOption) (Value, error)
//
// Value is a tagged union (Null, Bool, Int, Float, String, List, Map)
// built with the matching constructor functions; OrderedMap backs Map
// and preserves key insertion order.
//
// # Basic usage
//
//	om := NewOrderedMap()
//	om.Set("name", String("Alice"))
//	om.Set("age", Int(30))
//	text, err := Encode(Map(om))
//	// text: "name: Alice\nage: 30"
//
//	v, err := Decode("age: 30\nname: Alice")
//	decoded, _ := v.Map()
//
// # Strict mode
//
// Decoding defaults to strict mode (spec §4.8): malformed indentation,
// inconsistent tabular rows, duplicate keys, and ambiguous unquoted
// scalars are rejected with a typed *DecodeError carrying an
// ErrorKind. Use WithStrict(false) to relax these checks.
//
// # Implementation
//
//   - types.go, errors.go, options.go - public types
//   - primitives.go, numeric.go - scalar formatting, quoting, and
//     numeric-literal classification (spec §4.2, §4.7)
//   - writer.go, encode.go - the line writer and the encoder
//   - scanner.go, parser.go, decode.go - line scanning and the
//     indentation-aware recursive-descent parser
//   - orderedmap.go - the insertion-ordered map backing Map values
package toon
