package toon

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// roundTripDocs is a small corpus of hand-written TOON documents
// exercising the shapes named across spec §3-§4: scalars, nested
// maps, plain lists, tabular lists, and every empty-collection
// marker position (root, map value, list element).
var roundTripDocs = []string{
	"42",
	"-1.5",
	"true",
	"null",
	`"- "`,
	"[0]:",
	"{0}:",
	"name: Alice\nage: 30\nactive: true",
	"outer:\n  inner: 1\n  deep:\n    x: 2",
	"tags:\n  - go\n  - toon\n  - \"- \"",
	"users:\n  @,id,name\n  - 1,Alice\n  - 2,Bob",
	"empty_list: [0]:\nempty_map: {0}:",
	"groups:\n  - [0]:\n  - {0}:",
	"mixed:\n  -\n    a: 1\n  -\n    b: 2",
}

// TestIdempotentReencode checks decode(encode(decode(t))) == decode(t)
// (spec §8): re-encoding a decoded document and decoding that again
// must reach the same value tree.
func TestIdempotentReencode(t *testing.T) {
	for _, doc := range roundTripDocs {
		doc := doc
		t.Run(doc, func(t *testing.T) {
			v1, err := Decode(doc)
			require.NoError(t, err)

			text2, err := Encode(v1)
			require.NoError(t, err)

			v2, err := Decode(text2)
			require.NoError(t, err)

			requireValueEqual(t, v1, v2)
		})
	}
}

// TestQuotingSymmetry checks that any string the encoder leaves bare
// decodes back to the same string unquoted, and any string it quotes
// decodes back to the same string via the quoted path, for a set of
// representative cases spanning every needsQuoting condition.
func TestQuotingSymmetry(t *testing.T) {
	cases := []string{
		"hello",
		"",
		"true",
		"false",
		"null",
		"42",
		"1.5",
		"-",
		"- leading dash",
		"[leading bracket",
		"{leading brace",
		"+1",
		"has,comma",
		"has|pipe",
		`has"quote`,
		"has\\backslash",
		" leading space",
		"trailing space ",
		"plain ok string",
	}

	for _, s := range cases {
		s := s
		t.Run(s, func(t *testing.T) {
			om := NewOrderedMap()
			om.Set("v", String(s))
			text, err := Encode(Map(om))
			require.NoError(t, err)

			v, err := Decode(text)
			require.NoError(t, err)

			decodedOM, ok := v.Map()
			require.True(t, ok)
			got, ok := decodedOM.Get("v")
			require.True(t, ok)
			gotStr, ok := got.Str()
			require.True(t, ok, "value %q round-tripped to non-string %v", s, got)
			require.Equal(t, s, gotStr)
		})
	}
}

// TestIntFloatDistinctionSurvivesRoundTrip pins down the REDESIGN
// decision that Integer and Float never collapse into each other
// (spec §3, §8 S4).
func TestIntFloatDistinctionSurvivesRoundTrip(t *testing.T) {
	om := NewOrderedMap()
	om.Set("i", Int(0))
	om.Set("f", Float(0.0))
	text, err := Encode(Map(om))
	require.NoError(t, err)
	require.Equal(t, "i: 0\nf: 0.0", text)

	v, err := Decode(text)
	require.NoError(t, err)
	decodedOM, _ := v.Map()

	iVal, _ := decodedOM.Get("i")
	require.Equal(t, KindInt, iVal.Kind())
	fVal, _ := decodedOM.Get("f")
	require.Equal(t, KindFloat, fVal.Kind())
}

// TestRoundTripNonDefaultDelimiterTabularWithDefaultDelimiterCharInCell
// pins down spec §8 round-trip law 1 (decode(encode(x)) == x) for a
// document encoded with a non-default delimiter whose tabular cells
// contain the *default* delimiter character as ordinary text: the
// default-delimited character must not be mistaken for the active one
// on decode.
func TestRoundTripNonDefaultDelimiterTabularWithDefaultDelimiterCharInCell(t *testing.T) {
	row := NewOrderedMap()
	row.Set("id", Int(1))
	row.Set("name", String("Alice, Jr"))
	om := NewOrderedMap()
	om.Set("users", List(Map(row)))
	v := Map(om)

	text, err := Encode(v, WithDelimiter(pipe))
	require.NoError(t, err)

	decoded, err := Decode(text)
	require.NoError(t, err)
	requireValueEqual(t, v, decoded)
}

func requireValueEqual(t *testing.T, a, b Value) {
	t.Helper()
	require.Equal(t, a.Kind(), b.Kind())
	switch a.Kind() {
	case KindBool:
		av, _ := a.Bool()
		bv, _ := b.Bool()
		require.Equal(t, av, bv)
	case KindInt:
		av, _ := a.Int()
		bv, _ := b.Int()
		require.Equal(t, av, bv)
	case KindFloat:
		av, _ := a.Float()
		bv, _ := b.Float()
		require.Equal(t, av, bv)
	case KindString:
		av, _ := a.Str()
		bv, _ := b.Str()
		require.Equal(t, av, bv)
	case KindList:
		al, _ := a.List()
		bl, _ := b.List()
		require.Equal(t, len(al), len(bl))
		for i := range al {
			requireValueEqual(t, al[i], bl[i])
		}
	case KindMap:
		am, _ := a.Map()
		bm, _ := b.Map()
		require.Equal(t, am.Len(), bm.Len())
		for _, k := range am.Keys() {
			av, ok := am.Get(k)
			require.True(t, ok)
			bv, ok := bm.Get(k)
			require.True(t, ok, "key %q missing from b", k)
			requireValueEqual(t, av, bv)
		}
	}
}
