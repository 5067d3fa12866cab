package toon

import (
	"bytes"
	"io"
	"io/ioutil"
	"strings"
)

// Version is the current version of the TOON codec.
const Version = "1.0.0"

// Encode renders v to TOON text (spec §6.2). v is typically built with
// the Null/Bool/Int/Float/String/List/Map constructors.
//
// Example:
//
//	v := Map(NewOrderedMap().Set("name", String("Alice")).Set("age", Int(30)))
//	text, err := Encode(v)
//	// text: "name: Alice\nage: 30"
func Encode(v Value, opts ...EncodeOption) (string, error) {
	encOpts := applyEncodeOptions(opts...)
	if err := validateEncodeOptions(encOpts); err != nil {
		return "", err
	}
	return encode(v, encOpts)
}

// Decode parses TOON text into a Value (spec §6.2). Strict-mode
// validation (spec §4.8) is on by default; use WithStrict(false) to
// relax it.
//
// Example:
//
//	v, err := Decode("name: Alice\nage: 30")
//	om, _ := v.Map()
func Decode(text string, opts ...DecodeOption) (Value, error) {
	decOpts := applyDecodeOptions(opts...)
	if err := validateDecodeOptions(decOpts); err != nil {
		return Value{}, err
	}
	return decode(text, decOpts)
}

// Marshal encodes v to TOON text and writes it to w.
func Marshal(v Value, w io.Writer, opts ...EncodeOption) error {
	text, err := Encode(v, opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}

// MarshalToString encodes v to TOON text. It is a convenience wrapper
// around Encode kept for symmetry with Marshal/Unmarshal.
func MarshalToString(v Value, opts ...EncodeOption) (string, error) {
	return Encode(v, opts...)
}

// Unmarshal reads TOON text from r and decodes it to a Value.
func Unmarshal(r io.Reader, opts ...DecodeOption) (Value, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return Value{}, err
	}
	return Decode(string(data), opts...)
}

// UnmarshalFromString decodes TOON text to a Value. It is a
// convenience wrapper around Decode kept for symmetry with Marshal.
func UnmarshalFromString(s string, opts ...DecodeOption) (Value, error) {
	return Unmarshal(strings.NewReader(s), opts...)
}

// marshalToBuffer is a small helper used by tests that want to exercise
// the io.Writer path without a real file or network connection.
func marshalToBuffer(v Value, opts ...EncodeOption) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	if err := Marshal(v, &buf, opts...); err != nil {
		return nil, err
	}
	return &buf, nil
}
