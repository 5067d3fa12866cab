package toon

import "fmt"

// validateEncodeOptions validates encoding options after defaults
// have been applied.
func validateEncodeOptions(opts *EncodeOptions) error {
	if !isValidDelimiter(opts.Delimiter) {
		return &EncodeError{
			Message: fmt.Sprintf("invalid delimiter %q, must be one of: %q, %q, %q",
				opts.Delimiter, comma, pipe, tab),
		}
	}
	return nil
}

// validateDecodeOptions validates decoding options after defaults
// have been applied.
func validateDecodeOptions(opts *DecodeOptions) error {
	if !isValidDelimiter(opts.Delimiter) {
		return &DecodeError{
			Kind:    KindInputError,
			Message: fmt.Sprintf("invalid delimiter %q, must be one of: %q, %q, %q", opts.Delimiter, comma, pipe, tab),
		}
	}
	return nil
}

// getEncodeOptions returns options with defaults applied; opts may be nil.
func getEncodeOptions(opts *EncodeOptions) *EncodeOptions {
	if opts == nil {
		return &EncodeOptions{Delimiter: defaultDelimiter}
	}
	result := *opts
	if result.Delimiter == "" {
		result.Delimiter = defaultDelimiter
	}
	return &result
}

// getDecodeOptions returns options with defaults applied; opts may be
// nil, in which case strict mode defaults to true (spec §6.1).
func getDecodeOptions(opts *DecodeOptions) *DecodeOptions {
	if opts == nil {
		return &DecodeOptions{Delimiter: defaultDelimiter, Strict: true}
	}
	result := *opts
	if result.Delimiter == "" {
		result.Delimiter = defaultDelimiter
	}
	return &result
}

// applyEncodeOptions builds an EncodeOptions from functional options,
// starting from defaults (teacher's api.go functional-options idiom).
func applyEncodeOptions(opts ...EncodeOption) *EncodeOptions {
	encOpts := getEncodeOptions(nil)
	for _, opt := range opts {
		opt(encOpts)
	}
	return encOpts
}

// applyDecodeOptions builds a DecodeOptions from functional options,
// starting from defaults.
func applyDecodeOptions(opts ...DecodeOption) *DecodeOptions {
	decOpts := getDecodeOptions(nil)
	for _, opt := range opts {
		opt(decOpts)
	}
	return decOpts
}
