// Package wtconv converts UTF-8 encoded text to UTF-16 code units with
// strict validation. Invalid input is never papered over with
// replacement characters; every malformed byte sequence is reported to
// the caller as a typed error.
package wtconv

import (
	"math"
	"unicode/utf16"
	"unicode/utf8"
)

// MaxInputLength is the largest input, in bytes, that Convert accepts.
// It matches the signed 32-bit bound of the platform conversion
// primitives this package stands in for, so that callers porting from
// them observe the same limit.
const MaxInputLength = math.MaxInt32

// Convert converts the given UTF-8 encoded bytes to a sequence of
// UTF-16 code units.
//
// The input is validated strictly: overlong encodings, surrogate code
// points smuggled into UTF-8, truncated sequences and invalid bytes all
// cause the conversion to fail with an Error of kind
// InvalidUTF8Sequence. Embedded NUL bytes are ordinary data and are
// preserved in the output.
//
// On success the returned slice is freshly allocated and sized exactly
// to the converted text. On failure the returned slice is always nil;
// a partially converted buffer is never returned. Empty input yields
// empty output and a nil error.
func Convert(p []byte) ([]uint16, error) {
	// If there is no data, there is nothing to convert and nothing that
	// can fail.
	if len(p) == 0 {
		return nil, nil
	}

	// Refuse inputs whose length would overflow the signed 32-bit size
	// used by native conversion primitives. A huge length silently
	// reinterpreted as a negative number would corrupt the size
	// calculation, so fail loudly instead.
	if uint64(len(p)) > uint64(MaxInputLength) {
		return nil, Error{Kind: InputTooLarge, Code: CodeNone}
	}

	// Measurement phase: determine the exact number of UTF-16 code
	// units the input requires.
	units, bad := measure(p)
	if bad >= 0 {
		return nil, Error{Kind: InvalidUTF8Sequence, Code: Code(bad)}
	}
	if units == 0 {
		// Non-empty input must require at least one code unit. Zero
		// means the measurement itself produced an unusable result.
		return nil, Error{Kind: MeasurementFailed, Code: CodeNone}
	}

	// Fill phase: decode into a buffer sized exactly to the
	// measurement. The input is not expected to change between the two
	// phases, but the fill performs the same validation so that a
	// mutated or miscounted input can never yield a truncated buffer.
	out, bad := appendUTF16(make([]uint16, 0, units), p)
	if bad >= 0 {
		return nil, Error{Kind: InvalidUTF8Sequence, Code: Code(bad)}
	}
	if len(out) != units {
		return nil, Error{Kind: ConversionFailed, Code: CodeNone}
	}

	return out, nil
}

// ConvertString converts the given UTF-8 encoded string to a sequence
// of UTF-16 code units. It applies the same strict validation as
// Convert.
func ConvertString(s string) ([]uint16, error) {
	return Convert([]byte(s))
}

// measure returns the number of UTF-16 code units needed to represent
// the given UTF-8 bytes. If the bytes contain an invalid sequence, it
// returns the byte offset of that sequence; otherwise bad is -1.
func measure(p []byte) (units, bad int) {
	for i := 0; i < len(p); {
		r, size := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && size <= 1 {
			return 0, i
		}
		units += utf16.RuneLen(r)
		i += size
	}
	return units, -1
}

// appendUTF16 decodes the given UTF-8 bytes and appends their UTF-16
// code units to dst. If the bytes contain an invalid sequence, it
// returns the byte offset of that sequence; otherwise bad is -1.
func appendUTF16(dst []uint16, p []byte) (out []uint16, bad int) {
	for i := 0; i < len(p); {
		r, size := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && size <= 1 {
			return dst, i
		}
		dst = utf16.AppendRune(dst, r)
		i += size
	}
	return dst, -1
}
