package wtconv

import (
	"fmt"
	"strconv"
)

// Kind identifies the class of a conversion failure.
type Kind int

// Conversion failure classes.
const (
	// InputTooLarge indicates that the input's byte length exceeds
	// MaxInputLength.
	InputTooLarge Kind = iota + 1

	// InvalidUTF8Sequence indicates that the input contains a byte
	// sequence that does not decode to a valid Unicode scalar value.
	InvalidUTF8Sequence

	// MeasurementFailed indicates that the measurement phase failed for
	// a reason other than an invalid byte sequence.
	MeasurementFailed

	// ConversionFailed indicates that the fill phase failed for a reason
	// other than an invalid byte sequence.
	ConversionFailed
)

// String returns a name for the failure class.
func (k Kind) String() string {
	switch k {
	case InputTooLarge:
		return "input-too-large"
	case InvalidUTF8Sequence:
		return "invalid-utf8-sequence"
	case MeasurementFailed:
		return "measurement-failed"
	case ConversionFailed:
		return "conversion-failed"
	default:
		return "unknown-" + strconv.Itoa(int(k))
	}
}

// Code is an opaque diagnostic code that accompanies some conversion
// failures. In this implementation it holds the byte offset of the
// offending sequence within the input. Callers should not interpret it
// beyond recording it for observability.
type Code int64

// CodeNone marks the absence of a diagnostic code.
const CodeNone Code = -1

// Error describes a failed UTF-8 to UTF-16 conversion. It is immutable
// once constructed and holds no reference to the input that produced it.
type Error struct {
	Kind Kind
	Code Code
}

// Error returns a string describing the conversion failure.
func (e Error) Error() string {
	switch e.Kind {
	case InputTooLarge:
		return fmt.Sprintf("the input is too large to convert from UTF-8 to UTF-16 (the maximum length is %d bytes)", MaxInputLength)
	case InvalidUTF8Sequence:
		if e.Code != CodeNone {
			return fmt.Sprintf("an invalid UTF-8 sequence was found in the input at byte offset %d", int64(e.Code))
		}
		return "an invalid UTF-8 sequence was found in the input"
	case MeasurementFailed:
		return withCode("unable to measure the UTF-16 length of the input", e.Code)
	case ConversionFailed:
		return withCode("unable to convert the input from UTF-8 to UTF-16", e.Code)
	default:
		return withCode("the conversion from UTF-8 to UTF-16 failed", e.Code)
	}
}

func withCode(message string, code Code) string {
	if code == CodeNone {
		return message
	}
	return fmt.Sprintf("%s (diagnostic code %d)", message, int64(code))
}
