package wtconv_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/widetext/widetext-print/wtconv"
)

type errorFixture struct {
	Err      wtconv.Error
	Kind     string
	Contains string
}

var errorFixtures = []errorFixture{
	{
		Err:      wtconv.Error{Kind: wtconv.InputTooLarge, Code: wtconv.CodeNone},
		Kind:     "input-too-large",
		Contains: "too large",
	},
	{
		Err:      wtconv.Error{Kind: wtconv.InvalidUTF8Sequence, Code: 5},
		Kind:     "invalid-utf8-sequence",
		Contains: "byte offset 5",
	},
	{
		Err:      wtconv.Error{Kind: wtconv.InvalidUTF8Sequence, Code: wtconv.CodeNone},
		Kind:     "invalid-utf8-sequence",
		Contains: "invalid UTF-8 sequence",
	},
	{
		Err:      wtconv.Error{Kind: wtconv.MeasurementFailed, Code: 7},
		Kind:     "measurement-failed",
		Contains: "diagnostic code 7",
	},
	{
		Err:      wtconv.Error{Kind: wtconv.ConversionFailed, Code: wtconv.CodeNone},
		Kind:     "conversion-failed",
		Contains: "unable to convert",
	},
}

func TestError(t *testing.T) {
	for i, fixture := range errorFixtures {
		t.Run(fmt.Sprintf("%d:%s", i, fixture.Kind), func(t *testing.T) {
			if got := fixture.Err.Kind.String(); got != fixture.Kind {
				t.Fatalf("unexpected kind name: %q (want %q)", got, fixture.Kind)
			}
			if message := fixture.Err.Error(); !strings.Contains(message, fixture.Contains) {
				t.Fatalf("the message %q does not mention %q", message, fixture.Contains)
			}
		})
	}
}
