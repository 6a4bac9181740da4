// Package wtprintevent defines the events that are recorded by the
// widetext-print tool.
package wtprintevent

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gentlemanautomaton/structformat"
	"github.com/widetext/widetext-print/wtconv"
)

// Conversion is an event that occurs when UTF-8 input has been
// converted to UTF-16, successfully or not.
type Conversion struct {
	Source      string
	InputBytes  int
	OutputUnits int
	Started     time.Time
	Stopped     time.Time
	Err         error
}

// Component identifies the component that generated the event.
func (e Conversion) Component() string {
	return "conversion"
}

// Level returns the level of the event.
func (e Conversion) Level() slog.Level {
	if e.Err != nil {
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Message returns a description of the event.
func (e Conversion) Message() string {
	var builder structformat.Builder

	builder.WritePrimary(e.Source)
	builder.WritePrimary("convert")

	in := fmt.Sprintf("%d UTF-8 %s", e.InputBytes, plural(e.InputBytes, "byte", "bytes"))
	if e.Err != nil {
		builder.WriteStandard(fmt.Sprintf("The conversion of %s failed due to an error: %s.", in, e.Err))
	} else {
		out := fmt.Sprintf("%d UTF-16 code %s", e.OutputUnits, plural(e.OutputUnits, "unit", "units"))
		builder.WriteStandard(fmt.Sprintf("Converted %s to %s in %s.", in, out, e.Duration().Round(time.Microsecond)))
	}

	return builder.String()
}

// Attrs returns a set of structured log attributes for the event.
func (e Conversion) Attrs() []slog.Attr {
	attrs := []slog.Attr{
		slog.String("source", e.Source),
		slog.Int("input-bytes", e.InputBytes),
		slog.Int("output-units", e.OutputUnits),
		slog.Duration("duration", e.Duration()),
	}
	if e.Err != nil {
		attrs = append(attrs, slog.String("error", e.Err.Error()))
		var convErr wtconv.Error
		if errors.As(e.Err, &convErr) {
			group := []any{"kind", convErr.Kind.String()}
			if convErr.Code != wtconv.CodeNone {
				group = append(group, "diagnostic", int64(convErr.Code))
			}
			attrs = append(attrs, slog.Group("failure", group...))
		}
	}
	return attrs
}

// Duration returns the duration of the conversion.
func (e Conversion) Duration() time.Duration {
	return e.Stopped.Sub(e.Started)
}
