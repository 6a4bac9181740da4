package wtprintevent

import (
	"fmt"
	"log/slog"

	"github.com/gentlemanautomaton/structformat"
)

// SinkWrite is an event that occurs when converted UTF-16 text has
// been written to an output sink.
type SinkWrite struct {
	Sink  string
	Units int
	Err   error
}

// Component identifies the component that generated the event.
func (e SinkWrite) Component() string {
	return "sink"
}

// Level returns the level of the event.
func (e SinkWrite) Level() slog.Level {
	if e.Err != nil {
		return slog.LevelError
	}
	return slog.LevelDebug
}

// Message returns a description of the event.
func (e SinkWrite) Message() string {
	var builder structformat.Builder

	builder.WritePrimary(e.Sink)
	builder.WritePrimary("write")

	out := fmt.Sprintf("%d UTF-16 code %s", e.Units, plural(e.Units, "unit", "units"))
	if e.Err != nil {
		builder.WriteStandard(fmt.Sprintf("The write of %s failed due to an error: %s.", out, e.Err))
	} else {
		builder.WriteStandard(fmt.Sprintf("Wrote %s.", out))
	}

	return builder.String()
}

// Attrs returns a set of structured log attributes for the event.
func (e SinkWrite) Attrs() []slog.Attr {
	attrs := []slog.Attr{
		slog.String("sink", e.Sink),
		slog.Int("units", e.Units),
	}
	if e.Err != nil {
		attrs = append(attrs, slog.String("error", e.Err.Error()))
	}
	return attrs
}
