// Package wtevent records events that happen within WideText and
// delivers them to event handlers. It is a thin layer over log/slog
// that lets components describe events as typed values instead of
// preformatted strings.
package wtevent

import (
	"log/slog"
	"time"
)

// Event is a common interface implemented by all WideText events.
type Event interface {
	// Component identifies the component that generated the event.
	Component() string

	// Level returns the level of the event.
	Level() slog.Level

	// Message returns a description of the event.
	Message() string

	// Attrs returns a set of structured logging attributes for the
	// event.
	Attrs() []slog.Attr
}

// Record is a record of an event within WideText. It couples an event
// with the time it was observed and the program counter of its origin.
type Record struct {
	Event Event

	time time.Time
	pc   uintptr
}

// NewRecord returns a record for the given event and program counter.
//
// The program counter is used to build source line information for
// structured log records.
func NewRecord(at time.Time, pc uintptr, event Event) Record {
	return Record{
		Event: event,
		time:  at,
		pc:    pc,
	}
}

// Time returns the time of the event.
func (r Record) Time() time.Time {
	return r.time
}

// Component identifies the component that generated the event.
func (r Record) Component() string {
	return r.Event.Component()
}

// Level returns the level of the event.
func (r Record) Level() slog.Level {
	return r.Event.Level()
}

// Message returns a description of the event.
func (r Record) Message() string {
	return r.Event.Message()
}

// Attrs returns a set of structured logging attributes for the event.
func (r Record) Attrs() []slog.Attr {
	return r.Event.Attrs()
}

// ToLog returns the event record as a structured logging record.
func (r Record) ToLog() slog.Record {
	out := slog.NewRecord(r.time, r.Event.Level(), r.Event.Message(), r.pc)
	out.AddAttrs(r.Event.Attrs()...)
	return out
}
