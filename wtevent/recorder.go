package wtevent

import (
	"runtime"
	"time"
)

// Recorder is a WideText event recorder. It collects information about
// events as they happen and passes them to an event handler.
//
// If the recorder's handler is nil, it silently discards all events.
type Recorder struct {
	Handler Handler
}

// Record records the given event and passes it to the recorder's
// handler.
func (rec Recorder) Record(event Event) error {
	// If no handler has been provided, drop the event.
	if rec.Handler == nil {
		return nil
	}

	// Record the current time.
	at := time.Now()

	// Collect the current program counter of the caller, so that
	// handlers can attach source code information.
	var pc uintptr
	{
		var pcs [1]uintptr
		// Skip [runtime.Callers, this function]
		runtime.Callers(2, pcs[:])
		pc = pcs[0]
	}

	// Send the event record to the event handler.
	record := NewRecord(at, pc, event)
	err := WrapHandlerError(rec.Handler, record, rec.Handler.Handle(record))

	// If the handler failed, attempt to record the failure itself as
	// an event. A handler that cannot even record its own failure is
	// out of options, so that error is dropped.
	if err != nil {
		if event, ok := err.(Event); ok {
			rec.Handler.Handle(NewRecord(time.Now(), pc, event))
		}
	}

	return err
}
