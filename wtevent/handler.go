package wtevent

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Handler is an event handler that is capable of processing events in
// WideText.
type Handler interface {
	// Name returns a name for the handler.
	Name() string

	// Handle processes the given event record.
	Handle(Record) error
}

const timestampFormat = "2006-01-02 15:04:05"

// ConsoleHandler is a WideText event handler that prints timestamped
// event messages to an io.Writer. The tool reserves standard output
// for converted text, so this handler is typically bound to standard
// error.
type ConsoleHandler struct {
	w   io.Writer
	min slog.Level
}

// NewConsoleHandler returns a ConsoleHandler that will write to w.
// Events below the provided minimum level will be ignored.
func NewConsoleHandler(w io.Writer, min slog.Level) ConsoleHandler {
	return ConsoleHandler{
		w:   w,
		min: min,
	}
}

// Name returns a name for the handler.
func (h ConsoleHandler) Name() string {
	return "console"
}

// Handle processes the given event record.
func (h ConsoleHandler) Handle(r Record) error {
	if r.Level() < h.min {
		return nil
	}
	_, err := fmt.Fprintf(h.w, "%s: %-6s %s\n", r.Time().Local().Format(timestampFormat), r.Level().String()+":", r.Message())
	return err
}

// LoggedHandler is a WideText event handler that sends events to a
// structured log handler.
type LoggedHandler struct {
	Handler slog.Handler
}

// Name returns a name for the handler.
func (h LoggedHandler) Name() string {
	return "structured-log"
}

// Handle processes the given event record.
func (h LoggedHandler) Handle(r Record) error {
	handler := h.Handler
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return handler.Handle(context.Background(), r.ToLog())
}

// MultiHandler is a WideText event handler that sends events to
// multiple underlying handlers.
type MultiHandler []Handler

// Name returns a name for the handler.
func (h MultiHandler) Name() string {
	return "multi-handler"
}

// Handle processes the given event record.
func (h MultiHandler) Handle(r Record) error {
	var errs []error
	for _, handler := range h {
		if err := handler.Handle(r); err != nil {
			errs = append(errs, WrapHandlerError(handler, r, err))
		}
	}

	return WrapHandlerError(h, r, errs...)
}
