package wtevent_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/widetext/widetext-print/wtevent"
)

// testEvent is a minimal event used to exercise the recorder.
type testEvent struct {
	level   slog.Level
	message string
}

func (e testEvent) Component() string {
	return "test"
}

func (e testEvent) Level() slog.Level {
	return e.level
}

func (e testEvent) Message() string {
	return e.message
}

func (e testEvent) Attrs() []slog.Attr {
	return []slog.Attr{slog.String("message", e.message)}
}

// captureHandler stores every record it handles and can be primed to
// fail.
type captureHandler struct {
	records []wtevent.Record
	err     error
}

func (h *captureHandler) Name() string {
	return "capture"
}

func (h *captureHandler) Handle(r wtevent.Record) error {
	h.records = append(h.records, r)
	return h.err
}

func TestRecorderDelivery(t *testing.T) {
	handler := &captureHandler{}
	recorder := wtevent.Recorder{Handler: handler}

	event := testEvent{level: slog.LevelInfo, message: "converted some text"}
	if err := recorder.Record(event); err != nil {
		t.Fatalf("unexpected recording error: %v", err)
	}

	if len(handler.records) != 1 {
		t.Fatalf("unexpected number of records: %d (want 1)", len(handler.records))
	}
	record := handler.records[0]
	if record.Message() != event.message {
		t.Fatalf("unexpected message: %q (want %q)", record.Message(), event.message)
	}
	if record.Component() != "test" {
		t.Fatalf("unexpected component: %q", record.Component())
	}
	if record.Time().IsZero() {
		t.Fatal("the record carries a zero timestamp")
	}

	logged := record.ToLog()
	if logged.Message != event.message || logged.Level != event.level {
		t.Fatalf("unexpected log record: %q at %v", logged.Message, logged.Level)
	}
}

func TestRecorderWithoutHandler(t *testing.T) {
	var recorder wtevent.Recorder
	if err := recorder.Record(testEvent{message: "dropped"}); err != nil {
		t.Fatalf("a recorder without a handler returned an error: %v", err)
	}
}

func TestRecorderWrapsHandlerFailure(t *testing.T) {
	cause := errors.New("disk full")
	handler := &captureHandler{err: cause}
	recorder := wtevent.Recorder{Handler: handler}

	err := recorder.Record(testEvent{level: slog.LevelInfo, message: "doomed"})
	if err == nil {
		t.Fatal("a failing handler did not surface an error")
	}

	var handlerErr wtevent.HandlerError
	if !errors.As(err, &handlerErr) {
		t.Fatalf("unexpected error type: %T (%v)", err, err)
	}
	if handlerErr.HandlerName != "capture" {
		t.Fatalf("unexpected handler name: %q", handlerErr.HandlerName)
	}
	if !errors.Is(err, cause) {
		t.Fatal("the handler error does not wrap its cause")
	}

	// The recorder should have attempted to record the failure itself
	// as a second event.
	if len(handler.records) != 2 {
		t.Fatalf("unexpected number of records: %d (want 2)", len(handler.records))
	}
	if handler.records[1].Component() != "event-handler" {
		t.Fatalf("unexpected component for the failure event: %q", handler.records[1].Component())
	}
}

func TestMultiHandler(t *testing.T) {
	cause := errors.New("broken pipe")
	healthy := &captureHandler{}
	failing := &captureHandler{err: cause}
	recorder := wtevent.Recorder{Handler: wtevent.MultiHandler{healthy, failing}}

	err := recorder.Record(testEvent{level: slog.LevelInfo, message: "fan out"})
	if err == nil {
		t.Fatal("a failing member did not surface an error")
	}
	if !errors.Is(err, cause) {
		t.Fatal("the multi-handler error does not wrap its cause")
	}
	if len(healthy.records) < 1 {
		t.Fatal("the healthy member received no records")
	}
}

func TestConsoleHandler(t *testing.T) {
	var buf bytes.Buffer
	recorder := wtevent.Recorder{Handler: wtevent.NewConsoleHandler(&buf, slog.LevelInfo)}

	if err := recorder.Record(testEvent{level: slog.LevelDebug, message: "hidden"}); err != nil {
		t.Fatalf("unexpected recording error: %v", err)
	}
	if err := recorder.Record(testEvent{level: slog.LevelWarn, message: "visible"}); err != nil {
		t.Fatalf("unexpected recording error: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("a message below the minimum level was printed: %q", out)
	}
	if !strings.Contains(out, "visible") || !strings.Contains(out, "WARN") {
		t.Fatalf("unexpected console output: %q", out)
	}
}

func TestLoggedHandler(t *testing.T) {
	var buf bytes.Buffer
	slogHandler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	recorder := wtevent.Recorder{Handler: wtevent.LoggedHandler{Handler: slogHandler}}

	if err := recorder.Record(testEvent{level: slog.LevelInfo, message: "structured"}); err != nil {
		t.Fatalf("unexpected recording error: %v", err)
	}
	if !strings.Contains(buf.String(), "structured") {
		t.Fatalf("unexpected structured log output: %q", buf.String())
	}
}
