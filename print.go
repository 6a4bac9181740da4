package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/widetext/widetext-print/wtconsole"
	"github.com/widetext/widetext-print/wtconv"
	"github.com/widetext/widetext-print/wtevent"
	"github.com/widetext/widetext-print/wtprintevent"
)

// PrintCmd converts UTF-8 text and writes it to standard output as
// UTF-16.
type PrintCmd struct {
	Text    []string `kong:"arg,optional,help='UTF-8 text to print. When omitted the text is read from the file or from standard input.'"`
	File    string   `kong:"optional,name='file',help='Path to a UTF-8 file to print.'"`
	Verbose bool     `kong:"optional,name='verbose',short='v',help='Show debug messages on the command line.'"`
}

// Run executes the widetext print command.
func (cmd PrintCmd) Run(ctx context.Context) error {
	recorder := newRecorder(cmd.Verbose)

	// Collect the UTF-8 input.
	input, source, err := cmd.input()
	if err != nil {
		return err
	}

	// Convert it to UTF-16 code units.
	units, err := convertAndRecord(recorder, source, input)
	if err != nil {
		return err
	}

	// Write the converted text to standard output, followed by a line
	// break so that console prompts don't run into it.
	sink := wtconsole.Stdout()
	err = sink.WriteUTF16(append(units, '\n'))
	recorder.Record(wtprintevent.SinkWrite{
		Sink:  "stdout",
		Units: len(units),
		Err:   err,
	})
	return err
}

func (cmd PrintCmd) input() (input []byte, source string, err error) {
	switch {
	case len(cmd.Text) > 0:
		return []byte(strings.Join(cmd.Text, " ")), "argument", nil
	case cmd.File != "":
		input, err = os.ReadFile(cmd.File)
		return input, cmd.File, err
	default:
		input, err = io.ReadAll(os.Stdin)
		return input, "stdin", err
	}
}

// newRecorder returns an event recorder that prints events to standard
// error. Standard output is reserved for the converted text.
func newRecorder(verbose bool) wtevent.Recorder {
	min := slog.LevelWarn
	if verbose {
		min = slog.LevelDebug
	}
	return wtevent.Recorder{Handler: wtevent.NewConsoleHandler(os.Stderr, min)}
}

// convertAndRecord converts the given UTF-8 input and records the
// outcome as a conversion event.
func convertAndRecord(recorder wtevent.Recorder, source string, input []byte) ([]uint16, error) {
	started := time.Now()
	units, err := wtconv.Convert(input)
	recorder.Record(wtprintevent.Conversion{
		Source:      source,
		InputBytes:  len(input),
		OutputUnits: len(units),
		Started:     started,
		Stopped:     time.Now(),
		Err:         err,
	})
	return units, err
}
