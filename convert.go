package main

import (
	"context"
	"fmt"
	"os"

	"github.com/widetext/widetext-print/wtconsole"
	"github.com/widetext/widetext-print/wtprintevent"
)

// ConvertCmd converts a UTF-8 file to a UTF-16LE file.
type ConvertCmd struct {
	Input   string `kong:"required,arg,help='Path to the UTF-8 file to convert.'"`
	Output  string `kong:"required,name='output',short='o',help='Path of the UTF-16LE file to create.'"`
	BOM     bool   `kong:"optional,name='bom',default='true',negatable,help='Write a byte order mark at the start of the output file.'"`
	Verbose bool   `kong:"optional,name='verbose',short='v',help='Show debug messages on the command line.'"`
}

// Run executes the widetext convert command.
func (cmd ConvertCmd) Run(ctx context.Context) error {
	recorder := newRecorder(cmd.Verbose)

	input, err := os.ReadFile(cmd.Input)
	if err != nil {
		return err
	}

	// Convert the whole file before touching the output path, so that
	// a malformed input never leaves a partially converted file behind.
	units, err := convertAndRecord(recorder, cmd.Input, input)
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Input, err)
	}

	out, err := os.Create(cmd.Output)
	if err != nil {
		return err
	}

	writeErr := wtconsole.NewUTF16LEWriter(out, cmd.BOM).WriteUTF16(units)
	closeErr := out.Close()
	if writeErr == nil {
		writeErr = closeErr
	}
	recorder.Record(wtprintevent.SinkWrite{
		Sink:  cmd.Output,
		Units: len(units),
		Err:   writeErr,
	})
	return writeErr
}
