package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/widetext/widetext-print/wtconv"
)

// CheckCmd checks that a file contains well-formed UTF-8.
type CheckCmd struct {
	File string `kong:"required,arg,help='Path to the file to check.'"`
}

// Run executes the widetext check command.
func (cmd CheckCmd) Run(ctx context.Context) error {
	input, err := os.ReadFile(cmd.File)
	if err != nil {
		return err
	}

	units, err := wtconv.Convert(input)
	if err != nil {
		var convErr wtconv.Error
		if errors.As(err, &convErr) {
			return fmt.Errorf("%s: %w (%s)", cmd.File, err, convErr.Kind)
		}
		return fmt.Errorf("%s: %w", cmd.File, err)
	}

	fmt.Printf("%s: well-formed UTF-8 (%d bytes, %d UTF-16 code units)\n", cmd.File, len(input), len(units))
	return nil
}
