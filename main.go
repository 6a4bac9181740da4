package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cli struct {
		Print   PrintCmd   `kong:"cmd,help='Converts UTF-8 text and writes it to standard output as UTF-16.'"`
		Check   CheckCmd   `kong:"cmd,help='Checks that a file contains well-formed UTF-8.'"`
		Convert ConvertCmd `kong:"cmd,help='Converts a UTF-8 file to a UTF-16LE file.'"`
		Version VersionCmd `kong:"cmd,help='Display widetext-print version information.'"`
	}

	parser := kong.Must(&cli,
		kong.Description("Converts UTF-8 text to UTF-16 with strict validation."),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.UsageOnError())

	app, parseErr := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(parseErr)

	appErr := app.Run()
	app.FatalIfErrorf(appErr)
}
