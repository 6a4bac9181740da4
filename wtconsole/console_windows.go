package wtconsole

import (
	"os"

	"golang.org/x/sys/windows"
)

// Stdout returns a Writer that delivers UTF-16 text to standard
// output.
//
// When standard output is an attached console, code units are written
// directly with WriteConsoleW, which accepts UTF-16 natively and needs
// no byte order mark. When standard output has been redirected, the
// text is written as UTF-16LE bytes with a leading byte order mark.
func Stdout() Writer {
	var mode uint32
	if err := windows.GetConsoleMode(windows.Stdout, &mode); err != nil {
		return NewUTF16LEWriter(os.Stdout, true)
	}
	return consoleWriter{handle: windows.Stdout}
}

// consoleWriter writes UTF-16 code units directly to a Windows
// console.
type consoleWriter struct {
	handle windows.Handle
}

// WriteUTF16 writes the given UTF-16 code units to the console.
func (cw consoleWriter) WriteUTF16(units []uint16) error {
	for len(units) > 0 {
		var written uint32
		if err := windows.WriteConsole(cw.handle, &units[0], uint32(len(units)), &written, nil); err != nil {
			return err
		}
		if written == 0 {
			// Avoid a busy loop if the console accepts nothing.
			return windows.ERROR_WRITE_FAULT
		}
		units = units[written:]
	}
	return nil
}
