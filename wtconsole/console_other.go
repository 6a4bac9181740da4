//go:build !windows

package wtconsole

import "os"

// Stdout returns a Writer that delivers UTF-16 text to standard
// output. On non-Windows platforms there is no console that accepts
// UTF-16 natively, so the text is always written as UTF-16LE bytes
// with a leading byte order mark.
func Stdout() Writer {
	return NewUTF16LEWriter(os.Stdout, true)
}
