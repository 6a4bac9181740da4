// Package wtconsole delivers UTF-16 text to output sinks. On Windows
// it can write code units directly to an attached console; everywhere
// else, and for redirected output, it serializes them as UTF-16LE
// bytes.
package wtconsole

import (
	"encoding/binary"
	"io"
)

// bom is the byte order mark, U+FEFF.
const bom = 0xFEFF

// Writer writes UTF-16 text to an output sink.
type Writer interface {
	// WriteUTF16 writes the given UTF-16 code units to the sink.
	WriteUTF16(units []uint16) error
}

// utf16leWriter writes UTF-16 code units to an io.Writer as UTF-16LE
// bytes.
type utf16leWriter struct {
	w        io.Writer
	bom      bool
	wroteBOM bool
}

// NewUTF16LEWriter returns a Writer that serializes UTF-16 code units
// as UTF-16LE bytes on w. If withBOM is true, a single byte order mark
// precedes the first code unit written.
func NewUTF16LEWriter(w io.Writer, withBOM bool) Writer {
	return &utf16leWriter{
		w:   w,
		bom: withBOM,
	}
}

// WriteUTF16 writes the given UTF-16 code units to the underlying
// writer.
func (lw *utf16leWriter) WriteUTF16(units []uint16) error {
	if len(units) == 0 {
		return nil
	}
	buf := make([]byte, 0, 2*(len(units)+1))
	if lw.bom && !lw.wroteBOM {
		buf = binary.LittleEndian.AppendUint16(buf, bom)
	}
	for _, unit := range units {
		buf = binary.LittleEndian.AppendUint16(buf, unit)
	}
	if _, err := lw.w.Write(buf); err != nil {
		return err
	}
	lw.wroteBOM = lw.wroteBOM || lw.bom
	return nil
}
