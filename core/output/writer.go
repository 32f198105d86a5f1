// Package output handles writing rendered pages to the terminal.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Writer writes rendered output to a stream, normally stdout.
type Writer struct {
	out io.Writer
}

// New creates a Writer targeting out.
func New(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Write writes data as-is.
func (w *Writer) Write(data []byte) error {
	if _, err := w.out.Write(data); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// IsTerminal reports whether w is a TTY (including Cygwin/MSYS terminals).
// Other character devices such as /dev/null are not terminals.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ColorEnabled reports whether highlighting should be written to w.
// disabled is the --no-color flag. For stdout, color.NoColor already
// covers NO_COLOR, TERM=dumb and the TTY check.
func ColorEnabled(w io.Writer, disabled bool) bool {
	if disabled || !IsTerminal(w) {
		return false
	}
	if f, ok := w.(*os.File); ok && f == os.Stdout {
		return !color.NoColor
	}
	return os.Getenv("NO_COLOR") == ""
}
