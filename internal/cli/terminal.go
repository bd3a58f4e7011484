package cli

import (
	"io"
	"os"
)

// IsTerminal reports whether w is a file attached to a terminal. Buffers and
// pipes are never terminals.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}
