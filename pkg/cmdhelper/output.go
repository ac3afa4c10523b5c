// Package cmdhelper provides common helpers for building cli commands.
package cmdhelper

import (
	"fmt"
	"io"
)

// Fprintf is a wrapper around fmt.Fprintf that appends a trailing
// newline and suppresses the error check.
func Fprintf(w io.Writer, format string, args ...any) {
	if len(format) == 0 || format[len(format)-1] != '\n' {
		format += "\n"
	}
	_, _ = fmt.Fprintf(w, format, args...)
}
