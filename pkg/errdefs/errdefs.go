// Package errdefs defines the error kinds shared across the module and
// helpers to attach context to them.
package errdefs

import (
	"errors"
	"fmt"
)

// Newf joins the base error with a formatted error built by fmt.Errorf.
func Newf(base error, format string, args ...any) error {
	return errors.Join(base, fmt.Errorf(format, args...))
}

// NewE joins the base error with err. If err is nil or already carries
// the base error, err is returned unchanged.
func NewE(base error, err error) error {
	if err == nil || errors.Is(err, base) {
		return err
	}
	return errors.Join(base, err)
}
