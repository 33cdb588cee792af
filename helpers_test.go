package qoi

import "github.com/pkg/errors"

// asErr is a thin errors.As wrapper so test files don't each need their
// own import of pkg/errors just for this one call.
func asErr(err error, target **Error) bool {
	return errors.As(err, target)
}
