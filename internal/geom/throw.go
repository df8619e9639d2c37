package geom

import "github.com/pkg/errors"

// Threading errors up and down the case analysis and the flip loop would add a
// lot of noise for conditions that can only arise from a bug. Instead, those
// paths panic with an *Error, and the public API recovers to convert them.

type Error struct {
	cause error
}

func (e *Error) Error() string { return e.cause.Error() }
func (e *Error) Unwrap() error { return e.cause }

// Panic with an *Error.
func Fatalf(format string, args ...interface{}) {
	panic(&Error{errors.Errorf(format, args...)})
}

// HandlePanicRecover is meant to be called as HandlePanicRecover(recover()) in
// a deferred function. Panics raised by Fatalf become errors; anything else is
// a real panic and is re-raised.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if err, ok := r.(*Error); ok {
			return err
		}
		panic(r)
	}
	return nil
}
