package error

import (
	"errors"
	"reflect"

	"github.com/next-trace/scg-errkit/contract"
)

// Wrap creates an Error describing a failure caused by cause.
// A nil cause yields an Error with no cause.
func Wrap(cause contract.Error, description string, opts ...Option) *Error {
	e := New(description, opts...)
	if !isNil(cause) {
		e.cause = cause
	}

	return e
}

// Ensure converts any error to a contract.Error.
//
// Behavior:
//   - nil input (or a typed nil) => nil output
//   - if err already implements contract.Error => returned as-is
//   - otherwise it is adapted: Description is err.Error() and Cause adapts
//     errors.Unwrap(err)
func Ensure(err error) contract.Error {
	if isNil(err) {
		return nil
	}

	if ce, ok := err.(contract.Error); ok {
		return ce
	}

	return &foreign{err: err}
}

// CauseOf returns the next link of err's chain.
// For a contract.Error that is Cause(); for any other error it is the adapted
// errors.Unwrap(err). Typed-nil causes are reported as nil.
func CauseOf(err error) contract.Error {
	if isNil(err) {
		return nil
	}

	if ce, ok := err.(contract.Error); ok {
		c := ce.Cause()
		if isNil(c) {
			return nil
		}

		return c
	}

	return Ensure(errors.Unwrap(err))
}

// foreign adapts an error that does not implement contract.Error.
type foreign struct {
	err error
}

func (f *foreign) Error() string          { return f.err.Error() }
func (f *foreign) Unwrap() error          { return f.err }
func (f *foreign) Detail() (string, bool) { return "", false }
func (f *foreign) Cause() contract.Error  { return Ensure(errors.Unwrap(f.err)) }

// Description is the adapted error's text, or "error" when that is empty.
func (f *foreign) Description() string {
	if msg := f.err.Error(); msg != "" {
		return msg
	}

	return defaultDescription
}

// Foreign returns the error adapted by Ensure, if h is such an adapter.
func Foreign(h contract.Error) (error, bool) {
	f, ok := h.(*foreign)
	if !ok {
		return nil, false
	}

	return f.err, true
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
