package error

import "github.com/next-trace/scg-errkit/contract"

// Option configures an Error during construction via New and Wrap.
type Option func(*Error)

// defaultDescription replaces an empty description.
const defaultDescription = "error"

// WithDetail sets the per-occurrence detail.
func WithDetail(detail string) Option {
	return func(e *Error) {
		e.detail = detail
		e.hasDetail = true
	}
}

// WithCode sets the machine-facing code.
func WithCode(code string) Option { return func(e *Error) { e.code = code } }

// WithContext sets the initial context map. The provided map is defensively cloned.
func WithContext(ctx map[string]any) Option {
	return func(e *Error) { e.context = cloneMap(ctx) }
}

// WithCause sets the error returned by Cause and Unwrap.
// A typed-nil cause is stored as no cause.
func WithCause(cause contract.Error) Option {
	return func(e *Error) {
		if isNil(cause) {
			e.cause = nil
			return
		}

		e.cause = cause
	}
}
