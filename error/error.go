package error

import (
	"strings"

	"github.com/next-trace/scg-errkit/contract"
)

// Base supplies the default half of contract.Error for embedding:
// no detail and no cause. Embedders still provide Error and Description.
type Base struct{}

func (Base) Detail() (string, bool) { return "", false }
func (Base) Cause() contract.Error  { return nil }

// Error is the general-purpose concrete error of the module.
//
// Fields:
//   - Description: short, stable summary (e.g. "file not found")
//   - Detail:      optional per-occurrence information (e.g. "/tmp/x")
//   - Code:        optional stable, machine-facing code (e.g. "config.load")
//   - Context:     structured extras, cloned on read and write
//   - Cause:       optional lower-level error
type Error struct {
	description string
	detail      string
	hasDetail   bool
	code        string
	context     map[string]any
	cause       contract.Error
}

var _ contract.Error = (*Error)(nil)

// ------ standard error interface

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	return Message(e)
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	if e == nil || e.cause == nil {
		return nil
	}

	return e.cause
}

// Is matches another *Error carrying the same non-empty code, so coded
// sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}

	return e.code != "" && e.code == t.code
}

// ------ contract.Error

func (e *Error) Description() string { return e.description }

func (e *Error) Detail() (string, bool) { return e.detail, e.hasDetail }

func (e *Error) Cause() contract.Error { return e.cause }

// ------ extras

func (e *Error) Code() string            { return e.code }
func (e *Error) Context() map[string]any { return cloneMap(e.context) }

// New creates an Error with the given description.
// An empty description is replaced with "error" so Description is never empty.
func New(description string, opts ...Option) *Error {
	if description == "" {
		description = defaultDescription
	}

	e := &Error{description: description}
	for _, o := range opts {
		o(e)
	}

	return e
}

// ------ fluent helpers (chainable, mutate receiver intentionally)

// WithContextKV sets a single key/value in the context map and returns the receiver.
func (e *Error) WithContextKV(k string, v any) *Error {
	if e == nil {
		return nil
	}

	if e.context == nil {
		e.context = map[string]any{}
	}

	if mv, ok := v.(map[string]any); ok {
		v = cloneMap(mv)
	}

	e.context[k] = v

	return e
}

// WithContextMap merges m into the context map and returns the receiver.
// Nil or empty maps are ignored. Existing keys are overwritten.
func (e *Error) WithContextMap(m map[string]any) *Error {
	if e == nil || len(m) == 0 {
		return e
	}

	if e.context == nil {
		e.context = map[string]any{}
	}

	for k, v := range cloneMap(m) {
		e.context[k] = v
	}

	return e
}

// Message renders the canonical text of a capability value:
// "description[: detail]" for each link of the cause chain, joined by ": ".
// The walk is bounded like Walk, so a cyclic chain still renders.
func Message(e contract.Error) string {
	if isNil(e) {
		return "<nil>"
	}

	var b strings.Builder

	for i, link := range Walk(e) {
		if i > 0 {
			b.WriteString(": ")
		}

		b.WriteString(link.Description())

		if d, ok := link.Detail(); ok && d != "" {
			b.WriteString(": ")
			b.WriteString(d)
		}

		// A foreign error's text already contains its own wrapped messages.
		if _, ok := link.(*foreign); ok {
			break
		}
	}

	return b.String()
}

func cloneMap(in map[string]any) map[string]any {
	if len(in) == 0 {
		return nil
	}

	out := make(map[string]any, len(in))

	for k, v := range in {
		// Nested string-keyed maps are cloned so no internal reference leaks.
		if mv, ok := v.(map[string]any); ok {
			out[k] = cloneMap(mv)
			continue
		}

		out[k] = v
	}

	return out
}
