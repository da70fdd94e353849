package error

import (
	"github.com/next-trace/scg-errkit/contract"
	"github.com/next-trace/scg-errkit/typeid"
)

// Is reports whether the concrete type held by h is exactly T.
//
// Only h itself is inspected; causes are not. Interface types never match,
// and a nil handle matches nothing.
func Is[T any](h contract.Error) bool {
	if h == nil {
		return false
	}

	return typeid.Of[T]() == typeid.Runtime(h)
}

// DowncastRef returns the value held by h as a T when Is[T](h) holds.
// On mismatch it returns the zero T and false.
//
// For pointer-backed handles ask for the pointer type (DowncastRef[*MyErr]).
func DowncastRef[T any](h contract.Error) (T, bool) {
	var zero T
	if !Is[T](h) {
		return zero, false
	}

	v, ok := any(h).(T)
	if !ok {
		return zero, false
	}

	return v, true
}

// DowncastMut returns the *T held by h when h's concrete type is *T.
//
// The pointer is shared with h, so writes through it are visible through h.
// The caller must hold h exclusively while mutating.
func DowncastMut[T any](h contract.Error) (*T, bool) {
	return DowncastRef[*T](h)
}

// Find walks err's cause chain (see Walk) and returns the first link whose
// concrete type is T.
//
// Plain Go errors are followed through errors.Unwrap only, so targets behind
// Unwrap() []error (errors.Join, several %w verbs) are not reached; use
// errors.As for those trees.
func Find[T any](err error) (T, bool) {
	for _, link := range Walk(Ensure(err)) {
		if v, ok := DowncastRef[T](link); ok {
			return v, true
		}
	}

	var zero T

	return zero, false
}
