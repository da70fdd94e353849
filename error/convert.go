package error

import (
	"fmt"
	"sync"

	"github.com/next-trace/scg-errkit/contract"
	"github.com/next-trace/scg-errkit/typeid"
)

// Converter produces a T from an E. One converter is written per
// (source, target) pair a layer wants to absorb; a pair without one simply
// has nothing to pass to Convert, so the mismatch is caught at compile time.
type Converter[E, T any] func(E) T

// Identity is the converter every type has from itself.
func Identity[T any]() Converter[T, T] { return func(err T) T { return err } }

// Convert applies conv to err.
func Convert[E, T any](err E, conv Converter[E, T]) T { return conv(err) }

// Registry re-types errors arriving at a layer boundary into that layer's
// error type T, keyed by the concrete type of the incoming error.
//
// It is reflexive: an error that already is a T (its concrete type, or an
// implementation when T is an interface) converts to itself. A Registry is safe for concurrent use; register converters before
// the first Convert to avoid racing with readers on the same key.
type Registry[T any] struct {
	mu       sync.RWMutex
	conv     map[typeid.ID]func(contract.Error) T
	fallback func(contract.Error) T
}

// NewRegistry returns an empty registry. fallback, if non-nil, is used by
// Propagate for errors with no registered converter.
func NewRegistry[T any](fallback func(contract.Error) T) *Registry[T] {
	return &Registry[T]{
		conv:     map[typeid.ID]func(contract.Error) T{},
		fallback: fallback,
	}
}

// Absorb registers conv for errors whose concrete type is E and returns r.
// E must be a concrete type; an interface E never matches a runtime type.
// Registering E twice replaces the earlier converter.
func Absorb[E contract.Error, T any](r *Registry[T], conv Converter[E, T]) *Registry[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.conv[typeid.Of[E]()] = func(err contract.Error) T {
		return conv(err.(E))
	}

	return r
}

// Convert re-types err into T. It reports false for nil and for errors that
// are neither a T nor of a registered concrete type.
func (r *Registry[T]) Convert(err contract.Error) (T, bool) {
	var zero T
	if isNil(err) {
		return zero, false
	}

	// For a concrete T this matches exactly T; for an interface T it matches
	// any error already implementing T.
	if v, ok := any(err).(T); ok {
		return v, true
	}

	r.mu.RLock()
	conv, ok := r.conv[typeid.Runtime(err)]
	r.mu.RUnlock()

	if !ok {
		return zero, false
	}

	return conv(err), true
}

// Propagate is Convert for call sites that must always produce a T.
// A nil err yields the zero T. Unregistered types go through the fallback;
// without one Propagate panics, since the registry was not set up for the
// error reaching it.
func (r *Registry[T]) Propagate(err contract.Error) T {
	var zero T
	if isNil(err) {
		return zero
	}

	if v, ok := r.Convert(err); ok {
		return v
	}

	if r.fallback == nil {
		panic(fmt.Sprintf("error: no conversion from %s", typeid.Runtime(err)))
	}

	return r.fallback(err)
}

// Registered reports whether a converter for concrete type E is present.
func Registered[E contract.Error, T any](r *Registry[T]) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.conv[typeid.Of[E]()]

	return ok
}
