// Package typeid identifies concrete Go types at runtime.
//
// An ID is comparable with == and is unique per concrete type for the
// lifetime of the process. It is the primitive the error package uses to
// decide whether a polymorphic error handle holds a given concrete type.
package typeid

import "reflect"

// ID is an opaque, comparable identifier of a concrete type.
// The zero ID denotes "no type" and is what Runtime reports for a nil interface.
type ID struct {
	t reflect.Type
}

// Of returns the identifier of T.
//
// For an interface type T the result never equals a Runtime identifier,
// since Runtime always reports the dynamic (concrete) type.
func Of[T any]() ID { return ID{t: reflect.TypeFor[T]()} }

// Runtime returns the identifier of the dynamic type held by v.
func Runtime(v any) ID {
	if v == nil {
		return ID{}
	}

	return ID{t: reflect.TypeOf(v)}
}

// IsZero reports whether id denotes no type.
func (id ID) IsZero() bool { return id.t == nil }

func (id ID) String() string {
	if id.t == nil {
		return "<nil>"
	}

	return id.t.String()
}
