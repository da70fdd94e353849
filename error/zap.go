package error

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/next-trace/scg-errkit/contract"
	"github.com/next-trace/scg-errkit/typeid"
)

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (e *Error) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if e == nil {
		return nil
	}

	return chainMarshaler{links: Chain(e)}.MarshalLogObject(enc)
}

// Field returns a zap field named "error" holding err's whole cause chain.
func Field(err contract.Error) zap.Field { return NamedField("error", err) }

// NamedField is Field with a caller-chosen key. A nil err yields zap.Skip().
// The links logged are exactly those Walk visits.
func NamedField(key string, err contract.Error) zap.Field {
	if isNil(err) {
		return zap.Skip()
	}

	return zap.Object(key, chainMarshaler{links: Chain(err)})
}

// chainMarshaler encodes links[i] and nests links[i+1] under "cause".
type chainMarshaler struct {
	links []contract.Error
	i     int
}

func (m chainMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	link := m.links[m.i]

	enc.AddString("type", typeid.Runtime(link).String())
	enc.AddString("description", link.Description())

	if d, ok := link.Detail(); ok {
		enc.AddString("detail", d)
	}

	if e, ok := link.(*Error); ok {
		if e.code != "" {
			enc.AddString("code", e.code)
		}

		if len(e.context) > 0 {
			if err := enc.AddReflected("context", e.Context()); err != nil {
				return err
			}
		}
	}

	if m.i+1 < len(m.links) {
		return enc.AddObject("cause", chainMarshaler{links: m.links, i: m.i + 1})
	}

	// Walk stopped early on a cycle or the depth bound.
	if CauseOf(link) != nil {
		enc.AddBool("truncated", true)
	}

	return nil
}
