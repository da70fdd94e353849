package error

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/next-trace/scg-errkit/contract"
	"github.com/next-trace/scg-errkit/typeid"
)

// MaxChainDepth bounds every cause-chain traversal in this package.
const MaxChainDepth = 256

// Sentinels reported by Validate. Match with errors.Is.
var (
	ErrCauseCycle   = New("cause chain contains a cycle", WithCode("chain.cycle"))
	ErrChainTooDeep = New("cause chain exceeds maximum depth", WithCode("chain.too_deep"))
)

// Walk yields err and then each successive cause, with its depth (0 for err).
//
// The walk stops at the first missing cause, when a pointer-backed link (or
// the pointer-backed error behind an Ensure adapter) is seen a second time,
// or after MaxChainDepth links, whichever comes first.
func Walk(err contract.Error) iter.Seq2[int, contract.Error] {
	return func(yield func(int, contract.Error) bool) {
		var seen map[any]struct{}

		link := err
		for depth := 0; depth < MaxChainDepth && !isNil(link); depth++ {
			if key, ok := visitKey(link); ok {
				if _, dup := seen[key]; dup {
					return
				}

				if seen == nil {
					seen = map[any]struct{}{}
				}

				seen[key] = struct{}{}
			}

			if !yield(depth, link) {
				return
			}

			link = CauseOf(link)
		}
	}
}

// Chain returns the links of err's cause chain, outermost first.
func Chain(err contract.Error) []contract.Error {
	var out []contract.Error
	for _, link := range Walk(err) {
		out = append(out, link)
	}

	return out
}

// Root returns the innermost reachable link of err's chain, or nil for nil.
func Root(err contract.Error) contract.Error {
	var root contract.Error
	for _, link := range Walk(err) {
		root = link
	}

	return root
}

// Depth returns the number of links Walk visits.
func Depth(err contract.Error) int {
	n := 0
	for range Walk(err) {
		n++
	}

	return n
}

// Validate reports whether err's chain is well formed: acyclic and at most
// MaxChainDepth links long. It returns nil for a well-formed (or nil) chain.
func Validate(err contract.Error) error {
	seen := map[any]int{}

	link := err
	for depth := 0; !isNil(link); depth++ {
		if depth >= MaxChainDepth {
			return New(ErrChainTooDeep.description,
				WithCode(ErrChainTooDeep.code),
				WithDetail(fmt.Sprintf("more than %d links", MaxChainDepth)),
			)
		}

		if key, ok := visitKey(link); ok {
			if first, dup := seen[key]; dup {
				return New(ErrCauseCycle.description,
					WithCode(ErrCauseCycle.code),
					WithDetail(fmt.Sprintf("%s at depth %d repeats depth %d", typeid.Runtime(link), depth, first)),
				)
			}

			seen[key] = depth
		}

		link = CauseOf(link)
	}

	return nil
}

// visitKey identifies a link for cycle detection. Foreign adapters are
// rebuilt on every step, so they are keyed on the error they adapt.
// Only pointer-backed values are tracked.
func visitKey(link contract.Error) (any, bool) {
	var v any = link
	if f, ok := link.(*foreign); ok {
		v = f.err
	}

	return v, isPointer(v)
}

func isPointer(v any) bool { return reflect.ValueOf(v).Kind() == reflect.Pointer }
