// Package contract exposes the minimal error capability used by other packages.
//
// Implementations must keep every method a pure query over state captured at
// construction, so a value can be read from many goroutines without locking.
package contract

// Error is the capability every error value in the module satisfies.
//
// Implementations must:
//   - Return a non-empty Description that is stable across calls.
//   - Report ok=false from Detail when there is no per-occurrence detail.
//   - Return a nil interface (not a typed nil) from Cause when there is no cause.
//   - Never form a cycle through Cause.
//
// error.Base supplies the "no detail" and "no cause" defaults for embedding.
type Error interface {
	error
	// Description is a short, usually static, summary.
	Description() string
	// Detail carries dynamic information about this occurrence (e.g. a path).
	Detail() (string, bool)
	// Cause is the lower-level error this one wraps, if any.
	Cause() Error
}
