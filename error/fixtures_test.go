package error_test

import (
	"github.com/next-trace/scg-errkit/contract"
	apiError "github.com/next-trace/scg-errkit/error"
)

type MissingFile struct {
	apiError.Base
	Path string
}

func (m *MissingFile) Error() string          { return apiError.Message(m) }
func (m *MissingFile) Description() string    { return "file not found" }
func (m *MissingFile) Detail() (string, bool) { return m.Path, true }

type WrappedError struct {
	apiError.Base
	Inner *MissingFile
}

func (w *WrappedError) Error() string       { return apiError.Message(w) }
func (w *WrappedError) Description() string { return "wrapped failure" }
func (w *WrappedError) Cause() contract.Error {
	if w.Inner == nil {
		return nil
	}

	return w.Inner
}

// A and B are unrelated value types.
type A struct {
	apiError.Base
	N int
}

func (A) Error() string       { return "a failed" }
func (A) Description() string { return "a failed" }

type B struct {
	apiError.Base
	N int
}

func (B) Error() string       { return "b failed" }
func (B) Description() string { return "b failed" }

type AppError struct {
	apiError.Base
	Kind  string
	Inner contract.Error
}

func (a *AppError) Error() string       { return apiError.Message(a) }
func (a *AppError) Description() string { return "application error: " + a.Kind }
func (a *AppError) Cause() contract.Error {
	if a.Inner == nil {
		return nil
	}

	return a.Inner
}

// loopErr can be wired into a cycle.
type loopErr struct {
	apiError.Base
	name string
	next *loopErr
}

func (l *loopErr) Error() string       { return apiError.Message(l) }
func (l *loopErr) Description() string { return "loop " + l.name }
func (l *loopErr) Cause() contract.Error {
	if l.next == nil {
		return nil
	}

	return l.next
}

// selfLoop is a plain Go error that unwraps to itself.
type selfLoop struct{}

func (s *selfLoop) Error() string { return "self loop" }
func (s *selfLoop) Unwrap() error { return s }
