package binder

import (
	"errors"
	"fmt"
)

// InternalFault reports a structural/invariant violation the binder
// detected in its own state (spec §7) — as opposed to Diagnostic, which
// reports a defect in the analyzed source. Built on fmt.Errorf +
// errors.Join rather than a bespoke error type hierarchy, the same
// errorf/errorUnexpected convention a hand-written recursive-descent
// parser typically uses for its own internal faults.
type InternalFault struct {
	err error
}

func (f *InternalFault) Error() string { return f.err.Error() }
func (f *InternalFault) Unwrap() error { return f.err }

func internalFaultf(format string, args ...any) *InternalFault {
	return &InternalFault{err: fmt.Errorf(format, args...)}
}

// wrapFault joins cause under a higher-level InternalFault message,
// preserving errors.Is/errors.As access to cause.
func wrapFault(cause error, format string, args ...any) *InternalFault {
	msg := fmt.Errorf(format, args...)
	return &InternalFault{err: errors.Join(msg, cause)}
}

// recoverFault converts a panicking *InternalFault into a returned
// error, and re-panics anything else. The walker panics rather than
// threading an error return through every Visit method (there is no
// other sane way to abort a self-redispatching AST walk early); BindFile
// is the single place that turns the panic back into a normal Go error.
func recoverFault(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if f, ok := r.(*InternalFault); ok {
		*errp = f
		return
	}
	panic(r)
}
