// Package contract implements the precondition checks shared by all the
// positionless packages. Every failure in this module is a defect in the
// calling code, never a recoverable condition, so a violated precondition
// panics with a *Violation instead of returning an error.
package contract

import "fmt"

// Violation describes a broken precondition. It implements error so that
// callers recovering at a process boundary can log it like any other error.
type Violation struct {
	// Op is the operation whose precondition was violated, e.g. "partition.Grow".
	Op string
	// Msg describes the violated precondition.
	Msg string
}

func (r *Violation) Error() string {
	return fmt.Sprintf("contract violation in %s: %s", r.Op, r.Msg)
}

// Assert panics with a *Violation if cond is false.
func Assert(cond bool, op, format string, args ...any) {
	if !cond {
		panic(&Violation{Op: op, Msg: fmt.Sprintf(format, args...)})
	}
}
