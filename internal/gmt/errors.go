// Package gmt bridges gridding requests to the external GMT engine: option
// marshalling, scoped temp artifacts, and a session abstraction around one
// synchronous module invocation.
package gmt

import "fmt"

// InvalidInputError reports input that could not be classified or an option
// the wrapper does not recognize. It is always raised before the engine is
// invoked.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// invalidInputf builds an InvalidInputError with a formatted reason.
func invalidInputf(format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}

// ModuleError reports a failure signaled by the external computation module.
// Stderr holds whatever diagnostics the engine produced (tension parameter
// invalid, degenerate geometry, triangulation failure).
type ModuleError struct {
	Module string
	Stderr string
	Err    error
}

func (e *ModuleError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("gmt %s failed: %v: %s", e.Module, e.Err, e.Stderr)
	}
	return fmt.Sprintf("gmt %s failed: %v", e.Module, e.Err)
}

func (e *ModuleError) Unwrap() error {
	return e.Err
}
