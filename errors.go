package teststats

import (
	"errors"
	"fmt"
)

// RuntimeError represents an operational error that should lead to exit code 2,
// such as an unreadable session file or a report that could not be written
type RuntimeError struct {
	Err error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error: %v", e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// NewRuntimeError creates a new RuntimeError
func NewRuntimeError(err error) *RuntimeError {
	return &RuntimeError{Err: err}
}

// IsRuntimeError checks if the error is or wraps a RuntimeError
func IsRuntimeError(err error) bool {
	var runtimeErr *RuntimeError
	return err != nil && errors.As(err, &runtimeErr)
}

// TestFailureError signals that the final run of the session has failures (exit code 1)
type TestFailureError struct {
	Run      int
	Failures int
}

func (e *TestFailureError) Error() string {
	return fmt.Sprintf("test failure: %d failure(s) in run %d", e.Failures, e.Run)
}

// NewTestFailureError creates a new TestFailureError
func NewTestFailureError(run, failures int) *TestFailureError {
	return &TestFailureError{Run: run, Failures: failures}
}

// IsTestFailureError checks if the error is or wraps a TestFailureError
func IsTestFailureError(err error) bool {
	var testErr *TestFailureError
	return err != nil && errors.As(err, &testErr)
}
