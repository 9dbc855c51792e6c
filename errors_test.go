package teststats

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuntimeError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewRuntimeError(cause)
	assert.Equal(t, "runtime error: disk full", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsRuntimeError(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsRuntimeError(cause))
	assert.False(t, IsRuntimeError(nil))
}

func TestTestFailureError(t *testing.T) {
	err := NewTestFailureError(2, 3)
	assert.Equal(t, "test failure: 3 failure(s) in run 2", err.Error())
	assert.True(t, IsTestFailureError(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsTestFailureError(NewRuntimeError(errors.New("x"))))
	assert.False(t, IsRuntimeError(err))
}
