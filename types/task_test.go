package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckInfo(t *testing.T) {
	tests := []struct {
		name     string
		check    Check
		expected string
	}{
		{
			name:     "name only",
			check:    Check{Name: "stream_check"},
			expected: "stream_check",
		},
		{
			name: "partition and environment",
			check: Check{
				Name:      "stream_check",
				Partition: &Partition{Name: "gpu", FullName: "daint:gpu"},
				Environ:   &Environment{Name: "PrgEnv-gnu"},
			},
			expected: "stream_check on daint:gpu using PrgEnv-gnu",
		},
		{
			name: "environment without partition",
			check: Check{
				Name:    "stream_check",
				Environ: &Environment{Name: "builtin"},
			},
			expected: "stream_check using builtin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.check.Info())
		})
	}
}

func TestPerfValueQuantity(t *testing.T) {
	assert.Equal(t, "bandwidth", PerfValue{Key: "daint:gpu:bandwidth"}.Quantity())
	assert.Equal(t, "latency", PerfValue{Key: "latency"}.Quantity())
	assert.Equal(t, "", PerfValue{Key: "daint:gpu:"}.Quantity())
}

func TestTaskRecordFailed(t *testing.T) {
	passed := &TaskRecord{Check: Check{Name: "a"}}
	assert.False(t, passed.Failed())
	assert.Equal(t, Stage(""), passed.FailedStage())

	failed := &TaskRecord{
		Check:   Check{Name: "b"},
		Failure: &Failure{Stage: StageSanity, Err: errors.New("boom")},
	}
	assert.True(t, failed.Failed())
	assert.Equal(t, StageSanity, failed.FailedStage())

	// A failure without a diagnostic is still a failure
	bare := &TaskRecord{Failure: &Failure{Stage: StageRun}}
	assert.True(t, bare.Failed())
}

func TestStage(t *testing.T) {
	assert.True(t, StageSanity.IsKnown())
	assert.True(t, StageCompileWait.IsKnown())
	assert.False(t, Stage("teardown").IsKnown())
	assert.False(t, Stage("").IsKnown())
	assert.Equal(t, "unknown", Stage("").String())
	assert.Equal(t, "performance", StagePerformance.String())
}
