package reporting

import (
	"testing"

	"github.com/ethereum-optimism/infra/op-teststats/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	store := runsOf(t,
		[]*types.TaskRecord{failing("a", "gpu", "gnu", types.StageSanity, "bad")},
		[]*types.TaskRecord{withPerf(passing("a", "gpu", "gnu"), types.PerfValue{Key: "v", Value: 1})},
	)
	r := NewReporter(store, discardLogger())

	expected := map[string]string{
		ReportRetry:       r.RetryReport(1),
		ReportFailures:    r.FailureReport(1),
		ReportPerformance: r.PerformanceReport(),
	}
	stats, err := r.FailureStats(1)
	require.NoError(t, err)
	expected[ReportFailureStats] = stats

	for _, name := range ReportNames {
		t.Run(name, func(t *testing.T) {
			content, err := r.Generate(name, 1)
			require.NoError(t, err)
			assert.Equal(t, expected[name], content)
		})
	}

	_, err = r.Generate("bogus", 1)
	assert.Error(t, err)
}
