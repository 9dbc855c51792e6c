package metrics

import (
	"errors"
	"testing"

	"github.com/ethereum-optimism/infra/op-teststats/types"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestErrToLabel(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil error", err: nil, want: "nil"},
		{name: "plain", err: errors.New("no such run"), want: "no_such_run"},
		{name: "punctuation", err: errors.New("open report.json: permission denied"), want: "open_reportjson_permission_denied"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errToLabel(tt.err))
		})
	}
}

func TestRecordTask(t *testing.T) {
	beforeFail := testutil.ToFloat64(tasksTotal.WithLabelValues("fail"))
	beforeSanity := testutil.ToFloat64(taskFailures.WithLabelValues("sanity"))
	beforeSuccess := testutil.ToFloat64(tasksTotal.WithLabelValues("success"))

	RecordTask(true, types.StageSanity)
	RecordTask(false, "")

	assert.Equal(t, beforeFail+1, testutil.ToFloat64(tasksTotal.WithLabelValues("fail")))
	assert.Equal(t, beforeSanity+1, testutil.ToFloat64(taskFailures.WithLabelValues("sanity")))
	assert.Equal(t, beforeSuccess+1, testutil.ToFloat64(tasksTotal.WithLabelValues("success")))
}

func TestRecordRunAdvance(t *testing.T) {
	RecordRunAdvance(3)
	assert.Equal(t, float64(3), testutil.ToFloat64(currentRun))
}
