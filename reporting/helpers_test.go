package reporting

import (
	"errors"
	"testing"

	"github.com/ethereum-optimism/infra/op-teststats/stats"
	"github.com/ethereum-optimism/infra/op-teststats/types"
	"github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/require"
)

func discardLogger() log.Logger {
	return log.NewLogger(log.DiscardHandler())
}

// runsOf builds a store whose run i holds runs[i]
func runsOf(t *testing.T, runs ...[]*types.TaskRecord) *stats.Store {
	t.Helper()
	s := stats.NewStore(discardLogger())
	for run, tasks := range runs {
		for _, task := range tasks {
			require.NoError(t, s.AddTask(run, task))
		}
	}
	return s
}

func passing(name, partition, environ string) *types.TaskRecord {
	return &types.TaskRecord{Check: newCheck(name, partition, environ)}
}

func failing(name, partition, environ string, stage types.Stage, reason string) *types.TaskRecord {
	tr := &types.TaskRecord{
		Check:   newCheck(name, partition, environ),
		Failure: &types.Failure{Stage: stage},
	}
	if reason != "" {
		tr.Failure.Err = errors.New(reason)
	}
	return tr
}

func newCheck(name, partition, environ string) types.Check {
	c := types.Check{
		Name:        name,
		Description: name + " description",
		NumTasks:    1,
		StageDir:    "/stage/" + name,
		OutputDir:   "/output/" + name,
	}
	if partition != "" {
		c.Partition = &types.Partition{Name: partition, FullName: "sys:" + partition}
	}
	if environ != "" {
		c.Environ = &types.Environment{Name: environ}
	}
	return c
}
