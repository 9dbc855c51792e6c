package teststats

import (
	"errors"
	"strings"
	"testing"

	"github.com/acarl005/stripansi"
	"github.com/stretchr/testify/assert"

	"github.com/ethereum-optimism/infra/op-teststats/types"
)

func task(name string, failed bool) *types.TaskRecord {
	rec := &types.TaskRecord{Check: types.Check{Name: name}}
	if failed {
		rec.Failure = &types.Failure{Stage: types.StageRun, Err: errors.New("boom")}
	}
	return rec
}

func TestRenderSummary(t *testing.T) {
	runs := [][]*types.TaskRecord{
		{task("a", false), task("b", true), task("c", true)},
		{task("b", false), task("c", true)},
	}
	out := stripansi.Strip(renderSummary("abc", runs))

	assert.Contains(t, out, "Test Session Summary (abc)")
	lines := strings.Split(out, "\n")

	var rows []string
	for _, l := range lines {
		lower := strings.ToLower(l)
		if strings.Contains(lower, "✓ pass") || strings.Contains(lower, "✗ fail") {
			rows = append(rows, strings.Join(strings.Fields(l), " "))
		}
	}
	assert.Equal(t, []string{
		"0 3 1 2 ✗ fail",
		"1 2 1 1 ✗ fail",
		"FINAL 2 1 1 ✗ FAIL",
	}, rows)
}

func TestRenderSummaryAllPassed(t *testing.T) {
	runs := [][]*types.TaskRecord{{task("a", false)}}
	out := stripansi.Strip(renderSummary("abc", runs))
	assert.Contains(t, out, "pass")
	assert.NotContains(t, out, "✗")
}

func TestCountRun(t *testing.T) {
	c := countRun([]*types.TaskRecord{task("a", false), task("b", true)})
	assert.Equal(t, runCounts{total: 2, passed: 1, failed: 1}, c)
	assert.Equal(t, runCounts{}, countRun(nil))
}
