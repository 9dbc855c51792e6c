package teststats

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ethereum-optimism/infra/op-teststats/types"
)

type runCounts struct {
	total  int
	passed int
	failed int
}

func countRun(tasks []*types.TaskRecord) runCounts {
	c := runCounts{total: len(tasks)}
	for _, t := range tasks {
		if t.Failed() {
			c.failed++
		} else {
			c.passed++
		}
	}
	return c
}

func getResultString(failed int) string {
	if failed == 0 {
		return "✓ pass"
	}
	return "✗ fail"
}

// renderSummary renders one row per run. The footer reflects the final run,
// which decides the outcome of the session.
func renderSummary(sessionID string, runs [][]*types.TaskRecord) string {
	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("Test Session Summary (%s)", sessionID))
	t.AppendHeader(table.Row{"Run", "Tests", "Passed", "Failed", "Status"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Run", Align: text.AlignRight},
		{Name: "Tests", Align: text.AlignRight},
		{Name: "Passed", Align: text.AlignRight},
		{Name: "Failed", Align: text.AlignRight},
	})

	var last runCounts
	for i, tasks := range runs {
		last = countRun(tasks)
		t.AppendRow(table.Row{i, last.total, last.passed, last.failed, getResultString(last.failed)})
	}

	if last.failed == 0 {
		t.SetStyle(table.StyleColoredBlackOnGreenWhite)
	} else {
		t.SetStyle(table.StyleColoredBlackOnRedWhite)
	}
	t.AppendFooter(table.Row{"FINAL", last.total, last.passed, last.failed, getResultString(last.failed)})

	return t.Render()
}
