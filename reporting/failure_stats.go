package reporting

import (
	"fmt"
	"strings"

	"github.com/ethereum-optimism/infra/op-teststats/metrics"
	"github.com/ethereum-optimism/infra/op-teststats/types"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const failureStatsTitle = "FAILURE STATISTICS"

// stageFailures groups failure labels by stage, keeping stages in the order
// they were first seen
type stageFailures struct {
	order  []types.Stage
	labels map[types.Stage][]string
}

func (sf *stageFailures) add(stage types.Stage, label string) {
	if _, ok := sf.labels[stage]; !ok {
		sf.order = append(sf.order, stage)
	}
	sf.labels[stage] = append(sf.labels[stage], label)
}

// FailureStats tabulates the failures of the current run by failing stage.
// Unlike the retry report it is never empty: a run without tasks still
// reports zero counts.
func (r *Reporter) FailureStats(currentRun int) (string, error) {
	tasks, err := r.src.Tasks(currentRun)
	if err != nil {
		return "", fmt.Errorf("failed to read tasks of run %d: %w", currentRun, err)
	}

	failures := &stageFailures{labels: make(map[types.Stage][]string)}
	numFailures := 0
	for _, t := range tasks {
		if !t.Failed() {
			continue
		}
		failures.add(t.FailedStage(), failureLabel(t))
		numFailures++
	}

	b := NewBuilder(failureStatsTitle)
	b.Blank()
	b.Linef("Total number of test cases: %d", len(tasks))
	b.Linef("Total number of failures: %d", numFailures)
	b.Blank()
	b.Line(renderFailureTable(failures))
	b.Rule()

	metrics.RecordReport(ReportFailureStats)
	return b.String(), nil
}

func failureLabel(t *types.TaskRecord) string {
	environ := types.NoneText
	if t.Check.Environ != nil {
		environ = t.Check.Environ.Name
	}
	partition := types.NoneText
	if t.Check.Partition != nil {
		partition = t.Check.Partition.FullName
	}
	return fmt.Sprintf("[%s, %s, %s]", t.Check.Name, environ, partition)
}

func renderFailureTable(failures *stageFailures) string {
	tw := table.NewWriter()
	tw.SetStyle(plainTableStyle())
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 13, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, WidthMin: 5, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	tw.AppendHeader(table.Row{"Phase", "#", "Failing test cases"})

	for _, stage := range failures.order {
		labels := failures.labels[stage]
		tw.AppendRow(table.Row{stage.String(), len(labels), labels[0]})
		for _, label := range labels[1:] {
			tw.AppendRow(table.Row{"", "", label})
		}
	}
	lines := strings.Split(tw.Render(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

// plainTableStyle renders a borderless table with a dashed header underline
func plainTableStyle() table.Style {
	style := table.StyleDefault
	style.Box.PaddingLeft = ""
	style.Box.PaddingRight = ""
	style.Box.MiddleVertical = " "
	style.Box.MiddleSeparator = " "
	style.Box.MiddleHorizontal = "-"
	style.Format.Header = text.FormatDefault
	style.Format.Footer = text.FormatDefault
	style.Options.DrawBorder = false
	style.Options.SeparateColumns = true
	style.Options.SeparateHeader = true
	style.Options.SeparateRows = false
	style.Options.SeparateFooter = false
	return style
}
