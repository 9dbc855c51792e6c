package reporting

import (
	"strconv"

	"github.com/ethereum-optimism/infra/op-teststats/metrics"
	"github.com/ethereum-optimism/infra/op-teststats/types"
)

const (
	performanceReportTitle = "PERFORMANCE REPORT"
	noUnitText             = "(no unit specified)"
)

// PerformanceReport lists the performance values of every task across all
// runs, in arrival order. Test and partition headers are emitted only when they
// differ from the previously reported task. The report is empty when no task
// recorded performance values.
func (r *Reporter) PerformanceReport() string {
	b := NewBuilder(performanceReportTitle)
	start := b.Len()

	var prevName, prevPart string
	for _, run := range r.src.Runs() {
		for _, t := range run {
			if !t.HasPerfValues() {
				continue
			}
			check := &t.Check

			if check.Name != prevName {
				b.Rule()
				b.Line(check.Name)
				prevName = check.Name
			}

			partition := types.NoneText
			if check.Partition != nil {
				partition = check.Partition.FullName
			}
			if partition != prevPart {
				b.Linef("- %s", partition)
				prevPart = partition
			}

			environ := types.NoneText
			if check.Environ != nil {
				environ = check.Environ.Name
			}
			b.Linef("   - %s", environ)
			b.Linef("      * num_tasks: %d", check.NumTasks)

			for _, pv := range check.PerfValues {
				unit := pv.Unit
				if unit == "" {
					unit = noUnitText
				}
				b.Linef("      * %s: %s %s", pv.Quantity(), strconv.FormatFloat(pv.Value, 'f', -1, 64), unit)
			}
		}
	}

	if b.Len() == start {
		return ""
	}
	b.Rule()

	metrics.RecordReport(ReportPerformance)
	return b.String()
}
