package reporting

import (
	"fmt"
	"sort"

	"github.com/ethereum-optimism/infra/op-teststats/metrics"
)

const retryReportTitle = "SUMMARY OF RETRIES"

// RetryReport summarizes the outcome of every retried check. A check retried
// in several runs is reported with the outcome of the latest run. The report
// is empty when no retries took place.
func (r *Reporter) RetryReport(currentRun int) string {
	if currentRun == 0 {
		return ""
	}

	runs := r.src.Runs()
	messages := make(map[string]string)
	for run := 1; run <= currentRun && run < len(runs); run++ {
		for _, t := range runs[run] {
			key := fmt.Sprintf("%s:%s:%s", t.Check.Name, t.Check.PartitionName(), t.Check.EnvironName())
			outcome := "passed"
			if t.Failed() {
				outcome = "failed"
			}
			// Later runs replace the entry of earlier ones
			messages[key] = fmt.Sprintf("Test %s was retried %d time(s) and %s.", t.Check.Info(), run, outcome)
		}
	}

	keys := make([]string, 0, len(messages))
	for key := range messages {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	b := NewBuilder(retryReportTitle).Rule()
	for _, key := range keys {
		b.Item("%s", messages[key])
	}

	metrics.RecordReport(ReportRetry)
	return b.String()
}
