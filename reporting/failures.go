package reporting

import (
	"fmt"
	"strings"

	"github.com/ethereum-optimism/infra/op-teststats/metrics"
	"github.com/ethereum-optimism/infra/op-teststats/types"
)

const (
	failureReportTitle = "SUMMARY OF FAILURES"
	localScheduler     = "local"
)

// FailureReport renders the details of every failure of the current run
func (r *Reporter) FailureReport(currentRun int) string {
	b := NewBuilder(failureReportTitle)
	for _, rec := range r.Records() {
		if !rec.Failed() || rec.RunNo != currentRun {
			continue
		}

		header := "FAILURE INFO for " + rec.TestName
		if currentRun > 0 {
			header += fmt.Sprintf(" (for the last of %d retries)", currentRun)
		}

		nodeList := types.NoneText
		if len(rec.NodeList) > 0 {
			nodeList = strings.Join(rec.NodeList, ",")
		}

		jobType := "batch job"
		if rec.Scheduler.OrElse("") == localScheduler {
			jobType = "local"
		}

		b.Rule()
		b.Line(header)
		b.Item("Test Description: %s", rec.Description)
		b.Item("System partition: %s", rec.System)
		b.Item("Environment: %s", rec.Environment)
		b.Item("Stage directory: %s", rec.StageDir)
		b.Item("Node list: %s", nodeList)
		b.Item("Job type: %s (id=%s)", jobType, rec.JobID)
		b.Item("Maintainers: %s", strings.Join(rec.Maintainers, ", "))
		b.Item("Failing phase: %s", rec.FailingPhase)
		b.Item("Rerun with '%s'", RerunOptions(rec))
		b.Item("Reason: %s", rec.FailingReason)

		switch phase := rec.FailingPhase.OrElse(""); types.Stage(phase) {
		case types.StageSanity:
			b.Line("Sanity check failure")
		case types.StagePerformance:
			b.Line("Performance check failure")
		default:
			r.log.Warn("Failure in unexpected phase", "check", rec.TestName, "phase", phase, "run", rec.RunNo)
			b.Line("Unknown error.")
		}
	}
	b.Rule()

	metrics.RecordReport(ReportFailures)
	return b.String()
}

// RerunOptions returns the command line options that select the check of rec
func RerunOptions(rec Record) string {
	return fmt.Sprintf("-n %s -p %s --system %s", rec.TestName, rec.Environment, rec.System)
}
