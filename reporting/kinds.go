package reporting

import "fmt"

// Names of the text reports
const (
	ReportRetry        = "retry"
	ReportFailures     = "failures"
	ReportFailureStats = "failure_stats"
	ReportPerformance  = "performance"
)

// ReportJSON names the machine-readable report of all task records
const ReportJSON = "json"

// ReportNames lists the text reports in the order they are usually printed
var ReportNames = []string{
	ReportRetry,
	ReportFailures,
	ReportFailureStats,
	ReportPerformance,
}

// Generate renders the text report called name for the given current run
func (r *Reporter) Generate(name string, currentRun int) (string, error) {
	switch name {
	case ReportRetry:
		return r.RetryReport(currentRun), nil
	case ReportFailures:
		return r.FailureReport(currentRun), nil
	case ReportFailureStats:
		return r.FailureStats(currentRun)
	case ReportPerformance:
		return r.PerformanceReport(), nil
	default:
		return "", fmt.Errorf("unknown report %q", name)
	}
}
