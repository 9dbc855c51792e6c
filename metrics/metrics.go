package metrics

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum-optimism/infra/op-teststats/types"
	"github.com/ethereum/go-ethereum/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	MetricsNamespace = "teststats"
)

var (
	Debug                bool = true
	nonAlphanumericRegex      = regexp.MustCompile(`[^a-zA-Z ]+`)

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "errors_total",
		Help:      "Count of errors",
	}, []string{
		"error",
	})

	tasksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "tasks_total",
		Help:      "Count of recorded task results",
	}, []string{
		"result",
	})

	taskFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "task_failures_total",
		Help:      "Count of failed tasks by failing stage",
	}, []string{
		"stage",
	})

	currentRun = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "current_run",
		Help:      "Index of the current run (0 is the initial attempt)",
	})

	reportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "reports_total",
		Help:      "Count of generated reports",
	}, []string{
		"report",
	})
)

// errToLabel tries to make the error string a more valid Prometheus label
func errToLabel(err error) string {
	if err == nil {
		return "nil"
	}
	errClean := nonAlphanumericRegex.ReplaceAllString(err.Error(), "")
	errClean = strings.ReplaceAll(errClean, " ", "_")
	errClean = strings.ReplaceAll(errClean, "__", "_")
	return errClean
}

func RecordError(error string) {
	if Debug {
		log.Debug("metric inc",
			"m", "errors_total",
			"error", error,
		)
	}
	errorsTotal.WithLabelValues(error).Inc()
}

// RecordErrorDetails concats the error message to the label
// and also tries to clean the label to be a valid Prometheus label
func RecordErrorDetails(label string, err error) {
	if err == nil {
		return
	}
	label = fmt.Sprintf("%s.%s", label, errToLabel(err))
	RecordError(label)
}

// RecordTask counts a task record added to the store
func RecordTask(failed bool, stage types.Stage) {
	result := "success"
	if failed {
		result = "fail"
	}
	tasksTotal.WithLabelValues(result).Inc()
	if failed {
		taskFailures.WithLabelValues(stage.String()).Inc()
	}
}

// RecordRunAdvance sets the current run gauge
func RecordRunAdvance(run int) {
	if Debug {
		log.Debug("metric set",
			"m", "current_run",
			"run", run)
	}
	currentRun.Set(float64(run))
}

// RecordReport counts a generated report by name
func RecordReport(name string) {
	reportsTotal.WithLabelValues(name).Inc()
}
