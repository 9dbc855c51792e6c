package reporting

import (
	"github.com/ethereum-optimism/infra/op-teststats/types"
)

const (
	ResultSuccess = "success"
	ResultFail    = "fail"
)

// Record is a flat, self-contained snapshot of one task, tagged with the run
// it belongs to. Nullable keys are always present and encode as null.
type Record struct {
	TestName      string                 `json:"testname"`
	Description   string                 `json:"description"`
	System        types.Optional[string] `json:"system"`
	Environment   types.Optional[string] `json:"environment"`
	Tags          []string               `json:"tags"`
	Maintainers   []string               `json:"maintainers"`
	Scheduler     types.Optional[string] `json:"scheduler"`
	JobID         types.Optional[string] `json:"jobid"`
	NodeList      []string               `json:"nodelist"`
	JobStdout     types.Optional[string] `json:"job_stdout"`
	JobStderr     types.Optional[string] `json:"job_stderr"`
	BuildStdout   types.Optional[string] `json:"build_stdout"`
	BuildStderr   types.Optional[string] `json:"build_stderr"`
	FailingReason types.Optional[string] `json:"failing_reason"`
	FailingPhase  types.Optional[string] `json:"failing_phase"`
	OutputDir     types.Optional[string] `json:"outputdir"`
	StageDir      types.Optional[string] `json:"stagedir"`
	Result        string                 `json:"result"`
	RunNo         int                    `json:"run_no"`
}

// Failed reports whether the record describes a failed task
func (r *Record) Failed() bool {
	return r.Result == ResultFail
}

// Project flattens every task of every run into records, in run order and
// arrival order within a run
func Project(runs [][]*types.TaskRecord) []Record {
	records := make([]Record, 0)
	for runNo, run := range runs {
		for _, t := range run {
			records = append(records, NewRecord(t, runNo))
		}
	}
	return records
}

// NewRecord projects a single task of run runNo
func NewRecord(t *types.TaskRecord, runNo int) Record {
	check := &t.Check
	rec := Record{
		TestName:    check.Name,
		Description: check.Description,
		Tags:        copyStrings(check.Tags),
		Maintainers: copyStrings(check.Maintainers),
		NodeList:    []string{},
		RunNo:       runNo,
	}

	if check.Partition != nil {
		rec.System = types.Some(check.Partition.FullName)
	}
	if check.Environ != nil {
		rec.Environment = types.Some(check.Environ.Name)
	}

	if job := check.Job; job != nil {
		rec.Scheduler = types.Some(job.Scheduler)
		rec.JobID = types.Some(job.ID)
		rec.NodeList = copyStrings(job.NodeList)
		rec.JobStdout = types.Some(job.Stdout)
		rec.JobStderr = types.Some(job.Stderr)
	}

	if build := check.Build; build != nil {
		rec.BuildStdout = types.Some(build.Stdout)
		rec.BuildStderr = types.Some(build.Stderr)
	}

	if t.Failed() {
		rec.Result = ResultFail
		if t.Failure.Err != nil {
			rec.FailingReason = types.Some(FormatDiagnostic(t.Failure.Err))
		}
		rec.FailingPhase = types.Some(t.Failure.Stage.String())
		rec.StageDir = types.Some(check.StageDir)
	} else {
		rec.Result = ResultSuccess
		rec.OutputDir = types.Some(check.OutputDir)
	}

	return rec
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
