package types

import "slices"

// Stage is a step of the test pipeline at which a task can fail
type Stage string

const (
	StageSetup       Stage = "setup"
	StageCompile     Stage = "compile"
	StageCompileWait Stage = "compile_wait"
	StageRun         Stage = "run"
	StageRunWait     Stage = "run_wait"
	StageSanity      Stage = "sanity"
	StagePerformance Stage = "performance"
	StageCleanup     Stage = "cleanup"
)

var knownStages = []Stage{
	StageSetup,
	StageCompile,
	StageCompileWait,
	StageRun,
	StageRunWait,
	StageSanity,
	StagePerformance,
	StageCleanup,
}

// IsKnown reports whether s is one of the pipeline stages
func (s Stage) IsKnown() bool {
	return slices.Contains(knownStages, s)
}

func (s Stage) String() string {
	if s == "" {
		return "unknown"
	}
	return string(s)
}
