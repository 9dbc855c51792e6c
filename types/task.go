package types

import (
	"fmt"
	"strings"
)

// LastRun selects the most recent run in run-indexed lookups.
const LastRun = -1

// Partition identifies the system partition a check ran on
type Partition struct {
	Name     string `yaml:"name"`
	FullName string `yaml:"fullname"`
}

// Environment identifies the programming environment a check ran with
type Environment struct {
	Name string `yaml:"name"`
}

// JobInfo describes the scheduler job a check was submitted as
type JobInfo struct {
	Scheduler string   `yaml:"scheduler"`
	ID        string   `yaml:"id"`
	NodeList  []string `yaml:"nodelist,omitempty"`
	Stdout    string   `yaml:"stdout,omitempty"`
	Stderr    string   `yaml:"stderr,omitempty"`
}

// BuildInfo describes the build step of a check, if one ran
type BuildInfo struct {
	Stdout string `yaml:"stdout,omitempty"`
	Stderr string `yaml:"stderr,omitempty"`
}

// Check is the identity and execution context of a test case
type Check struct {
	Name        string
	Description string
	Tags        []string
	Maintainers []string
	NumTasks    int

	Partition *Partition   // nil when the check did not run on a partition
	Environ   *Environment // nil when the check did not use an environment
	Job       *JobInfo     // nil unless the check was submitted as a job
	Build     *BuildInfo   // nil unless a build step ran

	StageDir  string
	OutputDir string

	PerfValues []PerfValue // in recording order
}

// PartitionName returns the partition full name, or "" if there is none
func (c *Check) PartitionName() string {
	if c.Partition == nil {
		return ""
	}
	return c.Partition.FullName
}

// EnvironName returns the environment name, or "" if there is none
func (c *Check) EnvironName() string {
	if c.Environ == nil {
		return ""
	}
	return c.Environ.Name
}

// Info returns a display string identifying the check and where it ran,
// e.g. "stream_check on daint:gpu using PrgEnv-gnu"
func (c *Check) Info() string {
	var sb strings.Builder
	sb.WriteString(c.Name)
	if name := c.PartitionName(); name != "" {
		fmt.Fprintf(&sb, " on %s", name)
	}
	if name := c.EnvironName(); name != "" {
		fmt.Fprintf(&sb, " using %s", name)
	}
	return sb.String()
}

// PerfValue is a single measured quantity together with its reference bounds
type PerfValue struct {
	Key       string  `yaml:"key"`
	Value     float64 `yaml:"value"`
	RefLow    float64 `yaml:"ref_low,omitempty"`
	RefHigh   float64 `yaml:"ref_high,omitempty"`
	Threshold float64 `yaml:"threshold,omitempty"`
	Unit      string  `yaml:"unit,omitempty"` // empty when no unit was specified
}

// Quantity returns the measured quantity name, which is the last
// colon-delimited component of the key
func (p PerfValue) Quantity() string {
	if i := strings.LastIndex(p.Key, ":"); i >= 0 {
		return p.Key[i+1:]
	}
	return p.Key
}

// Failure describes why and where a task failed
type Failure struct {
	Stage Stage
	Err   error // optional diagnostic payload
}

// TaskRecord captures the outcome of one check execution within a run.
// It is not modified after being handed to the store.
type TaskRecord struct {
	Check   Check
	Failure *Failure // nil when the task succeeded
}

// Failed reports whether the task failed
func (t *TaskRecord) Failed() bool {
	return t.Failure != nil
}

// FailedStage returns the stage the task failed in, or "" if it did not fail
func (t *TaskRecord) FailedStage() Stage {
	if t.Failure == nil {
		return ""
	}
	return t.Failure.Stage
}

// HasPerfValues reports whether the task recorded any performance values
func (t *TaskRecord) HasPerfValues() bool {
	return len(t.Check.PerfValues) > 0
}
