package session

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ethereum-optimism/infra/op-teststats/types"
	"github.com/ethereum/go-ethereum/log"
	"gopkg.in/yaml.v3"
)

// File is a recorded test session: an initial run followed by zero or more retries
type File struct {
	Runs []RunConfig `yaml:"runs"`
}

// RunConfig holds the tasks of one run in completion order
type RunConfig struct {
	Tasks []TaskConfig `yaml:"tasks"`
}

// TaskConfig describes a single task result
type TaskConfig struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description,omitempty"`
	Tags        []string          `yaml:"tags,omitempty"`
	Maintainers []string          `yaml:"maintainers,omitempty"`
	NumTasks    int               `yaml:"num_tasks,omitempty"`
	Partition   *types.Partition  `yaml:"partition,omitempty"`
	Environment string            `yaml:"environment,omitempty"`
	Job         *types.JobInfo    `yaml:"job,omitempty"`
	Build       *types.BuildInfo  `yaml:"build,omitempty"`
	StageDir    string            `yaml:"stagedir,omitempty"`
	OutputDir   string            `yaml:"outputdir,omitempty"`
	Failure     *FailureConfig    `yaml:"failure,omitempty"`
	PerfValues  []types.PerfValue `yaml:"perf,omitempty"`
}

// FailureConfig describes where and why a task failed
type FailureConfig struct {
	Stage  types.Stage `yaml:"stage"`
	Reason string      `yaml:"reason,omitempty"`
}

// LoadFile reads and validates a session file
func LoadFile(path string) (*File, error) {
	log.Debug("Reading session file", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading session file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing session file %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates a session document. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks that every task names its check and that every retry run
// holds at least one task
func (f *File) Validate() error {
	for i, run := range f.Runs {
		if i > 0 && len(run.Tasks) == 0 {
			return fmt.Errorf("run %d has no tasks", i)
		}
		for j, task := range run.Tasks {
			if strings.TrimSpace(task.Name) == "" {
				return fmt.Errorf("run %d task %d: name is required", i, j)
			}
			if task.Partition != nil && task.Partition.FullName == "" {
				return fmt.Errorf("run %d task %q: partition fullname is required", i, task.Name)
			}
		}
	}
	return nil
}

// NumTasks returns the number of tasks across all runs
func (f *File) NumTasks() int {
	n := 0
	for _, run := range f.Runs {
		n += len(run.Tasks)
	}
	return n
}

// Replay records every task of the file into s, advancing s once before each
// run after the first
func (f *File) Replay(s *Session) error {
	for i, run := range f.Runs {
		if i > 0 {
			s.Advance()
		}
		for _, task := range run.Tasks {
			if task.Failure != nil && !task.Failure.Stage.IsKnown() {
				s.log.Warn("Task failed in unknown stage", "check", task.Name, "stage", task.Failure.Stage, "run", s.CurrentRun())
			}
			if err := s.Record(task.TaskRecord()); err != nil {
				return fmt.Errorf("failed to record task %s: %w", task.Name, err)
			}
		}
	}
	return nil
}

// TaskRecord converts the config into a task record
func (tc *TaskConfig) TaskRecord() *types.TaskRecord {
	check := types.Check{
		Name:        tc.Name,
		Description: tc.Description,
		Tags:        tc.Tags,
		Maintainers: tc.Maintainers,
		NumTasks:    tc.NumTasks,
		Job:         tc.Job,
		Build:       tc.Build,
		StageDir:    tc.StageDir,
		OutputDir:   tc.OutputDir,
		PerfValues:  tc.PerfValues,
	}
	if tc.Partition != nil {
		p := *tc.Partition
		if p.Name == "" {
			p.Name = p.FullName[strings.LastIndex(p.FullName, ":")+1:]
		}
		check.Partition = &p
	}
	if tc.Environment != "" {
		check.Environ = &types.Environment{Name: tc.Environment}
	}

	task := &types.TaskRecord{Check: check}
	if tc.Failure != nil {
		task.Failure = &types.Failure{Stage: tc.Failure.Stage}
		if tc.Failure.Reason != "" {
			task.Failure.Err = errors.New(tc.Failure.Reason)
		}
	}
	return task
}
