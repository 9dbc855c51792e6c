// Package stats holds the run-indexed store of task records produced during a
// test session. Run 0 is the initial attempt and every later run is a retry.
package stats

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ethereum-optimism/infra/op-teststats/metrics"
	"github.com/ethereum-optimism/infra/op-teststats/types"
	"github.com/ethereum/go-ethereum/log"
)

// NoSuchRunError is returned when a run index has no corresponding run
type NoSuchRunError struct {
	Run     int // the requested index, as given by the caller
	NumRuns int
}

func (e *NoSuchRunError) Error() string {
	return fmt.Sprintf("no such run: %d", e.Run)
}

// IsNoSuchRunError checks if the error is or wraps a NoSuchRunError
func IsNoSuchRunError(err error) bool {
	var runErr *NoSuchRunError
	return err != nil && errors.As(err, &runErr)
}

// RunOrderError is returned when a task is added to a run other than the last
// run or the one immediately after it
type RunOrderError struct {
	CurrentRun int
	LastRun    int
}

func (e *RunOrderError) Error() string {
	return fmt.Sprintf("cannot add task to run %d: last run is %d", e.CurrentRun, e.LastRun)
}

// Store keeps task records grouped by run, in arrival order
type Store struct {
	mu   sync.RWMutex
	runs [][]*types.TaskRecord
	log  log.Logger
}

// NewStore creates a store holding a single empty run
func NewStore(logger log.Logger) *Store {
	if logger == nil {
		logger = log.New()
	}
	return &Store{
		runs: [][]*types.TaskRecord{{}},
		log:  logger,
	}
}

// AddTask appends task to the run at currentRun. The run is created when
// currentRun is exactly one past the last run; earlier runs are closed.
func (s *Store) AddTask(currentRun int, task *types.TaskRecord) error {
	if task == nil {
		return errors.New("task record is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	last := len(s.runs) - 1
	switch currentRun {
	case last:
	case last + 1:
		s.runs = append(s.runs, []*types.TaskRecord{})
		s.log.Debug("Started new run", "run", currentRun)
	default:
		return &RunOrderError{CurrentRun: currentRun, LastRun: last}
	}

	s.runs[currentRun] = append(s.runs[currentRun], task)
	s.log.Debug("Added task",
		"run", currentRun,
		"check", task.Check.Name,
		"failed", task.Failed(),
		"stage", task.FailedStage())
	metrics.RecordTask(task.Failed(), task.FailedStage())
	return nil
}

// Tasks returns the tasks of a run. Negative indices count from the end,
// so types.LastRun selects the most recent run.
func (s *Store) Tasks(run int) ([]*types.TaskRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, err := s.resolve(run)
	if err != nil {
		return nil, err
	}
	tasks := make([]*types.TaskRecord, len(s.runs[idx]))
	copy(tasks, s.runs[idx])
	return tasks, nil
}

// Failures returns the failed tasks of a run
func (s *Store) Failures(run int) ([]*types.TaskRecord, error) {
	tasks, err := s.Tasks(run)
	if err != nil {
		return nil, err
	}
	failures := make([]*types.TaskRecord, 0)
	for _, t := range tasks {
		if t.Failed() {
			failures = append(failures, t)
		}
	}
	return failures, nil
}

// NumCases returns the number of tasks in a run
func (s *Store) NumCases(run int) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, err := s.resolve(run)
	if err != nil {
		return 0, err
	}
	return len(s.runs[idx]), nil
}

// NumRuns returns the number of runs, which is always at least one
func (s *Store) NumRuns() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.runs)
}

// LastRunIndex returns the index of the most recent run
func (s *Store) LastRunIndex() int {
	return s.NumRuns() - 1
}

// Runs returns a snapshot of all runs in index order
func (s *Store) Runs() [][]*types.TaskRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([][]*types.TaskRecord, len(s.runs))
	for i, run := range s.runs {
		runs[i] = make([]*types.TaskRecord, len(run))
		copy(runs[i], run)
	}
	return runs
}

// resolve maps a possibly negative run index to a position in s.runs.
// Callers must hold s.mu.
func (s *Store) resolve(run int) (int, error) {
	idx := run
	if idx < 0 {
		idx += len(s.runs)
	}
	if idx < 0 || idx >= len(s.runs) {
		return 0, &NoSuchRunError{Run: run, NumRuns: len(s.runs)}
	}
	return idx, nil
}
