// Package session drives a run-indexed store the way a test execution engine
// does: it owns the current run index and records task results into it.
package session

import (
	"github.com/ethereum-optimism/infra/op-teststats/metrics"
	"github.com/ethereum-optimism/infra/op-teststats/stats"
	"github.com/ethereum-optimism/infra/op-teststats/types"
	"github.com/ethereum/go-ethereum/log"
	"github.com/google/uuid"
)

// Session is a single test session. The current run index only moves forward.
type Session struct {
	id         string
	currentRun int
	store      *stats.Store
	log        log.Logger
}

// New creates a session positioned at run 0 with an empty store
func New(logger log.Logger) *Session {
	if logger == nil {
		logger = log.New()
	}
	id := uuid.New().String()
	logger = logger.New("session", id)
	return &Session{
		id:    id,
		store: stats.NewStore(logger.New("component", "store")),
		log:   logger,
	}
}

// ID returns the unique identifier of the session
func (s *Session) ID() string {
	return s.id
}

// CurrentRun returns the index of the run tasks are currently recorded into
func (s *Session) CurrentRun() int {
	return s.currentRun
}

// Store returns the store backing the session
func (s *Session) Store() *stats.Store {
	return s.store
}

// Advance moves to the next run and returns its index
func (s *Session) Advance() int {
	s.currentRun++
	s.log.Info("Starting retry run", "run", s.currentRun)
	metrics.RecordRunAdvance(s.currentRun)
	return s.currentRun
}

// Record adds a finished task to the current run
func (s *Session) Record(task *types.TaskRecord) error {
	return s.store.AddTask(s.currentRun, task)
}
