package reporting

import (
	"github.com/ethereum-optimism/infra/op-teststats/types"
	"github.com/ethereum/go-ethereum/log"
)

// Source gives read access to run-indexed task records
type Source interface {
	// Runs returns all runs in index order
	Runs() [][]*types.TaskRecord
	// Tasks returns the tasks of a single run; negative indices count from the end
	Tasks(run int) ([]*types.TaskRecord, error)
}

// Reporter renders text reports from a Source. It never mutates the source.
type Reporter struct {
	src Source
	log log.Logger
}

// NewReporter creates a reporter reading from src
func NewReporter(src Source, logger log.Logger) *Reporter {
	if logger == nil {
		logger = log.New()
	}
	return &Reporter{
		src: src,
		log: logger,
	}
}

// Records projects every task of every run
func (r *Reporter) Records() []Record {
	return Project(r.src.Runs())
}
