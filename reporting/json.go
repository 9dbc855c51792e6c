package reporting

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum-optimism/infra/op-teststats/metrics"
	"github.com/ethereum/go-ethereum/log"
)

// DefaultJSONReportFile is where the JSON report is written unless configured otherwise
const DefaultJSONReportFile = "report.json"

const jsonIndent = "    "

// JSONExporter writes the projected records of all runs to a file
type JSONExporter struct {
	path string
	log  log.Logger
}

// NewJSONExporter creates an exporter writing to path, or to
// DefaultJSONReportFile if path is empty
func NewJSONExporter(path string, logger log.Logger) *JSONExporter {
	if path == "" {
		path = DefaultJSONReportFile
	}
	if logger == nil {
		logger = log.New()
	}
	return &JSONExporter{
		path: path,
		log:  logger,
	}
}

// Path returns the file the exporter writes to
func (e *JSONExporter) Path() string {
	return e.path
}

// Export serializes every record of src and overwrites the report file.
// Write errors are returned to the caller untouched apart from wrapping.
func (e *JSONExporter) Export(src Source) error {
	data, err := MarshalRecords(Project(src.Runs()))
	if err != nil {
		return err
	}
	if err := os.WriteFile(e.path, data, 0644); err != nil {
		metrics.RecordErrorDetails("json_report", err)
		return fmt.Errorf("failed to write JSON report %s: %w", e.path, err)
	}
	e.log.Info("Wrote JSON report", "path", e.path, "bytes", len(data))
	metrics.RecordReport(ReportJSON)
	return nil
}

// MarshalRecords encodes records as an indented JSON array
func MarshalRecords(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", jsonIndent)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal records: %w", err)
	}
	return data, nil
}
