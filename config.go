package teststats

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/ethereum-optimism/infra/op-teststats/flags"
	"github.com/ethereum-optimism/infra/op-teststats/reporting"
	"github.com/ethereum/go-ethereum/log"
)

// Config holds the application configuration
type Config struct {
	SessionFile       string // Recorded session to report on
	JSONReport        string // Path of the JSON report, empty when SkipJSON is set
	SkipJSON          bool
	FailureStats      bool   // Print failure statistics of the final run
	PerformanceReport bool   // Print the performance report of all runs
	ReportDir         string // Directory text reports are also written to, empty to disable
	ServeAddr         string // Address of the report server, empty to exit after printing
	Log               log.Logger
}

// NewConfig creates a new Config from cli context
func NewConfig(ctx *cli.Context, log log.Logger, sessionFile string) (*Config, error) {
	if err := flags.CheckRequired(ctx); err != nil {
		return nil, fmt.Errorf("missing required flags: %w", err)
	}
	if sessionFile == "" {
		return nil, errors.New("session file is required")
	}

	absSessionFile, err := filepath.Abs(sessionFile)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path for session file '%s': %w", sessionFile, err)
	}

	skipJSON := ctx.Bool(flags.SkipJSON.Name)
	var jsonReport string
	if !skipJSON {
		jsonReport = ctx.String(flags.ReportJSON.Name)
		if jsonReport == "" {
			jsonReport = reporting.DefaultJSONReportFile
		}
		jsonReport, err = filepath.Abs(jsonReport)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve absolute path for JSON report '%s': %w", jsonReport, err)
		}
	}

	reportDir := ctx.String(flags.ReportDir.Name)
	if reportDir != "" {
		reportDir, err = filepath.Abs(reportDir)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve absolute path for report directory '%s': %w", reportDir, err)
		}
	}

	return &Config{
		SessionFile:       absSessionFile,
		JSONReport:        jsonReport,
		SkipJSON:          skipJSON,
		FailureStats:      ctx.Bool(flags.FailureStats.Name),
		PerformanceReport: ctx.Bool(flags.PerformanceReport.Name),
		ReportDir:         reportDir,
		ServeAddr:         ctx.String(flags.ServeAddr.Name),
		Log:               log,
	}, nil
}
