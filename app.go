package teststats

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ethereum-optimism/infra/op-teststats/metrics"
	"github.com/ethereum-optimism/infra/op-teststats/reporting"
	"github.com/ethereum-optimism/infra/op-teststats/service"
	"github.com/ethereum-optimism/infra/op-teststats/session"
	"github.com/ethereum-optimism/optimism/op-service/cliapp"
)

// app implements the cliapp.Lifecycle interface.
var _ cliapp.Lifecycle = &app{}

// app replays a recorded test session and reports on it.
type app struct {
	ctx      context.Context
	config   *Config
	version  string
	session  *session.Session
	reporter *reporting.Reporter
	exporter *reporting.JSONExporter
	server   *service.Server
	out      reporting.ReportWriter

	running atomic.Bool

	shutdownCallback func(error) // Callback to signal application shutdown
}

// sessionReports binds a reporter to the current run of a session
type sessionReports struct {
	reporter   *reporting.Reporter
	currentRun int
}

func (s sessionReports) Generate(name string) (string, error) {
	return s.reporter.Generate(name, s.currentRun)
}

func (s sessionReports) Records() []reporting.Record {
	return s.reporter.Records()
}

func New(ctx context.Context, config *Config, version string, shutdownCallback func(error)) (*app, error) {
	if config == nil {
		return nil, errors.New("config is required")
	}

	config.Log.Debug("Creating op-teststats with config",
		"sessionFile", config.SessionFile,
		"jsonReport", config.JSONReport,
		"reportDir", config.ReportDir,
		"serveAddr", config.ServeAddr)

	file, err := session.LoadFile(config.SessionFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	sess := session.New(config.Log)
	if err := file.Replay(sess); err != nil {
		return nil, fmt.Errorf("failed to replay session: %w", err)
	}
	config.Log.Info("Session replayed",
		"session", sess.ID(),
		"runs", sess.Store().NumRuns(),
		"tasks", file.NumTasks())

	a := &app{
		ctx:              ctx,
		config:           config,
		version:          version,
		session:          sess,
		reporter:         reporting.NewReporter(sess.Store(), config.Log.New("component", "reporter")),
		out:              reporting.NewStdoutWriter(),
		shutdownCallback: shutdownCallback,
	}
	if !config.SkipJSON {
		a.exporter = reporting.NewJSONExporter(config.JSONReport, config.Log)
	}
	if config.ServeAddr != "" {
		a.server = service.NewServer(config.ServeAddr, sessionReports{
			reporter:   a.reporter,
			currentRun: sess.CurrentRun(),
		}, config.Log.New("component", "server"))
	}
	return a, nil
}

// Start prints and exports the reports of the session. Unless a report
// server is configured, the application shuts itself down afterwards.
// Start implements the cliapp.Lifecycle interface.
func (a *app) Start(ctx context.Context) error {
	a.ctx = ctx
	a.running.Store(true)

	currentRun := a.session.CurrentRun()
	ctx, span := otel.Tracer("op-teststats").Start(ctx, "reports", trace.WithAttributes(
		attribute.String("session", a.session.ID()),
		attribute.Int("current_run", currentRun),
	))
	defer span.End()

	failures, err := a.session.Store().Failures(currentRun)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return NewRuntimeError(err)
	}

	if err := a.printReports(ctx, currentRun, len(failures) > 0); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	if err := a.out.Write(renderSummary(a.session.ID(), a.session.Store().Runs())); err != nil {
		return NewRuntimeError(fmt.Errorf("failed to print summary: %w", err))
	}

	if a.exporter != nil {
		if err := a.exporter.Export(a.session.Store()); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return NewRuntimeError(err)
		}
		a.config.Log.Info("JSON report written", "path", a.exporter.Path())
	}

	if a.server != nil {
		if err := a.server.Start(); err != nil {
			return NewRuntimeError(err)
		}
		if len(failures) > 0 {
			a.config.Log.Warn("Session has failures", "run", currentRun, "failures", len(failures))
		}
		return nil
	}

	if len(failures) > 0 {
		a.config.Log.Warn("Final run completed with failures, returning exit code 1",
			"run", currentRun, "failures", len(failures))
		return NewTestFailureError(currentRun, len(failures))
	}

	a.config.Log.Info("Reports completed, exiting")
	go func() {
		a.shutdownCallback(nil)
	}()
	return nil
}

func (a *app) wantsReport(name string, hasFailures bool) bool {
	switch name {
	case reporting.ReportFailures:
		return hasFailures
	case reporting.ReportFailureStats:
		return a.config.FailureStats
	case reporting.ReportPerformance:
		return a.config.PerformanceReport
	default:
		return true
	}
}

func (a *app) printReports(ctx context.Context, currentRun int, hasFailures bool) error {
	for _, name := range reporting.ReportNames {
		if !a.wantsReport(name, hasFailures) {
			continue
		}
		_, span := otel.Tracer("op-teststats").Start(ctx, name)
		content, err := a.reporter.Generate(name, currentRun)
		span.End()
		if err != nil {
			return NewRuntimeError(fmt.Errorf("failed to generate %s report: %w", name, err))
		}
		if content == "" {
			a.config.Log.Debug("Report is empty", "report", name)
			continue
		}
		if err := a.out.Write(content); err != nil {
			return NewRuntimeError(fmt.Errorf("failed to print %s report: %w", name, err))
		}

		if a.config.ReportDir == "" {
			continue
		}
		path := filepath.Join(a.config.ReportDir, name+".log")
		if err := reporting.NewFileWriter(path).Write(content); err != nil {
			metrics.RecordErrorDetails("report_write", err)
			return NewRuntimeError(fmt.Errorf("failed to write %s report: %w", name, err))
		}
		a.config.Log.Debug("Report written", "report", name, "path", path)
	}
	return nil
}

// Stop stops the report server if one is running.
// Stop implements the cliapp.Lifecycle interface.
func (a *app) Stop(ctx context.Context) error {
	a.config.Log.Info("Stopping op-teststats")
	if !a.running.Load() {
		a.config.Log.Debug("Service already stopped, nothing to do")
		return nil
	}
	a.running.Store(false)

	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shut down report server: %w", err)
		}
	}
	a.config.Log.Info("op-teststats stopped successfully")
	return nil
}

// Stopped returns true if the application is stopped.
// Stopped implements the cliapp.Lifecycle interface.
func (a *app) Stopped() bool {
	return !a.running.Load()
}
