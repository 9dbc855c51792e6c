package flags

import (
	"fmt"

	"github.com/urfave/cli/v2"

	opservice "github.com/ethereum-optimism/optimism/op-service"
	oplog "github.com/ethereum-optimism/optimism/op-service/log"
)

const EnvVarPrefix = "OP_TESTSTATS"

var (
	SessionFile = &cli.StringFlag{
		Name:     "session",
		Value:    "",
		Required: true,
		EnvVars:  opservice.PrefixEnvVar(EnvVarPrefix, "SESSION"),
		Usage:    "Path to the recorded test session (eg. 'session.yaml')",
	}
	ReportJSON = &cli.StringFlag{
		Name:    "report-json",
		Value:   "report.json",
		EnvVars: opservice.PrefixEnvVar(EnvVarPrefix, "REPORT_JSON"),
		Usage:   "Path of the JSON report written at the end of the session",
	}
	SkipJSON = &cli.BoolFlag{
		Name:    "skip-json",
		Value:   false,
		EnvVars: opservice.PrefixEnvVar(EnvVarPrefix, "SKIP_JSON"),
		Usage:   "Do not write the JSON report",
	}
	FailureStats = &cli.BoolFlag{
		Name:    "failure-stats",
		Value:   false,
		EnvVars: opservice.PrefixEnvVar(EnvVarPrefix, "FAILURE_STATS"),
		Usage:   "Print failure statistics for the final run",
	}
	PerformanceReport = &cli.BoolFlag{
		Name:    "performance-report",
		Value:   false,
		EnvVars: opservice.PrefixEnvVar(EnvVarPrefix, "PERFORMANCE_REPORT"),
		Usage:   "Print the performance report across all runs",
	}
	ReportDir = &cli.StringFlag{
		Name:    "report-dir",
		Value:   "",
		EnvVars: opservice.PrefixEnvVar(EnvVarPrefix, "REPORT_DIR"),
		Usage:   "Directory to also write the text reports to. Reports are only printed if unset.",
	}
	ServeAddr = &cli.StringFlag{
		Name:    "serve-addr",
		Value:   "",
		EnvVars: opservice.PrefixEnvVar(EnvVarPrefix, "SERVE_ADDR"),
		Usage:   "Address to serve reports, healthz and metrics on after the reports are printed (eg. '0.0.0.0:7300'). Exits after printing if unset.",
	}
)

var requiredFlags = []cli.Flag{
	SessionFile,
}

var optionalFlags = []cli.Flag{
	ReportJSON,
	SkipJSON,
	FailureStats,
	PerformanceReport,
	ReportDir,
	ServeAddr,
}
var Flags []cli.Flag

func init() {
	optionalFlags = append(optionalFlags, oplog.CLIFlags(EnvVarPrefix)...)

	Flags = append(requiredFlags, optionalFlags...)
}

func CheckRequired(ctx *cli.Context) error {
	for _, f := range requiredFlags {
		if !ctx.IsSet(f.Names()[0]) {
			return fmt.Errorf("flag %s is required", f.Names()[0])
		}
	}
	return nil
}
