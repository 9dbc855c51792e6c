package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/honeycombio/otel-config-go/otelconfig"
	"github.com/urfave/cli/v2"

	teststats "github.com/ethereum-optimism/infra/op-teststats"
	"github.com/ethereum-optimism/infra/op-teststats/exitcodes"
	"github.com/ethereum-optimism/infra/op-teststats/flags"
	"github.com/ethereum-optimism/optimism/devnet-sdk/telemetry"
	"github.com/ethereum-optimism/optimism/op-service/cliapp"
	"github.com/ethereum-optimism/optimism/op-service/ctxinterrupt"
	oplog "github.com/ethereum-optimism/optimism/op-service/log"
)

var (
	Version   = "v0.1.0"
	GitCommit = ""
	GitDate   = ""
)

func main() {
	app := cli.NewApp()
	app.Version = fmt.Sprintf("%s-%s-%s", Version, GitCommit, GitDate)
	app.Name = "op-teststats"
	app.Usage = "Test session statistics and reports"
	app.Description = "op-teststats replays a recorded test session and reports retries, failures and performance"
	app.Flags = cliapp.ProtectFlags(flags.Flags)
	app.Action = cliapp.LifecycleCmd(run)
	app.ExitErrHandler = func(c *cli.Context, err error) {
		cli.HandleExitCoder(exitError(err))
	}

	// Start telemetry
	ctx, shutdown, err := telemetry.SetupOpenTelemetry(
		context.Background(),
		otelconfig.WithServiceName(app.Name),
		otelconfig.WithServiceVersion(app.Version),
	)
	if err != nil {
		log.Crit("Failed to setup open telemetry", "message", err)
	}
	defer shutdown()

	// Start CLI
	ctx = ctxinterrupt.WithSignalWaiterMain(ctx)
	err = app.RunContext(ctx, os.Args)
	if err != nil {
		log.Crit("Application failed", "message", err)
	}
}

// exitError maps an application error to the exit code it should produce
func exitError(err error) error {
	if err == nil {
		return nil
	}
	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		return exitErr
	}
	if teststats.IsRuntimeError(err) {
		return cli.Exit(err.Error(), exitcodes.RuntimeErr)
	}
	// Test failures and unspecified errors
	return cli.Exit(err.Error(), exitcodes.TestFailure)
}

func run(ctx *cli.Context, closeApp context.CancelCauseFunc) (cliapp.Lifecycle, error) {
	logCfg := oplog.ReadCLIConfig(ctx)
	log := oplog.NewLogger(oplog.AppOut(ctx), logCfg)
	oplog.SetGlobalLogHandler(log.Handler())
	oplog.SetupDefaults()

	cfg, err := teststats.NewConfig(ctx, log, ctx.String(flags.SessionFile.Name))
	if err != nil {
		// Wrap in RuntimeError to signal this should exit with code 2
		return nil, teststats.NewRuntimeError(fmt.Errorf("failed to create config: %w", err))
	}

	cfg.Log.Debug("Config", "config", cfg)

	app, err := teststats.New(ctx.Context, cfg, Version, closeApp)
	if err != nil {
		return nil, teststats.NewRuntimeError(fmt.Errorf("failed to create op-teststats: %w", err))
	}

	return app, nil
}
