package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goliatone/go-ai-coding-agent/internal/bootstrap"
	"github.com/goliatone/go-ai-coding-agent/internal/cli"
	"github.com/goliatone/go-ai-coding-agent/internal/logging"
	"github.com/goliatone/go-ai-coding-agent/internal/runtimeconfig"
)

const (
	exitOK    = 0
	exitError = 1
)

var (
	moduleBuilder = bootstrap.BuildModule
	lookupEnv     = os.LookupEnv
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	req, err := cli.Parse(args)
	if err != nil {
		cli.WriteUsageError(stderr, "Invalid arguments: "+err.Error())
		return exitError
	}

	if req.Action == cli.ActionShowHelp {
		if err := cli.WriteHelp(stdout); err != nil {
			return exitError
		}
		return exitOK
	}

	cfg := runtimeconfig.FromEnvironment(runtimeconfig.DefaultConfig(), lookupEnv)
	module, err := moduleBuilder(bootstrap.Options{
		Config: cfg,
		Stdout: stdout,
		Stderr: stderr,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: bootstrap module: %v\n", err)
		return exitError
	}
	if module == nil || module.Handler == nil {
		fmt.Fprintln(stderr, "Error: markdown reader not configured")
		return exitError
	}

	logger := module.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	logger.Debug("cli.read.start", "path", req.Path)

	if err := module.ReadFile(context.Background(), req.Path); err != nil {
		logger.Debug("cli.read.failed", "error", err)
		cli.WriteFileError(stderr, err)
		return exitError
	}
	return exitOK
}
