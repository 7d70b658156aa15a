// Package bootstrap assembles the reader, logging provider and command
// handler used by the ai_coding_agent binary.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	markdowncmd "github.com/goliatone/go-ai-coding-agent/internal/commands/markdown"
	"github.com/goliatone/go-ai-coding-agent/internal/logging"
	"github.com/goliatone/go-ai-coding-agent/internal/logging/console"
	"github.com/goliatone/go-ai-coding-agent/internal/logging/gologger"
	"github.com/goliatone/go-ai-coding-agent/internal/markdown"
	"github.com/goliatone/go-ai-coding-agent/internal/runtimeconfig"
	"github.com/goliatone/go-ai-coding-agent/pkg/interfaces"
)

// Options captures the inputs needed to build a Module.
type Options struct {
	Config runtimeconfig.Config
	// Stdout receives file content.
	Stdout io.Writer
	// Stderr receives diagnostics from either logging provider.
	Stderr io.Writer
	// LoggerProvider overrides the provider selected from Config.
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the configured reader, handler and run-scoped logger.
type Module struct {
	RunID   string
	Reader  *markdown.Reader
	Handler *markdowncmd.ReadFileHandler
	Logger  interfaces.Logger
}

// BuildModule validates opts.Config and wires a Module from it.
func BuildModule(opts Options) (*Module, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	// Diagnostics never decide the outcome of a read: a provider that
	// cannot be built leaves logging off.
	provider := opts.LoggerProvider
	if provider == nil {
		if built, err := newLoggerProvider(cfg, stderr); err == nil {
			provider = built
		}
	}

	runID := uuid.NewString()
	runFields := map[string]any{"run_id": runID}

	reader := markdown.NewReader(
		markdown.ReaderConfig{MaxFileSize: cfg.Reader.MaxFileSize},
		markdown.WithLogger(logging.WithFields(logging.ReaderLogger(provider), runFields)),
	)

	handler := markdowncmd.NewReadFileHandler(
		reader,
		stdout,
		logging.WithFields(logging.CommandsLogger(provider), runFields),
	)

	return &Module{
		RunID:   runID,
		Reader:  reader,
		Handler: handler,
		Logger:  logging.WithFields(logging.CLILogger(provider), runFields),
	}, nil
}

// Context annotates ctx with the module's run fields.
func (m *Module) Context(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if m == nil || m.RunID == "" {
		return ctx
	}
	return logging.ContextWithFields(ctx, map[string]any{"run_id": m.RunID})
}

// ReadFile runs the read command for path.
func (m *Module) ReadFile(ctx context.Context, path string) error {
	return m.Handler.Execute(m.Context(ctx), markdowncmd.ReadFileCommand{Path: path})
}

func newLoggerProvider(cfg runtimeconfig.Config, stderr io.Writer) (interfaces.LoggerProvider, error) {
	if !cfg.Features.Logger {
		return nil, nil
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Provider)) {
	case "console":
		level, _ := console.ParseLevel(cfg.Logging.Level)
		return console.NewProvider(console.Options{
			Writer:   stderr,
			MinLevel: &level,
		}), nil
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
			Writer:    stderr,
		})
	default:
		return nil, fmt.Errorf("unsupported logging provider %q", cfg.Logging.Provider)
	}
}
