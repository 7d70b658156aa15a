package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-ai-coding-agent/pkg/interfaces"
)

const (
	rootModule     = "agent"
	cliModule      = "agent.cli"
	readerModule   = "agent.markdown"
	commandsModule = "agent.commands"
)

const (
	fieldFilePath  = "file_path"
	fieldExtension = "extension"
	fieldSize      = "size_bytes"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as a structured field so entries can be filtered per stage.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// CLILogger returns the logger namespace reserved for argument handling.
func CLILogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, cliModule)
}

// ReaderLogger returns the logger namespace reserved for the markdown reader.
func ReaderLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, readerModule)
}

// CommandsLogger returns the logger namespace reserved for command handlers.
func CommandsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, commandsModule)
}

// WithFileContext enriches the logger with the path being read and, when
// known, its extension and size. Empty or negative values are skipped.
func WithFileContext(logger interfaces.Logger, path, extension string, size int64) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldFilePath] = trimmed
	}
	if trimmed := strings.TrimSpace(extension); trimmed != "" {
		fields[fieldExtension] = trimmed
	}
	if size >= 0 {
		fields[fieldSize] = size
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

// IsNoOp reports whether logger drops every entry, letting callers skip work
// done only to build log fields.
func IsNoOp(logger interfaces.Logger) bool {
	if logger == nil {
		return true
	}
	_, ok := logger.(noopLogger)
	return ok
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
