package gologger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-ai-coding-agent/internal/logging"
	"github.com/goliatone/go-ai-coding-agent/pkg/interfaces"
)

// Config captures the options exposed by the go-logger adapter.
type Config struct {
	Level     string
	Format    string
	AddSource bool
	Focus     []string
	// Writer receives every entry. Defaults to os.Stderr so program output
	// on stdout stays untouched.
	Writer io.Writer
}

// Provider hands out go-logger compatible loggers that share one handler.
// Entries use go-logger's conventions: a "ts" time key, lower case level
// labels including trace and fatal, and a "logger" attribute per name.
type Provider struct {
	handler slog.Handler
	focus   map[string]bool
}

// NewProvider constructs a logger provider backed by go-logger handlers.
func NewProvider(cfg Config) (*Provider, error) {
	out := cfg.Writer
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   cfg.AddSource,
		ReplaceAttr: replaceAttr,
	}

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", glog.LoggerTypeConsole:
		handler = slog.NewTextHandler(out, opts)
	case glog.LoggerTypePretty:
		handler = glog.NewColorConsoleHandler(out, opts)
	case glog.LoggerTypeJSON:
		handler = slog.NewJSONHandler(out, opts)
	default:
		return nil, fmt.Errorf("logging: unsupported go-logger format %q", cfg.Format)
	}

	p := &Provider{handler: handler}
	if focus := normalizeFocus(cfg.Focus); len(focus) > 0 {
		p.focus = make(map[string]bool, len(focus))
		for _, name := range focus {
			p.focus[name] = true
		}
	}
	return p, nil
}

// GetLogger returns a named logger adapted to interfaces.Logger. When Focus
// is configured, loggers outside it are no-ops.
func (p *Provider) GetLogger(name string) interfaces.Logger {
	if p == nil || p.handler == nil {
		return logging.NoOp()
	}
	name = strings.TrimSpace(name)
	if len(p.focus) > 0 && !p.focus[name] {
		return logging.NoOp()
	}

	handler := p.handler
	if name != "" {
		handler = handler.WithAttrs([]slog.Attr{slog.String("logger", name)})
	}
	return wrap(&slogLogger{logger: slog.New(handler), ctx: context.Background()})
}

func wrap(inner glog.Logger) interfaces.Logger {
	if inner == nil {
		return logging.NoOp()
	}
	return &adapter{inner: inner}
}

type adapter struct {
	inner glog.Logger
}

var (
	_ interfaces.Logger       = (*adapter)(nil)
	_ interfaces.FieldsLogger = (*adapter)(nil)
)

func (l *adapter) Trace(msg string, args ...any) { l.inner.Trace(msg, args...) }
func (l *adapter) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }
func (l *adapter) Info(msg string, args ...any)  { l.inner.Info(msg, args...) }
func (l *adapter) Warn(msg string, args ...any)  { l.inner.Warn(msg, args...) }
func (l *adapter) Error(msg string, args ...any) { l.inner.Error(msg, args...) }
func (l *adapter) Fatal(msg string, args ...any) { l.inner.Fatal(msg, args...) }

// WithFields uses glog.FieldsLogger when available; other loggers are
// returned as-is.
func (l *adapter) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return l
	}
	if with, ok := l.inner.(glog.FieldsLogger); ok {
		return wrap(with.WithFields(maps.Clone(fields)))
	}
	return l
}

func (l *adapter) WithContext(ctx context.Context) interfaces.Logger {
	if ctx == nil {
		return l
	}
	return wrap(l.inner.WithContext(ctx))
}

// slogLogger implements glog.Logger over a slog handler. Fatal records at
// glog.LevelFatal and does not exit the process.
type slogLogger struct {
	logger *slog.Logger
	ctx    context.Context
}

var (
	_ glog.Logger       = (*slogLogger)(nil)
	_ glog.FieldsLogger = (*slogLogger)(nil)
)

func (l *slogLogger) Trace(msg string, args ...any) { l.logger.Log(l.ctx, glog.LevelTrace, msg, args...) }
func (l *slogLogger) Debug(msg string, args ...any) { l.logger.Log(l.ctx, slog.LevelDebug, msg, args...) }
func (l *slogLogger) Info(msg string, args ...any)  { l.logger.Log(l.ctx, slog.LevelInfo, msg, args...) }
func (l *slogLogger) Warn(msg string, args ...any)  { l.logger.Log(l.ctx, slog.LevelWarn, msg, args...) }
func (l *slogLogger) Error(msg string, args ...any) { l.logger.Log(l.ctx, slog.LevelError, msg, args...) }
func (l *slogLogger) Fatal(msg string, args ...any) { l.logger.Log(l.ctx, glog.LevelFatal, msg, args...) }

func (l *slogLogger) WithContext(ctx context.Context) glog.Logger {
	return &slogLogger{logger: l.logger, ctx: ctx}
}

func (l *slogLogger) WithFields(fields map[string]any) glog.Logger {
	if len(fields) == 0 {
		return l
	}
	keys := slices.Sorted(maps.Keys(fields))
	args := make([]any, 0, len(keys)*2)
	for _, key := range keys {
		args = append(args, key, fields[key])
	}
	return &slogLogger{logger: l.logger.With(args...), ctx: l.ctx}
}

func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		a.Key = "ts"
	case slog.LevelKey:
		level, ok := a.Value.Any().(slog.Level)
		if !ok {
			return a
		}
		label, exists := glog.CustomLevels[level]
		if !exists {
			label = level.String()
		}
		a.Value = slog.StringValue(strings.ToLower(label))
	}
	return a
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return glog.LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "fatal":
		return glog.LevelFatal
	default:
		return slog.LevelInfo
	}
}

func normalizeFocus(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
