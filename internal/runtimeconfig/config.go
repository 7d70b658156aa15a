package runtimeconfig

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-ai-coding-agent/internal/markdown"
)

var ErrLoggingProviderRequired = errors.New("agent config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("agent config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("agent config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("agent config: logging format is invalid")

// ErrReaderMaxFileSizeInvalid rejects negative size ceilings. Zero selects
// the default ceiling.
var ErrReaderMaxFileSizeInvalid = errors.New("agent config: reader max file size must be zero or positive")

// Environment variables read by FromEnvironment. They only affect
// diagnostics; reading and printing behave the same regardless.
const (
	EnvLogProvider = "AI_CODING_AGENT_LOG_PROVIDER"
	EnvLogLevel    = "AI_CODING_AGENT_LOG_LEVEL"
	EnvLogFormat   = "AI_CODING_AGENT_LOG_FORMAT"
)

// Config is the runtime configuration assembled by the binary.
type Config struct {
	Features Features
	Logging  LoggingConfig
	Reader   ReaderConfig
}

// Features toggles optional subsystems.
type Features struct {
	Logger bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// ReaderConfig controls the markdown reader.
type ReaderConfig struct {
	MaxFileSize int64
}

// DefaultConfig returns the configuration used when nothing is overridden:
// logging off, 10 MiB reader ceiling.
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
		Reader: ReaderConfig{
			MaxFileSize: markdown.MaxFileSize,
		},
	}
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// FromEnvironment applies the AI_CODING_AGENT_LOG_* variables on top of
// base. Setting a provider other than "none" enables the logger feature.
// When the overlay does not validate, base is returned unchanged, so the
// variables can never make a read fail.
func FromEnvironment(base Config, lookup LookupFunc) Config {
	if lookup == nil {
		return base
	}
	cfg := base
	cfg.Logging.Focus = slices.Clone(base.Logging.Focus)
	if value, ok := lookup(EnvLogProvider); ok {
		provider := normalizeProvider(value)
		if provider == "" || provider == "none" {
			cfg.Features.Logger = false
		} else {
			cfg.Features.Logger = true
			cfg.Logging.Provider = provider
		}
	}
	if value, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(value) != "" {
		cfg.Logging.Level = strings.TrimSpace(value)
	}
	if value, ok := lookup(EnvLogFormat); ok && strings.TrimSpace(value) != "" {
		cfg.Logging.Format = strings.TrimSpace(value)
	}
	if err := cfg.Validate(); err != nil {
		return base
	}
	return cfg
}

// Validate performs consistency checks.
func (cfg Config) Validate() error {
	if err := validation.Validate(cfg.Reader.MaxFileSize, validation.Min(int64(0))); err != nil {
		return fmt.Errorf("%w: %d", ErrReaderMaxFileSizeInvalid, cfg.Reader.MaxFileSize)
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
