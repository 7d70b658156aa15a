package agent

import "github.com/goliatone/go-ai-coding-agent/internal/runtimeconfig"

var (
	ErrLoggingProviderRequired  = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown   = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid      = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid     = runtimeconfig.ErrLoggingFormatInvalid
	ErrReaderMaxFileSizeInvalid = runtimeconfig.ErrReaderMaxFileSizeInvalid
)

type (
	Config        = runtimeconfig.Config
	Features      = runtimeconfig.Features
	LoggingConfig = runtimeconfig.LoggingConfig
	ReaderConfig  = runtimeconfig.ReaderConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
