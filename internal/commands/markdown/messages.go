package markdowncmd

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	pathvalidation "github.com/goliatone/go-ai-coding-agent/internal/validation"
)

const readFileMessageType = "agent.markdown.read_file"

// ReadFileCommand asks for a single markdown file to be read and printed.
type ReadFileCommand struct {
	// Path is the file to read, relative to the working directory or absolute.
	Path string `json:"path"`
}

// Type implements command.Message.
func (ReadFileCommand) Type() string { return readFileMessageType }

// Validate ensures the path is syntactically usable before the handler
// touches the filesystem.
func (cmd ReadFileCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Path, validation.Required, pathvalidation.PathRule),
	)
}
