package cli

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-ai-coding-agent/internal/validation"
)

// Action is what the caller should do with a parsed invocation.
type Action int

const (
	ActionShowHelp Action = iota + 1
	ActionReadPath
)

// Request is the outcome of a successful Parse. Path is set only for
// ActionReadPath and always satisfies validation.IsValidPath.
type Request struct {
	Action Action
	Path   string
}

// ParseErrorKind identifies why the arguments were rejected.
type ParseErrorKind int

const (
	ErrNoArguments ParseErrorKind = iota + 1
	ErrEmptyPath
	ErrInvalidPath
	ErrUnknownFlag
)

// ParseError reports an invalid invocation. Value holds the offending
// argument for ErrInvalidPath and ErrUnknownFlag.
type ParseError struct {
	Kind  ParseErrorKind
	Value string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrNoArguments:
		return "No arguments provided"
	case ErrEmptyPath:
		return "File path cannot be empty"
	case ErrInvalidPath:
		return fmt.Sprintf("Invalid file path: '%s'", e.Value)
	case ErrUnknownFlag:
		return fmt.Sprintf("Unknown flag: '%s'", e.Value)
	default:
		return "invalid arguments"
	}
}

// Parse resolves the invocation arguments (program name excluded). Only the
// first argument is inspected; anything after it is ignored.
func Parse(args []string) (Request, error) {
	if len(args) == 0 {
		return Request{}, &ParseError{Kind: ErrNoArguments}
	}

	first := args[0]
	switch {
	case first == "--help" || first == "-h":
		return Request{Action: ActionShowHelp}, nil
	case strings.HasPrefix(first, "-"):
		return Request{}, &ParseError{Kind: ErrUnknownFlag, Value: first}
	}

	if strings.TrimSpace(first) == "" {
		return Request{}, &ParseError{Kind: ErrEmptyPath}
	}
	if !validation.IsValidPath(first) {
		return Request{}, &ParseError{Kind: ErrInvalidPath, Value: first}
	}
	return Request{Action: ActionReadPath, Path: first}, nil
}
