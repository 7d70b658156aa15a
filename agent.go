// Package agent exposes the markdown reader behind the ai_coding_agent
// binary as a library: path validation, extension checks and bounded reads
// of a single markdown file.
package agent

import (
	"context"

	"github.com/goliatone/go-ai-coding-agent/internal/markdown"
	"github.com/goliatone/go-ai-coding-agent/internal/validation"
	"github.com/goliatone/go-ai-coding-agent/pkg/interfaces"
)

// MaxFileSize is the largest file, in bytes, ReadMarkdownFile accepts.
const MaxFileSize = markdown.MaxFileSize

type (
	// Error is returned by read operations; inspect Kind to branch on the
	// failure.
	Error     = markdown.Error
	ErrorKind = markdown.ErrorKind
	Metadata  = interfaces.MarkdownMetadata
)

const (
	KindFileNotFound     = markdown.KindFileNotFound
	KindNotAFile         = markdown.KindNotAFile
	KindInvalidExtension = markdown.KindInvalidExtension
	KindReadError        = markdown.KindReadError
	KindFileTooLarge     = markdown.KindFileTooLarge
	KindInvalidPath      = markdown.KindInvalidPath
	KindIO               = markdown.KindIO
)

// ReadMarkdownFile reads path with the default 10 MiB ceiling.
func ReadMarkdownFile(path string) (string, error) {
	return ReadMarkdownFileContext(context.Background(), path)
}

// ReadMarkdownFileContext is ReadMarkdownFile with a caller supplied context.
func ReadMarkdownFileContext(ctx context.Context, path string) (string, error) {
	return markdown.NewReader(markdown.ReaderConfig{}).ReadFile(ctx, path)
}

// NewReader builds a reader honouring cfg.Reader.
func NewReader(cfg Config) interfaces.MarkdownReader {
	return markdown.NewReader(markdown.ReaderConfig{MaxFileSize: cfg.Reader.MaxFileSize})
}

// IsValidPath reports whether s is usable as a file path argument.
func IsValidPath(s string) bool {
	return validation.IsValidPath(s)
}

// IsMarkdownFile reports whether path ends in .md or .markdown, any case.
func IsMarkdownFile(path string) bool {
	return markdown.IsMarkdownFile(path)
}

// KindOf returns the error kind carried by err, or zero.
func KindOf(err error) ErrorKind {
	return markdown.KindOf(err)
}

// FromIOError converts a filesystem error into an *Error.
func FromIOError(err error) *Error {
	return markdown.FromIOError(err)
}

// Inspect extracts front matter metadata from markdown content.
func Inspect(content string) (Metadata, error) {
	return markdown.Inspect(content)
}
