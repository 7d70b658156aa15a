package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/goliatone/go-ai-coding-agent/internal/markdown"
)

const unexpectedHint = "An unexpected error occurred."

var hints = map[markdown.ErrorKind]string{
	markdown.KindFileNotFound:     "Make sure the file path is correct and the file exists.",
	markdown.KindNotAFile:         "The path must point to a regular file, not a directory.",
	markdown.KindInvalidExtension: "Markdown files must have a .md or .markdown extension.",
	markdown.KindInvalidPath:      "Please provide a valid file path.",
	markdown.KindReadError:        "Check file permissions and ensure the file is accessible.",
	markdown.KindIO:               "Check file permissions and ensure the file is accessible.",
}

// Hint returns the guidance line shown under a file error.
func Hint(err error) string {
	var mdErr *markdown.Error
	if errors.As(err, &mdErr) && mdErr.Kind == markdown.KindFileTooLarge {
		limit := mdErr.Max
		if limit <= 0 {
			limit = markdown.MaxFileSize
		}
		return fmt.Sprintf("Markdown files must not exceed %d bytes.", limit)
	}
	if hint, ok := hints[markdown.KindOf(err)]; ok {
		return hint
	}
	return unexpectedHint
}

// WriteFileError prints a file error and its hint. Markdown errors are
// printed with their own message; other errors fall back to err.Error().
func WriteFileError(w io.Writer, err error) error {
	message := err.Error()
	var mdErr *markdown.Error
	if errors.As(err, &mdErr) {
		message = mdErr.Error()
	}
	_, werr := fmt.Fprintf(w, "Error: %s\nHint: %s\n", message, Hint(err))
	return werr
}
