package markdowncmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-ai-coding-agent/internal/commands"
	"github.com/goliatone/go-ai-coding-agent/internal/logging"
	"github.com/goliatone/go-ai-coding-agent/internal/markdown"
	"github.com/goliatone/go-ai-coding-agent/pkg/interfaces"
)

const readOperation = "markdown.read_file"

var inspectMetadata = markdown.Inspect

// ErrNilReader is returned when the handler is built without a reader.
var ErrNilReader = errors.New("markdown command: reader is nil")

var _ command.Commander[ReadFileCommand] = (*ReadFileHandler)(nil)

// ReadFileHandler reads the requested file and writes its content, followed
// by a newline, to the configured output. Nothing is written unless the
// whole file was read successfully.
type ReadFileHandler struct {
	inner *commands.Handler[ReadFileCommand]
}

// NewReadFileHandler binds a handler to reader and out. The shared handler
// timeout is disabled unless opts set one.
func NewReadFileHandler(reader interfaces.MarkdownReader, out io.Writer, logger interfaces.Logger, opts ...commands.HandlerOption[ReadFileCommand]) *ReadFileHandler {
	if logger == nil {
		logger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ReadFileCommand) error {
		if reader == nil {
			return ErrNilReader
		}

		content, err := reader.ReadFile(ctx, msg.Path)
		if err != nil {
			return err
		}

		if !logging.IsNoOp(logger) {
			logMetadata(logging.WithFileContext(logger, msg.Path, "", int64(len(content))), content)
		}

		if _, err := fmt.Fprintln(out, content); err != nil {
			return fmt.Errorf("write content: %w", err)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ReadFileCommand]{
		commands.WithLogger[ReadFileCommand](logger),
		commands.WithOperation[ReadFileCommand](readOperation),
		commands.WithMessageFields(func(msg ReadFileCommand) map[string]any {
			return map[string]any{"path": msg.Path}
		}),
		commands.WithTimeout[ReadFileCommand](0),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ReadFileHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander.
func (h *ReadFileHandler) Execute(ctx context.Context, msg ReadFileCommand) error {
	return h.inner.Execute(ctx, msg)
}

func logMetadata(logger interfaces.Logger, content string) {
	meta, err := inspectMetadata(content)
	if err != nil {
		logger.Debug("markdown.read.frontmatter_invalid", "error", err)
		return
	}
	if !meta.HasFrontMatter {
		logger.Debug("markdown.read.completed")
		return
	}
	logger.Debug("markdown.read.completed",
		"title", meta.Title,
		"tags", len(meta.Tags),
	)
}
