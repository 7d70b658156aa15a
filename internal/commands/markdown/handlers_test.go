package markdowncmd

import (
	"bytes"
	"context"
	"errors"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-ai-coding-agent/internal/markdown"
	"github.com/goliatone/go-ai-coding-agent/pkg/interfaces"
)

type stubReader struct {
	calls   []string
	content string
	err     error
}

func (s *stubReader) ReadFile(_ context.Context, path string) (string, error) {
	s.calls = append(s.calls, path)
	if s.err != nil {
		return "", s.err
	}
	return s.content, nil
}

type captureLogger struct {
	fields   []map[string]any
	messages []string
}

func (c *captureLogger) Trace(string, ...any) {}
func (c *captureLogger) Debug(msg string, _ ...any) {
	c.messages = append(c.messages, msg)
}
func (c *captureLogger) Info(msg string, _ ...any) {
	c.messages = append(c.messages, msg)
}
func (c *captureLogger) Warn(string, ...any) {}
func (c *captureLogger) Error(msg string, _ ...any) {
	c.messages = append(c.messages, msg)
}
func (c *captureLogger) Fatal(string, ...any) {}

func (c *captureLogger) WithFields(fields map[string]any) interfaces.Logger {
	c.fields = append(c.fields, fields)
	return c
}

func (c *captureLogger) WithContext(context.Context) interfaces.Logger { return c }

func (c *captureLogger) sawMessage(msg string) bool {
	for _, m := range c.messages {
		if m == msg {
			return true
		}
	}
	return false
}

func TestReadFileHandlerWritesContent(t *testing.T) {
	reader := &stubReader{content: "# Hi\n"}
	var out bytes.Buffer
	logger := &captureLogger{}

	handler := NewReadFileHandler(reader, &out, logger)
	if err := handler.Execute(context.Background(), ReadFileCommand{Path: "README.md"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(reader.calls) != 1 || reader.calls[0] != "README.md" {
		t.Fatalf("expected one read of README.md, got %v", reader.calls)
	}
	if out.String() != "# Hi\n\n" {
		t.Fatalf("expected content plus newline, got %q", out.String())
	}
	if !logger.sawMessage("markdown.read.completed") {
		t.Fatalf("expected completion log, got %v", logger.messages)
	}

	foundPath := false
	for _, fields := range logger.fields {
		if fields["path"] == "README.md" {
			foundPath = true
		}
	}
	if !foundPath {
		t.Fatalf("expected path field on command logger, got %v", logger.fields)
	}
}

func TestReadFileHandlerLogsFrontMatter(t *testing.T) {
	reader := &stubReader{content: "---\ntitle: Guide\n---\nbody\n"}
	var out bytes.Buffer
	logger := &captureLogger{}

	if err := NewReadFileHandler(reader, &out, logger).Execute(context.Background(), ReadFileCommand{Path: "guide.md"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != reader.content+"\n" {
		t.Fatalf("front matter must be printed verbatim, got %q", out.String())
	}
}

func TestReadFileHandlerReturnsReaderErrorsUnchanged(t *testing.T) {
	readErr := &markdown.Error{Kind: markdown.KindFileNotFound, Path: "missing.md"}
	reader := &stubReader{err: readErr}
	var out bytes.Buffer

	err := NewReadFileHandler(reader, &out, nil).Execute(context.Background(), ReadFileCommand{Path: "missing.md"})

	var mdErr *markdown.Error
	if !errors.As(err, &mdErr) || mdErr.Kind != markdown.KindFileNotFound {
		t.Fatalf("expected file not found error, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected nothing written on failure, got %q", out.String())
	}
}

func TestReadFileHandlerValidatesCommand(t *testing.T) {
	reader := &stubReader{content: "x"}
	var out bytes.Buffer

	err := NewReadFileHandler(reader, &out, nil).Execute(context.Background(), ReadFileCommand{Path: "a?.md"})

	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if len(reader.calls) != 0 {
		t.Fatal("expected reader not to be called")
	}
}

func TestReadFileHandlerNilReader(t *testing.T) {
	var out bytes.Buffer
	err := NewReadFileHandler(nil, &out, nil).Execute(context.Background(), ReadFileCommand{Path: "a.md"})
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestReadFileHandlerSkipsMetadataWithoutLogger(t *testing.T) {
	original := inspectMetadata
	defer func() { inspectMetadata = original }()

	calls := 0
	inspectMetadata = func(content string) (interfaces.MarkdownMetadata, error) {
		calls++
		return original(content)
	}

	reader := &stubReader{content: "---\ntitle: Guide\n---\n# Body\n"}
	var out bytes.Buffer

	if err := NewReadFileHandler(reader, &out, nil).Execute(context.Background(), ReadFileCommand{Path: "guide.md"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 0 {
		t.Fatalf("expected front matter to be skipped with logging off, got %d inspections", calls)
	}
	if out.String() != reader.content+"\n" {
		t.Fatalf("unexpected output %q", out.String())
	}

	if err := NewReadFileHandler(reader, &out, &captureLogger{}).Execute(context.Background(), ReadFileCommand{Path: "guide.md"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one inspection with a real logger, got %d", calls)
	}
}
