package markdown

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"
	"syscall"
	"unicode/utf8"

	"github.com/goliatone/go-ai-coding-agent/internal/logging"
	"github.com/goliatone/go-ai-coding-agent/pkg/interfaces"
)

// MaxFileSize is the default ceiling on readable content: 10 MiB.
const MaxFileSize int64 = 10 * 1024 * 1024

// ReaderConfig configures a Reader.
type ReaderConfig struct {
	// MaxFileSize bounds the number of bytes a file may hold. Zero or
	// negative values fall back to the package MaxFileSize.
	MaxFileSize int64
}

// ReaderOption customises a Reader.
type ReaderOption func(*Reader)

// WithLogger sets the logger used for read diagnostics.
func WithLogger(logger interfaces.Logger) ReaderOption {
	return func(r *Reader) {
		if logger == nil {
			logger = logging.NoOp()
		}
		r.logger = logger
	}
}

// Reader validates and loads markdown files from the local filesystem.
type Reader struct {
	maxSize int64
	logger  interfaces.Logger
}

var _ interfaces.MarkdownReader = (*Reader)(nil)

// NewReader constructs a Reader from cfg.
func NewReader(cfg ReaderConfig, opts ...ReaderOption) *Reader {
	r := &Reader{
		maxSize: cfg.MaxFileSize,
		logger:  logging.NoOp(),
	}
	if r.maxSize <= 0 {
		r.maxSize = MaxFileSize
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// MaxSize returns the effective size ceiling in bytes.
func (r *Reader) MaxSize() int64 {
	return r.maxSize
}

// ReadFile returns the full text of the markdown file at path. Checks run in
// order and the first failure is returned as an *Error:
//
//  1. path exists (KindFileNotFound)
//  2. path is a regular file (KindNotAFile)
//  3. extension is md or markdown, any case (KindInvalidExtension)
//  4. size is within the ceiling (KindFileTooLarge)
//  5. content is readable UTF-8 (KindReadError)
//
// Type and size are checked again on the opened handle, and the read itself
// is bounded, so a file swapped or grown after the initial stat is still
// rejected without loading more than the ceiling plus one byte.
func (r *Reader) ReadFile(ctx context.Context, path string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if strings.TrimSpace(path) == "" {
		return "", &Error{Kind: KindInvalidPath}
	}

	logger := logging.WithFileContext(r.logger.WithContext(ctx), path, "", -1)

	info, err := os.Stat(path)
	if err != nil {
		if isMissing(err) {
			return "", fileNotFound(path)
		}
		logger.Debug("markdown.read.stat_failed", "error", err)
		return "", &Error{Kind: KindIO, Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return "", notAFile(path)
	}
	if !IsMarkdownFile(path) {
		return "", invalidExtension(path, reportedExtension(path))
	}

	content, err := r.readBounded(path)
	if err != nil {
		return "", err
	}

	logging.WithFileContext(logger, "", reportedExtension(path), int64(len(content))).
		Debug("markdown.read.complete")
	return content, nil
}

func (r *Reader) readBounded(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if isMissing(err) {
			return "", fileNotFound(path)
		}
		return "", readError(path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", readError(path, err)
	}
	if !info.Mode().IsRegular() {
		return "", notAFile(path)
	}
	if info.Size() > r.maxSize {
		return "", fileTooLarge(path, info.Size(), r.maxSize)
	}

	var buf bytes.Buffer
	buf.Grow(int(info.Size()))
	n, err := io.Copy(&buf, io.LimitReader(f, r.maxSize+1))
	if err != nil {
		return "", readError(path, err)
	}
	if n > r.maxSize {
		size := n
		if grown, statErr := f.Stat(); statErr == nil && grown.Size() > size {
			size = grown.Size()
		}
		return "", fileTooLarge(path, size, r.maxSize)
	}

	if !utf8.Valid(buf.Bytes()) {
		return "", readError(path, ErrInvalidUTF8)
	}
	return buf.String(), nil
}

// isMissing reports whether err means nothing exists at the path, including
// paths that run through a regular file (ENOTDIR).
func isMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
