package markdown

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrorKind identifies which reader check failed.
type ErrorKind int

const (
	KindFileNotFound ErrorKind = iota + 1
	KindNotAFile
	KindInvalidExtension
	KindReadError
	KindFileTooLarge
	KindInvalidPath
	KindIO
)

func (k ErrorKind) String() string {
	switch k {
	case KindFileNotFound:
		return "file_not_found"
	case KindNotAFile:
		return "not_a_file"
	case KindInvalidExtension:
		return "invalid_extension"
	case KindReadError:
		return "read_error"
	case KindFileTooLarge:
		return "file_too_large"
	case KindInvalidPath:
		return "invalid_path"
	case KindIO:
		return "io_error"
	default:
		return "unknown"
	}
}

// NoExtension is reported as the actual extension of files without one.
const NoExtension = "none"

// ErrInvalidUTF8 is the cause attached to read errors for files that are not
// valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// Error is returned by Reader for every failed check. Only the fields
// relevant to Kind are populated.
type Error struct {
	Kind      ErrorKind
	Path      string
	Extension string
	Size      int64
	Max       int64
	Err       error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindFileNotFound:
		return fmt.Sprintf("File not found: '%s'", e.Path)
	case KindNotAFile:
		return fmt.Sprintf("Path is not a file: '%s'", e.Path)
	case KindInvalidExtension:
		return fmt.Sprintf("File '%s' has invalid extension '%s', expected '.md' or '.markdown'", e.Path, e.Extension)
	case KindReadError:
		return fmt.Sprintf("Failed to read file '%s': %v", e.Path, e.Err)
	case KindFileTooLarge:
		limit := e.Max
		if limit <= 0 {
			limit = MaxFileSize
		}
		return fmt.Sprintf("File '%s' is too large (%d bytes), maximum allowed is %d bytes", e.Path, e.Size, limit)
	case KindInvalidPath:
		return "Invalid file path provided"
	case KindIO:
		return fmt.Sprintf("I/O error: %v", e.Err)
	default:
		return fmt.Sprintf("markdown error: %v", e.Err)
	}
}

// Unwrap exposes the underlying cause of ReadError and IO errors.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error of the same Kind, so callers can write
// errors.Is(err, &markdown.Error{Kind: markdown.KindNotAFile}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain, or zero.
func KindOf(err error) ErrorKind {
	var mdErr *Error
	if errors.As(err, &mdErr) {
		return mdErr.Kind
	}
	return 0
}

// FromIOError converts a bare filesystem error into an *Error. Missing files
// map to KindFileNotFound with a placeholder path since the caller did not
// supply one; anything else becomes KindIO.
func FromIOError(err error) *Error {
	if err == nil {
		return nil
	}
	var mdErr *Error
	if errors.As(err, &mdErr) {
		return mdErr
	}
	if errors.Is(err, fs.ErrNotExist) {
		return &Error{Kind: KindFileNotFound, Path: "file"}
	}
	return &Error{Kind: KindIO, Err: err}
}

func fileNotFound(path string) *Error {
	return &Error{Kind: KindFileNotFound, Path: path}
}

func notAFile(path string) *Error {
	return &Error{Kind: KindNotAFile, Path: path}
}

func invalidExtension(path, ext string) *Error {
	return &Error{Kind: KindInvalidExtension, Path: path, Extension: ext}
}

func readError(path string, cause error) *Error {
	return &Error{Kind: KindReadError, Path: path, Err: cause}
}

func fileTooLarge(path string, size, limit int64) *Error {
	return &Error{Kind: KindFileTooLarge, Path: path, Size: size, Max: limit}
}
