package markdown

import (
	"path/filepath"
	"strings"
)

var markdownExtensions = []string{"md", "markdown"}

// Extension returns the extension of the final path component, without the
// dot. A name whose only dot is its first character (".profile") has no
// extension; "notes." has an empty one.
func Extension(path string) (string, bool) {
	name := filepath.Base(path)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return "", false
	}
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 {
		return "", false
	}
	return name[idx+1:], true
}

// IsMarkdownFile reports whether path ends in a markdown extension. The
// comparison ignores case.
func IsMarkdownFile(path string) bool {
	ext, ok := Extension(path)
	if !ok {
		return false
	}
	for _, candidate := range markdownExtensions {
		if strings.EqualFold(ext, candidate) {
			return true
		}
	}
	return false
}

func reportedExtension(path string) string {
	if ext, ok := Extension(path); ok {
		return ext
	}
	return NoExtension
}
