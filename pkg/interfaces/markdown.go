package interfaces

import "context"

// MarkdownReader loads the full text of a single markdown file after
// validating that it exists, is a regular file, carries a markdown extension
// and stays under the configured size ceiling.
type MarkdownReader interface {
	ReadFile(ctx context.Context, path string) (string, error)
}

// MarkdownMetadata summarises the front matter block found at the top of a
// markdown document, if any. It is informational only and never alters the
// content handed back by a MarkdownReader.
type MarkdownMetadata struct {
	Title          string
	Tags           []string
	HasFrontMatter bool
	Raw            map[string]any
}
