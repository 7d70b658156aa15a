package markdown

import (
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-ai-coding-agent/pkg/interfaces"
)

type frontMatterEnvelope struct {
	Title  string         `yaml:"title" toml:"title" json:"title"`
	Tags   []string       `yaml:"tags" toml:"tags" json:"tags"`
	Custom map[string]any `yaml:",inline"`
}

// Inspect extracts front matter metadata from markdown content. Content
// without a front matter block yields zero metadata and no error. The input
// is never modified; Inspect exists for diagnostics only.
func Inspect(content string) (interfaces.MarkdownMetadata, error) {
	var env frontMatterEnvelope

	body, err := frontmatter.Parse(strings.NewReader(content), &env)
	if err != nil {
		return interfaces.MarkdownMetadata{}, fmt.Errorf("parse frontmatter: %w", err)
	}
	if len(body) == len(content) {
		return interfaces.MarkdownMetadata{}, nil
	}

	raw := make(map[string]any, len(env.Custom)+2)
	for key, value := range env.Custom {
		raw[key] = value
	}
	if env.Title != "" {
		raw["title"] = env.Title
	}
	if len(env.Tags) > 0 {
		raw["tags"] = append([]string(nil), env.Tags...)
	}

	return interfaces.MarkdownMetadata{
		Title:          env.Title,
		Tags:           append([]string(nil), env.Tags...),
		HasFrontMatter: true,
		Raw:            raw,
	}, nil
}
