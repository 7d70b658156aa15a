package cli

import (
	"fmt"
	"io"
)

// ProgramName is the binary name shown in help and usage output.
const ProgramName = "ai_coding_agent"

// Version is reported in the help banner.
const Version = "0.1.0"

const helpText = `AI Coding Agent - Markdown Reader v%[2]s

USAGE:
    %[1]s <markdown_file>

ARGUMENTS:
    <markdown_file>    Path to the markdown file to read
                       Must have a .md or .markdown extension

OPTIONS:
    -h, --help         Display this help message

EXAMPLES:
    Read a markdown file:
        $ %[1]s README.md

    Read a file in a subdirectory:
        $ %[1]s docs/guide.md

    Show help:
        $ %[1]s --help
`

// WriteHelp prints the help text.
func WriteHelp(w io.Writer) error {
	_, err := fmt.Fprintf(w, helpText+"\n", ProgramName, Version)
	return err
}

// WriteUsageError prints an argument error followed by a pointer to --help.
func WriteUsageError(w io.Writer, message string) error {
	_, err := fmt.Fprintf(w, "Error: %s\n\nUse '%s --help' for more information.\n", message, ProgramName)
	return err
}
