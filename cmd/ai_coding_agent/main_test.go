package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-ai-coding-agent/internal/bootstrap"
	markdowncmd "github.com/goliatone/go-ai-coding-agent/internal/commands/markdown"
	"github.com/goliatone/go-ai-coding-agent/internal/logging"
	"github.com/goliatone/go-ai-coding-agent/internal/runtimeconfig"
	"github.com/goliatone/go-ai-coding-agent/pkg/testsupport"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	return runCLIWithEnv(t, nil, args...)
}

func runCLIWithEnv(t *testing.T, env map[string]string, args ...string) (int, string, string) {
	t.Helper()
	original := lookupEnv
	lookupEnv = func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}
	defer func() { lookupEnv = original }()

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunPrintsMarkdownContent(t *testing.T) {
	path := testsupport.WriteFixture(t, t.TempDir(), "README.md", "# Hi\n")

	code, stdout, stderr := runCLI(t, path)
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d (stderr %q)", code, stderr)
	}
	if stdout != "# Hi\n\n" {
		t.Fatalf("expected content followed by a newline, got %q", stdout)
	}
	if stderr != "" {
		t.Fatalf("expected empty stderr, got %q", stderr)
	}
}

func TestRunWithoutArguments(t *testing.T) {
	code, stdout, stderr := runCLI(t)
	if code != exitError {
		t.Fatalf("expected exit 1, got %d", code)
	}
	want := "Error: Invalid arguments: No arguments provided\n\nUse 'ai_coding_agent --help' for more information.\n"
	if stderr != want {
		t.Fatalf("unexpected stderr:\n%q\nwant:\n%q", stderr, want)
	}
	if stdout != "" {
		t.Fatalf("expected empty stdout, got %q", stdout)
	}
}

func TestRunShowsHelp(t *testing.T) {
	for _, flag := range []string{"--help", "-h"} {
		code, stdout, stderr := runCLI(t, flag, "ignored.md")
		if code != exitOK {
			t.Fatalf("%s: expected exit 0, got %d", flag, code)
		}
		for _, section := range []string{"AI Coding Agent - Markdown Reader v0.1.0", "USAGE:", "ARGUMENTS:", "OPTIONS:", "EXAMPLES:"} {
			if !strings.Contains(stdout, section) {
				t.Fatalf("%s: expected %q in help output, got %q", flag, section, stdout)
			}
		}
		if stderr != "" {
			t.Fatalf("%s: expected empty stderr, got %q", flag, stderr)
		}
	}
}

func TestRunRejectsUnknownFlag(t *testing.T) {
	code, _, stderr := runCLI(t, "--verbose")
	if code != exitError {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.HasPrefix(stderr, "Error: Invalid arguments: Unknown flag: '--verbose'\n") {
		t.Fatalf("unexpected stderr %q", stderr)
	}
}

func TestRunRejectsInvalidPathArgument(t *testing.T) {
	code, _, stderr := runCLI(t, "notes?.md")
	if code != exitError {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr, "Invalid file path: 'notes?.md'") {
		t.Fatalf("unexpected stderr %q", stderr)
	}
}

func TestRunRejectsNonMarkdownExtension(t *testing.T) {
	path := testsupport.WriteFixture(t, t.TempDir(), "notes.txt", "plain")

	code, stdout, stderr := runCLI(t, path)
	if code != exitError {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr, "invalid extension") || !strings.Contains(stderr, "txt") {
		t.Fatalf("unexpected stderr %q", stderr)
	}
	if !strings.Contains(stderr, "Hint: Markdown files must have a .md or .markdown extension.") {
		t.Fatalf("expected extension hint, got %q", stderr)
	}
	if stdout != "" {
		t.Fatalf("expected empty stdout, got %q", stdout)
	}
}

func TestRunRejectsDirectory(t *testing.T) {
	dir := t.TempDir()

	code, _, stderr := runCLI(t, dir)
	if code != exitError {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr, "not a file") {
		t.Fatalf("unexpected stderr %q", stderr)
	}
}

func TestRunReportsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.md")

	code, _, stderr := runCLI(t, path)
	if code != exitError {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr, "File not found") || !strings.Contains(stderr, path) {
		t.Fatalf("unexpected stderr %q", stderr)
	}
	if !strings.Contains(stderr, "Hint: Make sure the file path is correct and the file exists.") {
		t.Fatalf("expected not-found hint, got %q", stderr)
	}
}

func TestRunReportsPathThroughFileAsMissing(t *testing.T) {
	parent := testsupport.WriteFixture(t, t.TempDir(), "README.md", "# Hi\n")
	path := filepath.Join(parent, "child.md")

	code, _, stderr := runCLI(t, path)
	if code != exitError {
		t.Fatalf("expected exit 1, got %d", code)
	}
	want := "Error: File not found: '" + path + "'\nHint: Make sure the file path is correct and the file exists.\n"
	if stderr != want {
		t.Fatalf("unexpected stderr:\n%q\nwant:\n%q", stderr, want)
	}
}

func TestRunRejectsOversizedFile(t *testing.T) {
	path := testsupport.WriteSizedFixture(t, t.TempDir(), "big.md", 10*1024*1024+1)

	code, stdout, stderr := runCLI(t, path)
	if code != exitError {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr, "too large") || !strings.Contains(stderr, "10485761") {
		t.Fatalf("unexpected stderr %q", stderr)
	}
	if stdout != "" {
		t.Fatalf("expected no content on stdout, got %d bytes", len(stdout))
	}
}

func TestRunIgnoresExtraArguments(t *testing.T) {
	dir := t.TempDir()
	first := testsupport.WriteFixture(t, dir, "first.md", "first")
	second := testsupport.WriteFixture(t, dir, "second.md", "second")

	code, stdout, _ := runCLI(t, first, second, "--unknown")
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if stdout != "first\n" {
		t.Fatalf("expected only the first file, got %q", stdout)
	}
}

func TestRunReportsBootstrapFailure(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()
	moduleBuilder = func(bootstrap.Options) (*bootstrap.Module, error) {
		return nil, errors.New("boom")
	}

	code, _, stderr := runCLI(t, "README.md")
	if code != exitError {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if stderr != "Error: bootstrap module: boom\n" {
		t.Fatalf("unexpected stderr %q", stderr)
	}
}

type stubReader struct {
	paths []string
}

func (s *stubReader) ReadFile(_ context.Context, path string) (string, error) {
	s.paths = append(s.paths, path)
	return "stubbed", nil
}

func TestRunUsesCommandHandler(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	reader := &stubReader{}
	moduleBuilder = func(opts bootstrap.Options) (*bootstrap.Module, error) {
		return &bootstrap.Module{
			Handler: markdowncmd.NewReadFileHandler(reader, opts.Stdout, logging.NoOp()),
			Logger:  logging.NoOp(),
		}, nil
	}

	code, stdout, _ := runCLI(t, "docs/guide.md")
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if len(reader.paths) != 1 || reader.paths[0] != "docs/guide.md" {
		t.Fatalf("expected handler to read docs/guide.md, got %v", reader.paths)
	}
	if stdout != "stubbed\n" {
		t.Fatalf("unexpected stdout %q", stdout)
	}
}

func TestRunIgnoresInvalidLoggingEnvironment(t *testing.T) {
	path := testsupport.WriteFixture(t, t.TempDir(), "README.md", "# Hi\n")

	cases := map[string]map[string]string{
		"unknown provider": {runtimeconfig.EnvLogProvider: "syslog"},
		"invalid level":    {runtimeconfig.EnvLogProvider: "console", runtimeconfig.EnvLogLevel: "loud"},
		"invalid format":   {runtimeconfig.EnvLogProvider: "gologger", runtimeconfig.EnvLogFormat: "xml"},
	}

	for name, env := range cases {
		code, stdout, stderr := runCLIWithEnv(t, env, path)
		if code != exitOK {
			t.Fatalf("%s: expected exit 0, got %d (stderr %q)", name, code, stderr)
		}
		if stdout != "# Hi\n\n" {
			t.Fatalf("%s: unexpected stdout %q", name, stdout)
		}
		if stderr != "" {
			t.Fatalf("%s: expected empty stderr, got %q", name, stderr)
		}
	}
}

func TestRunKeepsDiagnosticsOffStdout(t *testing.T) {
	path := testsupport.WriteFixture(t, t.TempDir(), "README.md", "# Hi\n")

	pipeReader, pipeWriter, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	originalStdout := os.Stdout
	os.Stdout = pipeWriter

	for _, provider := range []string{"gologger", "console"} {
		code, stdout, stderr := runCLIWithEnv(t, map[string]string{
			runtimeconfig.EnvLogProvider: provider,
			runtimeconfig.EnvLogLevel:    "debug",
		}, path)
		if code != exitOK {
			os.Stdout = originalStdout
			t.Fatalf("%s: expected exit 0, got %d (stderr %q)", provider, code, stderr)
		}
		if stdout != "# Hi\n\n" {
			os.Stdout = originalStdout
			t.Fatalf("%s: expected only file content on stdout, got %q", provider, stdout)
		}
		if !strings.Contains(stderr, "cli.read.start") {
			os.Stdout = originalStdout
			t.Fatalf("%s: expected diagnostics on stderr, got %q", provider, stderr)
		}
	}

	os.Stdout = originalStdout
	pipeWriter.Close()
	leaked, err := io.ReadAll(pipeReader)
	pipeReader.Close()
	if err != nil {
		t.Fatalf("read pipe: %v", err)
	}
	if len(leaked) != 0 {
		t.Fatalf("expected nothing written to the process stdout, got %q", leaked)
	}
}
