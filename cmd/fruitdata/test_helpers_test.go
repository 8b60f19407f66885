package main

import (
	"bytes"
	"strings"
	"testing"
)

// runCLI executes the real root command with captured output. A fresh
// command tree is built per call so flag and config state never leaks
// between invocations, mirroring one-shot process runs.
func runCLI(t *testing.T, args []string, file, configPath string) (string, string, error) {
	t.Helper()

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	var flags []string
	if file != "" {
		flags = append(flags, "--file", file)
	}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// isolateHome points HOME at a temp directory so tests never pick up a real
// user configuration.
func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

func requireNotContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		t.Fatalf("expected output to not contain %q, got:\n%s", needle, haystack)
	}
}
