package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

const testManifest = `
id: translator
name: Translator
version: 1.2.0
description: Translates text between languages
capabilities:
  - translate
tags:
  - nlp
endpoints:
  api: https://agents.example.com/translator
`

// runCommand executes the root command in-process and captures its output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// testHome points the CLI at a throwaway home directory.
func testHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("AGENTHUB_HOME", home)
	viper.Reset()
	return home
}

func writeManifest(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "translator.yaml")
	if err := os.WriteFile(path, []byte(testManifest), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLifecycle(t *testing.T) {
	home := testHome(t)
	manifestPath := writeManifest(t, home)

	out, err := runCommand(t, "init")
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(out, "Initialized agent registry") {
		t.Errorf("init output = %q", out)
	}

	out, err = runCommand(t, "add", manifestPath)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !strings.Contains(out, "Added agent translator") {
		t.Errorf("add output = %q", out)
	}

	out, err = runCommand(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "translator") || !strings.Contains(out, "1.2.0") {
		t.Errorf("list output missing agent: %q", out)
	}

	out, err = runCommand(t, "get", "translator")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !strings.Contains(out, "Translates text between languages") {
		t.Errorf("get output missing description: %q", out)
	}

	out, err = runCommand(t, "search", "Translator")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(out, "translator") || !strings.Contains(out, "1 of 1 agent(s)") {
		t.Errorf("search output = %q", out)
	}

	out, err = runCommand(t, "update", "translator", "--version", "1.3.0")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !strings.Contains(out, "Updated agent translator") {
		t.Errorf("update output = %q", out)
	}

	out, err = runCommand(t, "get", "translator")
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if !strings.Contains(out, "1.3.0") {
		t.Errorf("get output missing new version: %q", out)
	}

	out, err = runCommand(t, "remove", "translator")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if !strings.Contains(out, "Removed agent translator") {
		t.Errorf("remove output = %q", out)
	}

	out, err = runCommand(t, "list")
	if err != nil {
		t.Fatalf("list after remove: %v", err)
	}
	if !strings.Contains(out, "No agents registered yet.") {
		t.Errorf("list output = %q", out)
	}
}

func TestAdd_DuplicateFails(t *testing.T) {
	home := testHome(t)
	manifestPath := writeManifest(t, home)

	if _, err := runCommand(t, "init"); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := runCommand(t, "add", manifestPath); err != nil {
		t.Fatalf("first add: %v", err)
	}

	_, err := runCommand(t, "add", manifestPath)
	if err == nil {
		t.Fatal("expected duplicate add to fail")
	}
	want := `Failed to add agent: agent with id "translator" already exists`
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestRemove_UnknownAgent(t *testing.T) {
	testHome(t)

	if _, err := runCommand(t, "init"); err != nil {
		t.Fatalf("init: %v", err)
	}

	_, err := runCommand(t, "remove", "ghost")
	if err == nil {
		t.Fatal("expected remove of unknown agent to fail")
	}
	want := `Failed to remove agent: no agent with id "ghost"`
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestValidate_ReportsViolations(t *testing.T) {
	home := testHome(t)

	// An agent missing its name and with a bad version.
	broken := `{"agents": [{"id": "x", "version": "one", "description": "d",
		"capabilities": ["c"], "endpoints": {"api": "https://x"}}]}`
	path := filepath.Join(home, "broken.json")
	if err := os.WriteFile(path, []byte(broken), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "validate", path)
	if err == nil {
		t.Fatal("expected validate to fail")
	}
	if !strings.Contains(out, "[FAIL]") {
		t.Errorf("validate output = %q, want a [FAIL] line", out)
	}
	if !strings.Contains(out, "/agents/0") {
		t.Errorf("validate output = %q, want violation paths", out)
	}
}

func TestDashJoin(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected string
	}{
		{"nil", nil, "-"},
		{"empty", []string{}, "-"},
		{"single", []string{"nlp"}, "nlp"},
		{"multiple", []string{"test", "search"}, "test,search"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dashJoin(tt.values); got != tt.expected {
				t.Errorf("dashJoin(%v) = %q, want %q", tt.values, got, tt.expected)
			}
		})
	}
}
