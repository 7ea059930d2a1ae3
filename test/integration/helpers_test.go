//go:build integration

package integration_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agenthub-labs/agenthub/catalog"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir     string // AGENTHUB_HOME, contains agents.json and history.db
	CatalogPath string
}

// setupTestEnv creates an isolated temp home and points all AgentHub
// operations at it. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	home := t.TempDir()
	t.Setenv("AGENTHUB_HOME", home)

	return &testEnv{
		HomeDir:     home,
		CatalogPath: filepath.Join(home, "agents.json"),
	}
}

// seedAgent returns a complete agent record with the given id and name.
func seedAgent(id, name string, capabilities []string, tags []string) catalog.Agent {
	return catalog.Agent{
		ID:           id,
		Name:         name,
		Version:      "1.0.0",
		Description:  fmt.Sprintf("%s test fixture", name),
		Capabilities: capabilities,
		Tags:         tags,
		Endpoints: catalog.Endpoints{
			API: fmt.Sprintf("https://agents.example.com/%s", id),
		},
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
