package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

// loadFresh resets viper state so subtests do not bleed into one another.
func loadFresh(t *testing.T, home string) {
	t.Helper()
	t.Setenv("AGENTHUB_HOME", home)
	viper.Reset()
	Load()
}

func TestDir_HomeOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("AGENTHUB_HOME", home)

	if got := Dir(); got != home {
		t.Errorf("Dir() = %q, want %q", got, home)
	}
	want := filepath.Join(home, "config.yaml")
	if got := FilePath(); got != want {
		t.Errorf("FilePath() = %q, want %q", got, want)
	}
}

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()
	loadFresh(t, home)

	if got, want := CatalogPath(), filepath.Join(home, "agents.json"); got != want {
		t.Errorf("CatalogPath() = %q, want %q", got, want)
	}
	if got := SchemaPath(); got != "" {
		t.Errorf("SchemaPath() = %q, want empty (embedded shape)", got)
	}
	if got, want := HistoryPath(), filepath.Join(home, "history.db"); got != want {
		t.Errorf("HistoryPath() = %q, want %q", got, want)
	}

	rl := RateLimit()
	if rl.Window != time.Minute {
		t.Errorf("RateLimit().Window = %v, want %v", rl.Window, time.Minute)
	}
	if rl.MaxRequests != 100 {
		t.Errorf("RateLimit().MaxRequests = %d, want 100", rl.MaxRequests)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("AGENTHUB_CATALOG_PATH", "/tmp/elsewhere/agents.json")
	t.Setenv("AGENTHUB_DISCOVERY_WINDOW_MS", "500")
	t.Setenv("AGENTHUB_DISCOVERY_MAX_REQUESTS", "3")
	loadFresh(t, home)

	if got := CatalogPath(); got != "/tmp/elsewhere/agents.json" {
		t.Errorf("CatalogPath() = %q, want env override", got)
	}
	rl := RateLimit()
	if rl.Window != 500*time.Millisecond {
		t.Errorf("RateLimit().Window = %v, want 500ms", rl.Window)
	}
	if rl.MaxRequests != 3 {
		t.Errorf("RateLimit().MaxRequests = %d, want 3", rl.MaxRequests)
	}
}

func TestSet_PersistsToConfigFile(t *testing.T) {
	home := t.TempDir()
	loadFresh(t, home)

	if err := Set(KeySchemaPath, "/tmp/custom.schema.json"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if _, err := os.Stat(FilePath()); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	// A fresh viper picks the value back up from disk.
	viper.Reset()
	Load()
	if got := SchemaPath(); got != "/tmp/custom.schema.json" {
		t.Errorf("SchemaPath() after reload = %q, want persisted value", got)
	}
}

func TestGet_UnsetKeyIsEmpty(t *testing.T) {
	loadFresh(t, t.TempDir())

	if got := Get("no.such.key"); got != "" {
		t.Errorf("Get(no.such.key) = %q, want empty", got)
	}
}
