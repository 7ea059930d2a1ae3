package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/agenthub-labs/agenthub/internal/branding"
	"github.com/agenthub-labs/agenthub/ratelimit"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Config keys. Each one can be overridden by the matching environment
// variable (AGENTHUB_CATALOG_PATH, AGENTHUB_DISCOVERY_WINDOW_MS, ...).
const (
	KeyCatalogPath          = "catalog.path"
	KeySchemaPath           = "schema.path"
	KeyDiscoveryWindowMS    = "discovery.window_ms"
	KeyDiscoveryMaxRequests = "discovery.max_requests"
	KeyHistoryPath          = "history.path"
)

// Defaults for the discovery rate limit.
const (
	DefaultWindowMS    = 60000
	DefaultMaxRequests = 100
)

// Dir returns the path to the AgentHub home directory (~/.agenthub/).
// It checks the AGENTHUB_HOME environment variable first.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.agenthub/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the home directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyCatalogPath, filepath.Join(Dir(), branding.CatalogFile()))
	viper.SetDefault(KeySchemaPath, "")
	viper.SetDefault(KeyDiscoveryWindowMS, DefaultWindowMS)
	viper.SetDefault(KeyDiscoveryMaxRequests, DefaultMaxRequests)
	viper.SetDefault(KeyHistoryPath, filepath.Join(Dir(), branding.HistoryFile()))

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CatalogPath returns the configured location of the catalog document.
func CatalogPath() string {
	return viper.GetString(KeyCatalogPath)
}

// SchemaPath returns the configured schema override, or empty when the
// embedded shape should be used.
func SchemaPath() string {
	return viper.GetString(KeySchemaPath)
}

// HistoryPath returns the configured location of the search history
// database.
func HistoryPath() string {
	return viper.GetString(KeyHistoryPath)
}

// RateLimit returns the discovery rate limit settings.
func RateLimit() ratelimit.Config {
	return ratelimit.Config{
		Window:      time.Duration(viper.GetInt(KeyDiscoveryWindowMS)) * time.Millisecond,
		MaxRequests: viper.GetInt(KeyDiscoveryMaxRequests),
	}
}
