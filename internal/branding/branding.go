// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package and rebuild; Go's //go:embed
// bakes the values into the binary. Hard-coded defaults cover a missing or
// partial file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	GitHubRepo  string `yaml:"github_repo"`
	CatalogFile string `yaml:"catalog_file"`
	HistoryFile string `yaml:"history_file"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "agenthub",
			DisplayName: "AgentHub",
			Description: "Registry and discovery service for AI agent descriptors",
			HomeDir:     ".agenthub",
			EnvPrefix:   "AGENTHUB",
			GoModule:    "github.com/agenthub-labs/agenthub",
			GitHubRepo:  "agenthub-labs/agenthub",
			CatalogFile: "agents.json",
			HistoryFile: "history.db",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "agenthub").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "AgentHub").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".agenthub").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "AGENTHUB").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path (e.g., "github.com/agenthub-labs/agenthub").
// Kept for rebrand tooling; not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string (e.g., "agenthub-labs/agenthub").
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// CatalogFile returns the default catalog document file name (e.g., "agents.json").
func CatalogFile() string { load(); return defaults.CatalogFile }

// HistoryFile returns the default search-history database file name.
func HistoryFile() string { load(); return defaults.HistoryFile }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "AGENTHUB_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
