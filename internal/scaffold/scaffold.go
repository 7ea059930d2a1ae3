// Package scaffold generates starter agent manifests from an embedded
// template. It powers the "agenthub create" command, producing a manifest
// skeleton that `agenthub add` accepts once the author fills in the real
// endpoint.
package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"text/template"

	"github.com/agenthub-labs/agenthub/internal/manifest"
)

//go:embed templates/manifest.yaml.tmpl
var templateFS embed.FS

// ManifestData holds the template variables for a generated manifest.
type ManifestData struct {
	ID           string
	Name         string
	Version      string
	Description  string
	Capabilities []string
	Tags         []string
	API          string
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	Path     string
	Warnings []string
}

// NewManifestData creates a ManifestData with derived defaults populated.
func NewManifestData(id string) *ManifestData {
	return &ManifestData{
		ID:           id,
		Name:         id,
		Version:      "0.1.0",
		Description:  fmt.Sprintf("AgentHub agent: %s", id),
		Capabilities: []string{"chat"},
		API:          fmt.Sprintf("https://agents.example.com/%s", id),
	}
}

// Generate renders the manifest template and writes it to outputPath. An
// existing file is never overwritten. The rendered manifest is parsed back
// before writing, so a generated file is always one `add` can read.
func Generate(data *ManifestData, outputPath string) (*Result, error) {
	if _, err := os.Stat(outputPath); err == nil {
		return nil, fmt.Errorf("%s already exists; remove it first", outputPath)
	}

	tmplBytes, err := templateFS.ReadFile("templates/manifest.yaml.tmpl")
	if err != nil {
		return nil, fmt.Errorf("reading manifest template: %w", err)
	}

	tmpl, err := template.New("manifest").Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing manifest template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing manifest template: %w", err)
	}

	if _, err := manifest.Parse(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("generated manifest does not parse: %w", err)
	}

	result := &Result{Path: outputPath}
	if err := manifest.CheckVersion(data.Version); err != nil {
		result.Warnings = append(result.Warnings, err.Error())
	}

	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", outputPath, err)
	}

	return result, nil
}
