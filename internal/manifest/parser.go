package manifest

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/agenthub-labs/agenthub/catalog"
)

// Manifest is the on-disk description of a single agent. Field names match
// the catalog document, so a manifest can be authored by copying an entry
// out of agents.json.
type Manifest struct {
	ID           string            `yaml:"id"`
	Name         string            `yaml:"name"`
	Version      string            `yaml:"version"`
	Description  string            `yaml:"description"`
	Capabilities []string          `yaml:"capabilities"`
	Tags         []string          `yaml:"tags,omitempty"`
	Endpoints    catalog.Endpoints `yaml:"endpoints"`
	Pricing      *catalog.Pricing  `yaml:"pricing,omitempty"`
}

// Agent converts the manifest into its catalog record.
func (m Manifest) Agent() catalog.Agent {
	return catalog.Agent{
		ID:           m.ID,
		Name:         m.Name,
		Version:      m.Version,
		Description:  m.Description,
		Capabilities: m.Capabilities,
		Tags:         m.Tags,
		Endpoints:    m.Endpoints,
		Pricing:      m.Pricing,
	}
}

// Parse decodes manifest bytes into an agent record. YAML is the canonical
// format; JSON manifests parse too since JSON is a YAML subset. The id and
// name fields are required here so a broken manifest fails before it ever
// reaches the catalog.
func Parse(data []byte) (catalog.Agent, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return catalog.Agent{}, fmt.Errorf("parsing manifest: %w", err)
	}
	if m.ID == "" {
		return catalog.Agent{}, fmt.Errorf("manifest missing required 'id' field")
	}
	if m.Name == "" {
		return catalog.Agent{}, fmt.Errorf("manifest missing required 'name' field")
	}
	return m.Agent(), nil
}

// ParseFile reads and decodes the manifest at the given path.
func ParseFile(path string) (catalog.Agent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return catalog.Agent{}, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	agent, err := Parse(data)
	if err != nil {
		return catalog.Agent{}, fmt.Errorf("manifest %s: %w", path, err)
	}
	return agent, nil
}
