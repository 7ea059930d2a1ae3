package manifest

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/agenthub-labs/agenthub/catalog"
)

const yamlManifest = `
id: translator
name: Translator
version: 1.2.0
description: Translates text between languages
capabilities:
  - translate
  - detect-language
tags:
  - nlp
endpoints:
  api: https://agents.example.com/translator
  websocket: wss://agents.example.com/translator
pricing:
  model: per-request
  rates:
    request: 0.002
`

const jsonManifest = `{
  "id": "translator",
  "name": "Translator",
  "version": "1.2.0",
  "description": "Translates text between languages",
  "capabilities": ["translate", "detect-language"],
  "tags": ["nlp"],
  "endpoints": {
    "api": "https://agents.example.com/translator",
    "websocket": "wss://agents.example.com/translator"
  },
  "pricing": {
    "model": "per-request",
    "rates": {"request": 0.002}
  }
}`

func wantTranslator() catalog.Agent {
	return catalog.Agent{
		ID:           "translator",
		Name:         "Translator",
		Version:      "1.2.0",
		Description:  "Translates text between languages",
		Capabilities: []string{"translate", "detect-language"},
		Tags:         []string{"nlp"},
		Endpoints: catalog.Endpoints{
			API:       "https://agents.example.com/translator",
			WebSocket: "wss://agents.example.com/translator",
		},
		Pricing: &catalog.Pricing{
			Model: "per-request",
			Rates: map[string]float64{"request": 0.002},
		},
	}
}

func TestParse_YAML(t *testing.T) {
	agent, err := Parse([]byte(yamlManifest))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !reflect.DeepEqual(agent, wantTranslator()) {
		t.Errorf("Parse = %+v, want %+v", agent, wantTranslator())
	}
}

func TestParse_JSONIsYAMLSubset(t *testing.T) {
	fromJSON, err := Parse([]byte(jsonManifest))
	if err != nil {
		t.Fatalf("Parse JSON: %v", err)
	}
	fromYAML, err := Parse([]byte(yamlManifest))
	if err != nil {
		t.Fatalf("Parse YAML: %v", err)
	}
	if !reflect.DeepEqual(fromJSON, fromYAML) {
		t.Errorf("JSON and YAML manifests decoded differently:\n%+v\n%+v", fromJSON, fromYAML)
	}
}

func TestParse_RequiredFields(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		wantErr  string
	}{
		{
			name:     "missing id",
			manifest: "name: Translator\nversion: 1.0.0\n",
			wantErr:  "'id'",
		},
		{
			name:     "missing name",
			manifest: "id: translator\nversion: 1.0.0\n",
			wantErr:  "'name'",
		},
		{
			name:     "not yaml at all",
			manifest: "{\"id\": \"translator\"",
			wantErr:  "parsing manifest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.manifest))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestParse_OptionalFieldsOmitted(t *testing.T) {
	minimal := "id: echo\nname: Echo\nversion: 0.1.0\ncapabilities: [echo]\nendpoints:\n  api: https://example.com\n"

	agent, err := Parse([]byte(minimal))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if agent.Tags != nil {
		t.Errorf("Tags = %v, want nil", agent.Tags)
	}
	if agent.Pricing != nil {
		t.Errorf("Pricing = %+v, want nil", agent.Pricing)
	}
	if agent.Endpoints.WebSocket != "" {
		t.Errorf("WebSocket = %q, want empty", agent.Endpoints.WebSocket)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "translator.yaml")
	if err := os.WriteFile(path, []byte(yamlManifest), 0644); err != nil {
		t.Fatal(err)
	}

	agent, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if agent.ID != "translator" {
		t.Errorf("ID = %q, want %q", agent.ID, "translator")
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "reading manifest") {
		t.Errorf("error = %q, want a reading manifest error", err.Error())
	}
}

func TestParseFile_BadManifestNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("name: No ID\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ParseFile(path)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error = %q, want it to name %q", err.Error(), path)
	}
}
