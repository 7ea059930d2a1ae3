// Package schema validates catalog documents against a declared shape.
//
// The shape is a JSON Schema (draft 2020-12) describing the whole catalog
// document, not individual agent records. The default shape ships embedded
// in the binary; deployments may point at an alternate shape file instead.
// Validation is pure: it never mutates its input and reports all violations
// it finds rather than stopping at the first.
package schema

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed catalog.schema.json
var defaultShape []byte

var printer = message.NewPrinter(language.English)

// Validator holds a compiled shape definition. A Validator is immutable
// after construction and safe for concurrent use.
type Validator struct {
	schema *jsonschema.Schema
}

// Result contains the outcome of validating one document.
type Result struct {
	Valid      bool
	Violations []Violation
}

// Violation describes a single schema violation.
type Violation struct {
	Path    string // Instance location (e.g., "/agents/0/name")
	Message string // Human-readable error message
	Keyword string // Schema keyword that failed (e.g., "required", "pattern")
}

// Message joins all violation descriptions, comma-separated, in
// validator-reported order. This is the text callers embed in errors.
func (r *Result) Message() string {
	parts := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		if v.Path != "" {
			parts = append(parts, v.Path+": "+v.Message)
			continue
		}
		parts = append(parts, v.Message)
	}
	return strings.Join(parts, ", ")
}

// New compiles the embedded default catalog shape.
func New() (*Validator, error) {
	return compile("catalog.schema.json", defaultShape)
}

// NewFromFile loads and compiles a shape definition from disk. This is how
// deployments substitute the broader published schema (or any variant) for
// the embedded default.
func NewFromFile(path string) (*Validator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading shape definition %s: %w", path, err)
	}
	return compile(filepath.Base(path), data)
}

func compile(name string, data []byte) (*Validator, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unmarshaling schema JSON: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}
	compiled, err := c.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}
	return &Validator{schema: compiled}, nil
}

// Validate checks raw catalog document bytes against the shape.
// The error return is for undecodable input or unexpected validator
// failures; shape violations are reported in the Result.
func (v *Validator) Validate(doc []byte) (*Result, error) {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	err = v.schema.Validate(inst)
	if err == nil {
		return &Result{Valid: true}, nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	return &Result{
		Valid:      false,
		Violations: extractViolations(validationErr),
	}, nil
}

// extractViolations walks the ValidationError tree and returns leaf-level
// violations. Container keywords ($ref, allOf, oneOf) produce many
// overlapping errors, so leaves are collected and deduplicated.
func extractViolations(ve *jsonschema.ValidationError) []Violation {
	var violations []Violation
	collectViolations(ve, &violations)

	if len(violations) == 0 {
		return []Violation{{
			Message: ve.Error(),
		}}
	}
	return deduplicate(violations)
}

// collectViolations recursively walks the error tree to find leaf errors
// with specific property information.
func collectViolations(ve *jsonschema.ValidationError, violations *[]Violation) {
	if len(ve.Causes) == 0 {
		path := "/" + strings.Join(ve.InstanceLocation, "/")
		if len(ve.InstanceLocation) == 0 {
			path = ""
		}

		keyword := ""
		if ve.ErrorKind != nil {
			kwPath := ve.ErrorKind.KeywordPath()
			if len(kwPath) > 0 {
				keyword = kwPath[len(kwPath)-1]
			}
		}

		msg := ""
		if ve.ErrorKind != nil {
			msg = ve.ErrorKind.LocalizedString(printer)
		}

		// Skip generic container errors that aren't informative.
		if keyword == "oneOf" || keyword == "allOf" || keyword == "$ref" || keyword == "" {
			return
		}

		*violations = append(*violations, Violation{
			Path:    path,
			Message: msg,
			Keyword: keyword,
		})
		return
	}

	for _, cause := range ve.Causes {
		collectViolations(cause, violations)
	}
}

// deduplicate removes repeated violations (same path + keyword + message).
func deduplicate(violations []Violation) []Violation {
	seen := make(map[string]bool)
	var result []Violation
	for _, v := range violations {
		key := v.Path + "|" + v.Keyword + "|" + v.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, v)
		}
	}
	return result
}
