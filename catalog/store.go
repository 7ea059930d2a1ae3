package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/agenthub-labs/agenthub/schema"
)

// Store provides validated CRUD over the catalog document at a fixed path.
// All operations are serialized behind a single mutex, so concurrent calls
// from one process never lose updates to the read-modify-write cycle.
type Store struct {
	mu        sync.Mutex
	path      string
	shapePath string // empty means the embedded default shape
	validator *schema.Validator
}

// NewStore returns a store over the catalog document at path, validated
// against the embedded default shape.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// NewStoreWithShape returns a store whose shape definition is loaded from
// shapePath instead of the embedded default.
func NewStoreWithShape(path, shapePath string) *Store {
	return &Store{path: path, shapePath: shapePath}
}

// Path returns the catalog document location.
func (s *Store) Path() string { return s.path }

// Initialize prepares the registry for use. The shape definition is
// compiled; a missing or unreadable catalog document is treated as "does
// not exist yet" and replaced with an empty one; whichever document is now
// in hand is validated against the shape. Any failure is reported as
// ErrInitFailed wrapping the cause.
func (s *Store) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureShape(); err != nil {
		return initError(err)
	}

	cat, err := s.load()
	if err != nil {
		// Absent and unreadable are the same case here: start fresh.
		cat = &Catalog{Agents: []Agent{}}
		if err := s.persist(cat); err != nil {
			return initError(err)
		}
	}

	if err := s.validate(cat); err != nil {
		return initError(err)
	}
	return nil
}

// AddAgent appends a record to the catalog. It fails with ErrDuplicateID
// when a record with the same id exists. The document is not re-validated
// against the shape on add: validation runs at initialize and update time
// only.
func (s *Store) AddAgent(a Agent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cat, err := s.load()
	if err != nil {
		return fmt.Errorf("Failed to add agent: %w", err)
	}

	for _, existing := range cat.Agents {
		if existing.ID == a.ID {
			return fmt.Errorf("Failed to add agent: %w", duplicateIDError(a.ID))
		}
	}

	cat.Agents = append(cat.Agents, a)
	if err := s.persist(cat); err != nil {
		return fmt.Errorf("Failed to add agent: %w", err)
	}
	return nil
}

// RemoveAgent deletes the record with the given id, failing with
// ErrNotFound when no such record exists.
func (s *Store) RemoveAgent(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cat, err := s.load()
	if err != nil {
		return fmt.Errorf("Failed to remove agent: %w", err)
	}

	idx := indexOf(cat.Agents, id)
	if idx < 0 {
		return fmt.Errorf("Failed to remove agent: %w", notFoundError(id))
	}

	cat.Agents = append(cat.Agents[:idx], cat.Agents[idx+1:]...)
	if err := s.persist(cat); err != nil {
		return fmt.Errorf("Failed to remove agent: %w", err)
	}
	return nil
}

// UpdateAgent merges the patch over the record with the given id, then
// re-validates the entire catalog against the shape before persisting.
// Nothing is written when validation fails.
func (s *Store) UpdateAgent(id string, patch AgentPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureShape(); err != nil {
		return fmt.Errorf("Failed to update agent: %w", err)
	}

	cat, err := s.load()
	if err != nil {
		return fmt.Errorf("Failed to update agent: %w", err)
	}

	idx := indexOf(cat.Agents, id)
	if idx < 0 {
		return fmt.Errorf("Failed to update agent: %w", notFoundError(id))
	}

	patch.apply(&cat.Agents[idx])

	if err := s.validate(cat); err != nil {
		return fmt.Errorf("Failed to update agent: %w", err)
	}
	if err := s.persist(cat); err != nil {
		return fmt.Errorf("Failed to update agent: %w", err)
	}
	return nil
}

// GetAgent returns the record with the given id. The boolean reports
// whether it exists; absence is not an error.
func (s *Store) GetAgent(id string) (Agent, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cat, err := s.load()
	if err != nil {
		return Agent{}, false, fmt.Errorf("Failed to get agent: %w", err)
	}

	if idx := indexOf(cat.Agents, id); idx >= 0 {
		return cat.Agents[idx].Clone(), true, nil
	}
	return Agent{}, false, nil
}

// ListAgents returns every record in insertion order. The result is an
// independent copy: mutating it never affects the stored catalog.
func (s *Store) ListAgents() ([]Agent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cat, err := s.load()
	if err != nil {
		return nil, fmt.Errorf("Failed to list agents: %w", err)
	}

	out := make([]Agent, len(cat.Agents))
	for i, a := range cat.Agents {
		out[i] = a.Clone()
	}
	return out, nil
}

// ensureShape compiles the shape definition once and caches it.
func (s *Store) ensureShape() error {
	if s.validator != nil {
		return nil
	}

	var (
		v   *schema.Validator
		err error
	)
	if s.shapePath != "" {
		v, err = schema.NewFromFile(s.shapePath)
	} else {
		v, err = schema.New()
	}
	if err != nil {
		return err
	}
	s.validator = v
	return nil
}

// validate encodes the catalog and checks it against the shape.
func (s *Store) validate(c *Catalog) error {
	if err := s.ensureShape(); err != nil {
		return err
	}

	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding catalog for validation: %w", err)
	}

	result, err := s.validator.Validate(data)
	if err != nil {
		return err
	}
	if !result.Valid {
		return &Error{
			Kind: ErrSchemaInvalid,
			Msg:  "catalog validation failed: " + result.Message(),
		}
	}
	return nil
}

// load reads and parses the catalog document.
func (s *Store) load() (*Catalog, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, persistenceError("load", err)
	}

	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, persistenceError("load", err)
	}
	return &cat, nil
}

// persist writes the catalog document with stable formatting so the file
// stays hand-editable.
func (s *Store) persist(c *Catalog) error {
	if c.Agents == nil {
		c.Agents = []Agent{}
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return persistenceError("save", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return persistenceError("save", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return persistenceError("save", err)
	}
	return nil
}

func initError(cause error) error {
	return &Error{
		Kind: ErrInitFailed,
		Msg:  "Failed to initialize registry: " + cause.Error(),
		Err:  cause,
	}
}

func indexOf(agents []Agent, id string) int {
	for i, a := range agents {
		if a.ID == id {
			return i
		}
	}
	return -1
}
