// Package session tracks live sessions opened against cataloged agents.
// Sessions are per-process bookkeeping for embedding hosts; nothing here
// is persisted.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/agenthub-labs/agenthub/catalog"
	"github.com/google/uuid"
)

// Status values a session moves through.
const (
	StatusActive = "active"
	StatusClosed = "closed"
)

// ErrNotFound is returned when an operation targets an unknown session id.
var ErrNotFound = errors.New("session not found")

// Getter resolves agent ids against the catalog. *catalog.Store
// satisfies it.
type Getter interface {
	GetAgent(id string) (catalog.Agent, bool, error)
}

// Session is one live ticket against an agent.
type Session struct {
	ID        string    `json:"id"`
	AgentID   string    `json:"agent_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Manager hands out sessions for agents that exist in the catalog.
type Manager struct {
	mu       sync.Mutex
	agents   Getter
	sessions map[string]Session
	order    []string // creation order, for List
}

// NewManager returns an empty manager over the given catalog.
func NewManager(agents Getter) *Manager {
	return &Manager{
		agents:   agents,
		sessions: make(map[string]Session),
	}
}

// Create opens an active session against the agent with the given id. The
// agent must exist in the catalog.
func (m *Manager) Create(agentID string) (Session, error) {
	// Resolve the agent outside our own lock; the catalog serializes
	// itself.
	_, found, err := m.agents.GetAgent(agentID)
	if err != nil {
		return Session{}, fmt.Errorf("Failed to create session: %w", err)
	}
	if !found {
		return Session{}, fmt.Errorf("Failed to create session: %w", &catalog.Error{
			Kind: catalog.ErrNotFound,
			Msg:  fmt.Sprintf("no agent with id %q", agentID),
		})
	}

	s := Session{
		ID:        uuid.NewString(),
		AgentID:   agentID,
		Status:    StatusActive,
		CreatedAt: time.Now().UTC(),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.order = append(m.order, s.ID)
	m.mu.Unlock()

	return s, nil
}

// Get returns the session with the given id. The boolean reports whether
// it exists.
func (m *Manager) Get(id string) (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Close marks a session closed. Closing an already-closed session is a
// no-op; an unknown id fails with ErrNotFound.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return fmt.Errorf("Failed to close session: %w", ErrNotFound)
	}
	s.Status = StatusClosed
	m.sessions[id] = s
	return nil
}

// List returns all sessions in creation order.
func (m *Manager) List() []Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Session, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.sessions[id])
	}
	return out
}
