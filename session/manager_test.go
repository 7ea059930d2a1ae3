package session

import (
	"errors"
	"fmt"
	"testing"

	"github.com/agenthub-labs/agenthub/catalog"
)

type fakeCatalog struct {
	agents map[string]catalog.Agent
	err    error
}

func (f *fakeCatalog) GetAgent(id string) (catalog.Agent, bool, error) {
	if f.err != nil {
		return catalog.Agent{}, false, f.err
	}
	a, ok := f.agents[id]
	return a, ok, nil
}

func knownAgents(ids ...string) *fakeCatalog {
	f := &fakeCatalog{agents: make(map[string]catalog.Agent)}
	for _, id := range ids {
		f.agents[id] = catalog.Agent{ID: id, Name: "Agent " + id}
	}
	return f
}

func TestCreate(t *testing.T) {
	m := NewManager(knownAgents("translator"))

	s, err := m.Create("translator")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if s.ID == "" {
		t.Error("expected a generated session id")
	}
	if s.AgentID != "translator" {
		t.Errorf("AgentID = %q, want %q", s.AgentID, "translator")
	}
	if s.Status != StatusActive {
		t.Errorf("Status = %q, want %q", s.Status, StatusActive)
	}
	if s.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}

	other, err := m.Create("translator")
	if err != nil {
		t.Fatalf("second Create: %v", err)
	}
	if other.ID == s.ID {
		t.Errorf("session ids must be unique, both were %q", s.ID)
	}
}

func TestCreate_UnknownAgent(t *testing.T) {
	m := NewManager(knownAgents("translator"))

	_, err := m.Create("ghost")
	if err == nil {
		t.Fatal("expected error for unknown agent")
	}
	want := `Failed to create session: no agent with id "ghost"`
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("expected catalog.ErrNotFound in chain, got %v", err)
	}
}

func TestCreate_CatalogFailure(t *testing.T) {
	m := NewManager(&fakeCatalog{err: errors.New("Failed to load catalog: boom")})

	_, err := m.Create("translator")
	if err == nil {
		t.Fatal("expected error when the catalog cannot be read")
	}
	want := "Failed to create session: Failed to load catalog: boom"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestGet(t *testing.T) {
	m := NewManager(knownAgents("translator"))

	s, _ := m.Create("translator")

	got, ok := m.Get(s.ID)
	if !ok {
		t.Fatalf("Get(%q) reported missing", s.ID)
	}
	if got.AgentID != "translator" {
		t.Errorf("AgentID = %q, want %q", got.AgentID, "translator")
	}

	if _, ok := m.Get("no-such-session"); ok {
		t.Error("Get of unknown id must report missing, not error")
	}
}

func TestClose(t *testing.T) {
	m := NewManager(knownAgents("translator"))
	s, _ := m.Create("translator")

	if err := m.Close(s.ID); err != nil {
		t.Fatalf("Close: %v", err)
	}
	got, _ := m.Get(s.ID)
	if got.Status != StatusClosed {
		t.Errorf("Status = %q, want %q", got.Status, StatusClosed)
	}

	// Closing again is a no-op.
	if err := m.Close(s.ID); err != nil {
		t.Errorf("second Close: %v", err)
	}

	err := m.Close("no-such-session")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Close of unknown id = %v, want ErrNotFound", err)
	}
}

func TestList_CreationOrder(t *testing.T) {
	m := NewManager(knownAgents("a", "b", "c"))

	var created []string
	for _, id := range []string{"a", "b", "c"} {
		s, err := m.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		created = append(created, s.ID)
	}

	got := m.List()
	if len(got) != len(created) {
		t.Fatalf("List returned %d sessions, want %d", len(got), len(created))
	}
	for i, s := range got {
		if s.ID != created[i] {
			t.Errorf("List[%d].ID = %q, want %q", i, s.ID, created[i])
		}
	}
}

func TestList_Empty(t *testing.T) {
	m := NewManager(knownAgents())
	if got := m.List(); len(got) != 0 {
		t.Errorf("List on fresh manager = %v, want empty", got)
	}
}

func ExampleManager_Create() {
	store := knownAgents("summarizer")
	m := NewManager(store)

	s, err := m.Create("summarizer")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s.AgentID, s.Status)
	// Output: summarizer active
}
