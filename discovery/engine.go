package discovery

import (
	"fmt"
	"strings"

	"github.com/agenthub-labs/agenthub/catalog"
	"github.com/agenthub-labs/agenthub/ratelimit"
)

// Defaults applied when a query omits pagination values.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Lister supplies the full record list a search filters over.
// *catalog.Store satisfies it.
type Lister interface {
	ListAgents() ([]catalog.Agent, error)
}

// Query is one ephemeral search request.
type Query struct {
	Text       string   `json:"query,omitempty"`      // case-insensitive substring against Name
	Categories []string `json:"categories,omitempty"` // OR-matched against Capabilities, exact
	Tags       []string `json:"tags,omitempty"`       // OR-matched against Tags, exact
	Page       int      `json:"page,omitempty"`       // 1-based; < 1 means default
	Limit      int      `json:"limit,omitempty"`      // page size; < 1 means default
}

// Result is one page of matching records. Total counts the filtered set,
// not the whole catalog.
type Result struct {
	Items   []catalog.Agent `json:"items"`
	Total   int             `json:"total"`
	Page    int             `json:"page"`
	Limit   int             `json:"limit"`
	HasMore bool            `json:"hasMore"`
}

// SchemaFilter names a capability schema for FilterBySchema.
type SchemaFilter struct {
	Schema string `json:"schema"`
}

// Engine serves rate-limited search requests over a catalog. Each engine
// owns its limiter state; nothing here is process-global.
type Engine struct {
	agents  Lister
	limiter *ratelimit.Limiter
}

// NewEngine returns an engine over the given catalog with a fresh
// admission window.
func NewEngine(agents Lister, cfg ratelimit.Config) *Engine {
	return &Engine{
		agents:  agents,
		limiter: ratelimit.New(cfg),
	}
}

// Search runs the filter chain over the full catalog and returns one page
// of results. Admission is checked first: a denied request performs no
// catalog read at all.
func (e *Engine) Search(q Query) (*Result, error) {
	if !e.limiter.Allow() {
		return nil, fmt.Errorf("Failed to search agents: %w", ratelimit.ErrLimitExceeded)
	}

	all, err := e.agents.ListAgents()
	if err != nil {
		return nil, fmt.Errorf("Failed to search agents: %w", err)
	}

	filtered := make([]catalog.Agent, 0, len(all))
	for _, a := range all {
		if matches(a, q) {
			filtered = append(filtered, a)
		}
	}

	page := q.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := q.Limit
	if limit < 1 {
		limit = DefaultLimit
	}

	// An out-of-range page is not an error: it yields an empty page.
	start := (page - 1) * limit
	end := start + limit
	items := []catalog.Agent{}
	if start < len(filtered) {
		stop := end
		if stop > len(filtered) {
			stop = len(filtered)
		}
		items = filtered[start:stop]
	}

	return &Result{
		Items:   items,
		Total:   len(filtered),
		Page:    page,
		Limit:   limit,
		HasMore: end < len(filtered),
	}, nil
}

// FilterBySchema narrows a record list by capability schema. Schema-based
// filtering is not implemented; the input comes back unchanged, so callers
// can already code against the signature.
func (e *Engine) FilterBySchema(agents []catalog.Agent, _ SchemaFilter) []catalog.Agent {
	return agents
}

// RateLimitInfo reports the engine's current admission budget.
func (e *Engine) RateLimitInfo() ratelimit.Info {
	return e.limiter.Info()
}

// matches reports whether the record passes every filter dimension of the
// query. Dimensions AND together; the values within one dimension OR. An
// absent dimension always passes.
func matches(a catalog.Agent, q Query) bool {
	if q.Text != "" {
		name := strings.ToLower(a.Name)
		if !strings.Contains(name, strings.ToLower(q.Text)) {
			return false
		}
	}

	if len(q.Categories) > 0 {
		if !matchesAny(a.Capabilities, q.Categories) {
			return false
		}
	}

	if len(q.Tags) > 0 {
		// Records with no tags never match a tag filter.
		if len(a.Tags) == 0 || !matchesAny(a.Tags, q.Tags) {
			return false
		}
	}

	return true
}

// matchesAny reports whether any record value exactly equals any requested
// value.
func matchesAny(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}
