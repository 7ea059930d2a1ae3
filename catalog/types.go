package catalog

// Agent is one cataloged entity. ID is the primary key: globally unique
// within a catalog and immutable once created.
type Agent struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Version      string    `json:"version"`
	Description  string    `json:"description"`
	Capabilities []string  `json:"capabilities"`
	Tags         []string  `json:"tags,omitempty"`
	Endpoints    Endpoints `json:"endpoints"`
	Pricing      *Pricing  `json:"pricing,omitempty"`
}

// Endpoints holds the addresses an agent is reachable at. API is required;
// WebSocket is optional.
type Endpoints struct {
	API       string `json:"api"`
	WebSocket string `json:"websocket,omitempty"`
}

// Pricing describes an agent's pricing model and its named rate tiers.
type Pricing struct {
	Model string             `json:"model"`
	Rates map[string]float64 `json:"rates,omitempty"`
}

// Catalog is the persisted document: a single ordered sequence of agents.
// Insertion order is preserved and is the default listing order.
type Catalog struct {
	Agents []Agent `json:"agents"`
}

// AgentPatch is a partial update to one agent. A nil field leaves the
// record's attribute untouched; a set field replaces it wholesale. The id
// is deliberately absent: identity is immutable.
type AgentPatch struct {
	Name         *string    `json:"name,omitempty"`
	Version      *string    `json:"version,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Capabilities *[]string  `json:"capabilities,omitempty"`
	Tags         *[]string  `json:"tags,omitempty"`
	Endpoints    *Endpoints `json:"endpoints,omitempty"`
	Pricing      *Pricing   `json:"pricing,omitempty"`
}

// apply merges the patch over an existing record, field by field.
func (p AgentPatch) apply(a *Agent) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Version != nil {
		a.Version = *p.Version
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.Capabilities != nil {
		a.Capabilities = *p.Capabilities
	}
	if p.Tags != nil {
		a.Tags = *p.Tags
	}
	if p.Endpoints != nil {
		a.Endpoints = *p.Endpoints
	}
	if p.Pricing != nil {
		a.Pricing = p.Pricing
	}
}

// Clone returns a deep copy of the agent. Mutating the copy never affects
// the original.
func (a Agent) Clone() Agent {
	out := a
	if a.Capabilities != nil {
		out.Capabilities = make([]string, len(a.Capabilities))
		copy(out.Capabilities, a.Capabilities)
	}
	if a.Tags != nil {
		out.Tags = make([]string, len(a.Tags))
		copy(out.Tags, a.Tags)
	}
	if a.Pricing != nil {
		p := *a.Pricing
		if a.Pricing.Rates != nil {
			p.Rates = make(map[string]float64, len(a.Pricing.Rates))
			for tier, rate := range a.Pricing.Rates {
				p.Rates[tier] = rate
			}
		}
		out.Pricing = &p
	}
	return out
}
