package elections

// PartyRegistry maps party codes to parties keeping the order in
// which each code was first registered.
type PartyRegistry struct {
	parties map[string]*Party
	codes   []string
}

// NewPartyRegistry returns an empty registry
func NewPartyRegistry() *PartyRegistry {
	return &PartyRegistry{
		parties: make(map[string]*Party),
	}
}

// Register adds m to the party named by its party code, creating the
// party on its first appearance.
func (r *PartyRegistry) Register(m *Member) *Party {
	p := r.parties[m.Party]
	if p == nil { // first seat won by this party
		p = &Party{Name: m.Party}
		r.parties[m.Party] = p
		r.codes = append(r.codes, m.Party)
	}
	p.AddMember(m)
	return p
}

// Get returns the party registered under code.
func (r *PartyRegistry) Get(code string) (*Party, bool) {
	p, ok := r.parties[code]
	return p, ok
}

// Len returns the number of registered parties
func (r *PartyRegistry) Len() int {
	return len(r.codes)
}

// Parties returns the registered parties in first appearance order.
func (r *PartyRegistry) Parties() []*Party {
	out := make([]*Party, 0, len(r.codes))
	for _, code := range r.codes {
		out = append(out, r.parties[code])
	}
	return out
}
