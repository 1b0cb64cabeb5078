package elections

import "strings"

// PartyShare is the vote total of a party and its share of all votes
type PartyShare struct {
	Code       string
	Votes      int
	Percentage float64
}

// SearchByName returns the constituencies whose member name contains
// query, ignoring case.
func (ds *Dataset) SearchByName(query string) []*Constituency {
	q := strings.ToLower(query)
	var found []*Constituency
	for _, c := range ds.Constituencies {
		if strings.Contains(strings.ToLower(c.Member.Name), q) {
			found = append(found, c)
		}
	}
	return found
}

// LookupParty returns the party registered under the exact code.
func (ds *Dataset) LookupParty(code string) (*Party, bool) {
	return ds.Parties.Get(code)
}

// SearchConstituency returns the constituencies whose name contains
// query, ignoring case. ErrConstituencyNotFound is returned when none does.
func (ds *Dataset) SearchConstituency(query string) ([]*Constituency, error) {
	q := strings.ToLower(query)
	var found []*Constituency
	for _, c := range ds.Constituencies {
		if strings.Contains(strings.ToLower(c.Name), q) {
			found = append(found, c)
		}
	}
	if len(found) == 0 {
		return nil, ErrConstituencyNotFound
	}
	return found, nil
}

// TotalVotes is the sum of the vote totals of every party
func (ds *Dataset) TotalVotes() int {
	total := 0
	for _, p := range ds.Parties.Parties() {
		total += p.TotalVotes
	}
	return total
}

// PartyTotals returns each party total and percentage of all votes, in
// the order parties first won a seat. Percentages are zero when no
// votes were counted.
func (ds *Dataset) PartyTotals() []PartyShare {
	total := ds.TotalVotes()
	parties := ds.Parties.Parties()
	shares := make([]PartyShare, 0, len(parties))
	for _, p := range parties {
		s := PartyShare{
			Code:  p.Name,
			Votes: p.TotalVotes,
		}
		if total > 0 {
			s.Percentage = float64(p.TotalVotes) / float64(total) * 100
		}
		shares = append(shares, s)
	}
	return shares
}
