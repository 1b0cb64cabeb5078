package elections

// Member is the winner of a constituency seat
type Member struct {
	Name   string // first name and surname joined by a single space
	Gender string
	Party  string // code of the winning party column
	Votes  int
}

// NewMember returns a member whose name is built from the
// first name and surname columns of the results file.
func NewMember(firstName, surname, gender, party string, votes int) *Member {
	return &Member{
		Name:   firstName + " " + surname,
		Gender: gender,
		Party:  party,
		Votes:  votes,
	}
}

// Party accumulates the members that won a seat for it
type Party struct {
	Name       string
	TotalVotes int
	Members    []*Member
}

// AddMember appends m to the party and adds its votes to the party total.
func (p *Party) AddMember(m *Member) {
	p.Members = append(p.Members, m)
	p.TotalVotes += m.Votes
}

// Constituency is an electoral district and the member who won it
type Constituency struct {
	Name    string
	Region  string
	Country string
	Member  *Member
}
