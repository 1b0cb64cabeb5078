package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/candidatos-info/votingstats/elections"
)

// WriteStatistics writes the party statistics followed by the
// constituency summary of ds on w.
func WriteStatistics(w io.Writer, ds *elections.Dataset) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Party Statistics:")
	for _, s := range ds.PartyTotals() {
		fmt.Fprintln(bw, FormatShare(s))
	}
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Constituency Summary:")
	for _, c := range ds.Constituencies {
		fmt.Fprintf(bw, "%s - %s (%s) - %d votes\n", c.Name, c.Member.Name, c.Member.Party, c.Member.Votes)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write statistics, error %w", err)
	}
	return nil
}

// FormatShare formats a party total as "<code>: <votes> votes (<percentage>%)".
func FormatShare(s elections.PartyShare) string {
	return fmt.Sprintf("%s: %d votes (%.2f%%)", s.Code, s.Votes, s.Percentage)
}
