// Package menu implements the interactive text menu over a loaded
// elections.Dataset.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/candidatos-info/votingstats/elections"
	"github.com/candidatos-info/votingstats/report"
)

// Saver persists the reports of a dataset
type Saver interface {
	SaveStatistics(ds *elections.Dataset) (string, error)
	ExportResults(ds *elections.Dataset) ([]string, error)
}

// Menu reads choices from its input and answers on its output
type Menu struct {
	ds    *elections.Dataset
	saver Saver
	in    *bufio.Scanner
	out   io.Writer
}

// New returns a menu over ds. saver is used by the save and export options.
func New(ds *elections.Dataset, saver Saver, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		ds:    ds,
		saver: saver,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// Run shows the menu until the exit option is chosen or the input ends.
// Failing queries and saves are reported on the output and never stop
// the loop. The returned error is the one of reading the input, if any.
func (m *Menu) Run() error {
	for {
		m.printOptions()
		choice, ok := m.prompt("Enter your choice: ")
		if !ok {
			return m.in.Err()
		}
		option, err := parseOption(choice)
		if err != nil {
			fmt.Fprintln(m.out, "Invalid input.")
			continue
		}
		if option == Exit {
			return nil
		}
		if !m.handle(option) {
			return m.in.Err()
		}
	}
}

func parseOption(choice string) (Option, error) {
	n, err := strconv.Atoi(choice)
	if err != nil {
		return 0, err
	}
	option := Option(n)
	if Text(option) == "" || strconv.Itoa(n) != choice { // rejects +4, 04 and -0
		return 0, fmt.Errorf("unknown option %q", choice)
	}
	return option, nil
}

func (m *Menu) printOptions() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "--- Voting Analysis Menu ---")
	for _, o := range displayOrder {
		fmt.Fprintf(m.out, "%d. %s\n", o, Text(o))
	}
}

// prompt writes message and reads a line. ok is false when the input is over.
func (m *Menu) prompt(message string) (string, bool) {
	fmt.Fprint(m.out, message)
	if !m.in.Scan() {
		fmt.Fprintln(m.out)
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// handle runs option, it returns false when the input ended while
// reading the option arguments.
func (m *Menu) handle(option Option) bool {
	switch option {
	case SearchName:
		name, ok := m.prompt("Enter candidate name: ")
		if !ok {
			return false
		}
		m.searchName(name)
	case SearchParty:
		code, ok := m.prompt("Enter party name (e.g., Lab): ")
		if !ok {
			return false
		}
		m.searchParty(code)
	case SearchConstituency:
		seat, ok := m.prompt("Enter constituency name: ")
		if !ok {
			return false
		}
		m.searchConstituency(seat)
	case ShowTotals:
		for _, s := range m.ds.PartyTotals() {
			fmt.Fprintln(m.out, report.FormatShare(s))
		}
	case SaveStatistics:
		location, err := m.saver.SaveStatistics(m.ds)
		if err != nil {
			fmt.Fprintf(m.out, "Error writing file: %v\n", err)
			return true
		}
		fmt.Fprintf(m.out, "Statistics saved to %s.\n", location)
	case ExportResults:
		locations, err := m.saver.ExportResults(m.ds)
		for _, l := range locations {
			fmt.Fprintf(m.out, "Results exported to %s.\n", l)
		}
		if err != nil {
			fmt.Fprintf(m.out, "Error writing file: %v\n", err)
		}
	}
	return true
}

func (m *Menu) searchName(name string) {
	found := m.ds.SearchByName(name)
	if len(found) == 0 {
		fmt.Fprintln(m.out, "Candidate not found.")
		return
	}
	for _, c := range found {
		fmt.Fprintf(m.out, "%s (%s) - %s (%d votes)\n", c.Member.Name, c.Member.Party, c.Name, c.Member.Votes)
	}
}

func (m *Menu) searchParty(code string) {
	p, ok := m.ds.LookupParty(code)
	if !ok {
		fmt.Fprintln(m.out, "Party not found.")
		return
	}
	fmt.Fprintf(m.out, "%s - Total Votes: %d, MPs: %d\n", code, p.TotalVotes, len(p.Members))
}

func (m *Menu) searchConstituency(seat string) {
	found, err := m.ds.SearchConstituency(seat)
	if errors.Is(err, elections.ErrConstituencyNotFound) {
		fmt.Fprintln(m.out, "Constituency not found.")
		return
	}
	for _, c := range found {
		fmt.Fprintf(m.out, "%s - MP: %s (%s), Votes: %d\n", c.Name, c.Member.Name, c.Member.Party, c.Member.Votes)
	}
}
