package elections

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cheggaaa/pb/v3"
)

// DefaultPartyCodes returns the vote columns of the results file, in the
// order they are checked when resolving the winner of a seat.
func DefaultPartyCodes() []string {
	return []string{"Con", "Lab", "Lib Dem", "Green", "SNP", "PC", "DUP", "SF", "SDLP", "UUP", "APNI"}
}

// Dataset is the in-memory model built from a results file. It is
// read-only once Load returns.
type Dataset struct {
	Constituencies []*Constituency
	Parties        *PartyRegistry
	Diagnostics    []*RowError // rows skipped because they could not be processed
}

type loadOptions struct {
	progress io.Writer
	size     int64
}

// LoadOption customizes Load and LoadFile
type LoadOption func(*loadOptions)

// WithProgress renders a progress bar of the bytes read on w.
func WithProgress(w io.Writer) LoadOption {
	return func(o *loadOptions) {
		o.progress = w
	}
}

func withSize(size int64) LoadOption {
	return func(o *loadOptions) {
		o.size = size
	}
}

// LoadFile opens the results file at path and loads it with Load.
func LoadFile(path string, partyCodes []string, opts ...LoadOption) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open results file [%s], error %w", path, err)
	}
	defer f.Close()
	if info, err := f.Stat(); err == nil {
		opts = append(opts, withSize(info.Size()))
	}
	ds, err := Load(f, partyCodes, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load results file [%s], error %w", path, err)
	}
	return ds, nil
}

// Load reads a results file and builds its constituencies and parties.
// The first two lines of the source are discarded and the third one
// names the columns of every following row. The winner of each row is
// the party code, taken from partyCodes, whose column holds the highest
// vote count. Rows without any positive vote count are skipped, rows
// that cannot be processed are reported on Dataset.Diagnostics. Only
// failing to read the source makes Load return an error.
func Load(in io.Reader, partyCodes []string, opts ...LoadOption) (*Dataset, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.progress != nil {
		bar := pb.New64(o.size).SetTemplate(pb.Full).SetWriter(o.progress).Start()
		defer bar.Finish()
		in = bar.NewProxyReader(in)
	}
	r, err := newResultsReader(in)
	if err != nil {
		return nil, err
	}
	ds := &Dataset{
		Parties: NewPartyRegistry(),
	}
	for {
		record, line, err := r.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			if pe, ok := err.(*csv.ParseError); ok {
				ds.Diagnostics = append(ds.Diagnostics, &RowError{Line: line, Err: pe.Err})
				continue
			}
			return nil, fmt.Errorf("failed to read results row, error %w", err)
		}
		if rowErr := ds.add(r, record, line, partyCodes); rowErr != nil {
			ds.Diagnostics = append(ds.Diagnostics, rowErr)
		}
	}
	return ds, nil
}

// add builds the member and constituency of record. Rows without a
// winner are left out and are not an error.
func (ds *Dataset) add(r *resultsReader, record []string, line int, partyCodes []string) *RowError {
	row, err := r.decodeMember(record)
	if err != nil {
		return &RowError{Line: line, Err: err}
	}
	party, votes, err := r.resolveWinner(record, partyCodes)
	if err != nil {
		return &RowError{Line: line, Err: err}
	}
	if party == "" {
		return nil
	}
	m := NewMember(row.FirstName, row.Surname, row.Gender, party, votes)
	ds.Parties.Register(m)
	ds.Constituencies = append(ds.Constituencies, &Constituency{
		Name:    row.Constituency,
		Region:  row.Region,
		Country: row.Country,
		Member:  m,
	})
	return nil
}

// resolveWinner returns the party code whose column holds the highest
// vote count on record, and that count. Ties keep the code listed first
// on partyCodes. The code is empty when no column holds a count above zero.
func (r *resultsReader) resolveWinner(record []string, partyCodes []string) (string, int, error) {
	winner, max := "", 0
	for _, code := range partyCodes {
		value, _, err := r.cell(record, code)
		if err != nil {
			return "", 0, err
		}
		votes, ok, err := parseVotes(value)
		if err != nil {
			return "", 0, fmt.Errorf("invalid vote count %q for party %q, error %w", value, code, err)
		}
		if ok && votes > max {
			winner, max = code, votes
		}
	}
	return winner, max, nil
}

// parseVotes reads a vote count cell. Thousands separators are ignored
// and ok is false when what is left is not made of decimal digits only.
func parseVotes(cell string) (votes int, ok bool, err error) {
	v := strings.ReplaceAll(cell, ",", "")
	if v == "" {
		return 0, false, nil
	}
	for _, c := range v {
		if c < '0' || c > '9' {
			return 0, false, nil
		}
	}
	votes, err = strconv.Atoi(v)
	if err != nil {
		return 0, false, err
	}
	return votes, true, nil
}
