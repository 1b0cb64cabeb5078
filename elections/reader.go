package elections

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"golang.org/x/text/encoding/charmap"
)

const (
	preambleLines = 2                 // lines before the header row
	headerLines   = preambleLines + 1 // lines consumed before the first data row
)

// columns read for every row besides the party vote columns
const (
	firstNameColumn    = "Member first name"
	surnameColumn      = "Member surname"
	genderColumn       = "Member gender"
	constituencyColumn = "Constituency name"
	regionColumn       = "Region name"
	countryColumn      = "Country name"
)

var memberColumns = []string{
	firstNameColumn,
	surnameColumn,
	genderColumn,
	constituencyColumn,
	regionColumn,
	countryColumn,
}

// memberRow is the part of a results row decoded with gocsv
type memberRow struct {
	FirstName    string `csv:"Member first name"`
	Surname      string `csv:"Member surname"`
	Gender       string `csv:"Member gender"`
	Constituency string `csv:"Constituency name"`
	Region       string `csv:"Region name"`
	Country      string `csv:"Country name"`
}

// resultsReader reads the results file. The source is decoded as
// ISO 8859-1 (latin 1) since names may carry legacy encoded characters.
type resultsReader struct {
	header []string
	index  map[string]int
	csv    *csv.Reader
}

func newResultsReader(in io.Reader) (*resultsReader, error) {
	buf := bufio.NewReader(charmap.ISO8859_1.NewDecoder().Reader(in))
	for i := 0; i < preambleLines; i++ {
		if _, err := buf.ReadString('\n'); err != nil {
			if err == io.EOF {
				return nil, errMissingHeader
			}
			return nil, fmt.Errorf("failed to read preamble line %d, error %w", i+1, err)
		}
	}
	line, err := buf.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read header row, error %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, errMissingHeader
	}
	header := strings.Split(line, ",")
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i // last column wins on duplicated names, as gocsv decodes them
	}
	r := csv.NewReader(buf)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	return &resultsReader{
		header: header,
		index:  index,
		csv:    r,
	}, nil
}

// next returns the next data row and its line on the source file. A
// *csv.ParseError is returned for rows the csv reader could not split,
// reading can go on after it.
func (r *resultsReader) next() ([]string, int, error) {
	record, err := r.csv.Read()
	if err != nil {
		if pe, ok := err.(*csv.ParseError); ok {
			pe.StartLine += headerLines
			pe.Line += headerLines
			return nil, pe.StartLine, pe
		}
		return nil, 0, err
	}
	line, _ := r.csv.FieldPos(0)
	return record, line + headerLines, nil
}

// cell returns the value of column on record. ok is false when the
// column is not on the header, err is set when the header has the
// column but the record is too short to hold it.
func (r *resultsReader) cell(record []string, column string) (value string, ok bool, err error) {
	i, ok := r.index[column]
	if !ok {
		return "", false, nil
	}
	if i >= len(record) {
		return "", true, fmt.Errorf("missing value for column %q", column)
	}
	return record[i], true, nil
}

// decodeMember decodes the member and constituency columns of record.
func (r *resultsReader) decodeMember(record []string) (*memberRow, error) {
	for _, column := range memberColumns {
		_, ok, err := r.cell(record, column)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("missing column %q", column)
		}
	}
	row := make([]string, len(r.header))
	copy(row, record)
	var rows []*memberRow
	if err := gocsv.UnmarshalCSV(&singleRowReader{rows: [][]string{r.header, row}}, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode member columns, error %w", err)
	}
	if len(rows) != 1 {
		return nil, fmt.Errorf("expected one decoded row, got %d", len(rows))
	}
	return rows[0], nil
}

// singleRowReader feeds gocsv with a header and one record
type singleRowReader struct {
	rows [][]string
}

func (s *singleRowReader) Read() ([]string, error) {
	if len(s.rows) == 0 {
		return nil, io.EOF
	}
	row := s.rows[0]
	s.rows = s.rows[1:]
	return row, nil
}

func (s *singleRowReader) ReadAll() ([][]string, error) {
	rows := s.rows
	s.rows = nil
	return rows, nil
}
