package report

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"

	"github.com/candidatos-info/votingstats/elections"
)

const (
	constituenciesSheet = "Constituencies"
	partiesSheet        = "Parties"
)

// ConstituencyResult is a row of the results spreadsheet
type ConstituencyResult struct {
	Constituency string `csv:"constituency"`
	Region       string `csv:"region"`
	Country      string `csv:"country"`
	Member       string `csv:"member"`
	Gender       string `csv:"gender"`
	Party        string `csv:"party"`
	Votes        int    `csv:"votes"`
}

// Results returns one row per constituency of ds, in load order.
func Results(ds *elections.Dataset) []*ConstituencyResult {
	results := make([]*ConstituencyResult, 0, len(ds.Constituencies))
	for _, c := range ds.Constituencies {
		results = append(results, &ConstituencyResult{
			Constituency: c.Name,
			Region:       c.Region,
			Country:      c.Country,
			Member:       c.Member.Name,
			Gender:       c.Member.Gender,
			Party:        c.Member.Party,
			Votes:        c.Member.Votes,
		})
	}
	return results
}

// WriteResultsCSV writes the constituency results of ds as csv.
func WriteResultsCSV(w io.Writer, ds *elections.Dataset) error {
	if err := gocsv.Marshal(Results(ds), w); err != nil {
		return fmt.Errorf("failed to write results csv, error %w", err)
	}
	return nil
}

// WriteResultsXLSX writes a workbook with the constituency results of ds
// and a sheet with the party totals.
func WriteResultsXLSX(w io.Writer, ds *elections.Dataset) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", constituenciesSheet); err != nil {
		return fmt.Errorf("failed to name sheet [%s], error %w", constituenciesSheet, err)
	}
	header := []interface{}{"constituency", "region", "country", "member", "gender", "party", "votes"}
	if err := setRow(f, constituenciesSheet, 1, header); err != nil {
		return err
	}
	for i, r := range Results(ds) {
		row := []interface{}{r.Constituency, r.Region, r.Country, r.Member, r.Gender, r.Party, r.Votes}
		if err := setRow(f, constituenciesSheet, i+2, row); err != nil {
			return err
		}
	}
	if _, err := f.NewSheet(partiesSheet); err != nil {
		return fmt.Errorf("failed to create sheet [%s], error %w", partiesSheet, err)
	}
	if err := setRow(f, partiesSheet, 1, []interface{}{"party", "votes", "percentage", "seats"}); err != nil {
		return err
	}
	for i, s := range ds.PartyTotals() {
		seats := 0
		if p, ok := ds.LookupParty(s.Code); ok {
			seats = len(p.Members)
		}
		if err := setRow(f, partiesSheet, i+2, []interface{}{s.Code, s.Votes, s.Percentage, seats}); err != nil {
			return err
		}
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write results workbook, error %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to get cell name for row %d, error %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d on sheet [%s], error %w", row, sheet, err)
	}
	return nil
}
