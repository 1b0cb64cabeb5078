package elections

import "strings"

var testHeader = []string{
	"Constituency name", "Region name", "Country name",
	"Member first name", "Member surname", "Member gender",
	"Con", "Lab", "Lib Dem", "Green", "SNP", "PC", "DUP", "SF", "SDLP", "UUP", "APNI",
}

// resultsFile builds a results file with the two preamble lines and the
// test header followed by rows.
func resultsFile(rows ...string) string {
	return "General election results\n" +
		"Source: House of Commons Library\n" +
		strings.Join(testHeader, ",") + "\n" +
		strings.Join(rows, "\n") + "\n"
}

// resultsRow builds a csv row for a seat. votes are the party columns in
// the test header order, missing trailing columns are left blank.
func resultsRow(constituency, region, country, first, surname, gender string, votes ...string) string {
	fields := []string{constituency, region, country, first, surname, gender}
	for i := 0; i < len(testHeader)-6; i++ {
		v := ""
		if i < len(votes) {
			v = votes[i]
		}
		fields = append(fields, v)
	}
	for i, f := range fields {
		if strings.Contains(f, ",") {
			fields[i] = `"` + f + `"`
		}
	}
	return strings.Join(fields, ",")
}
