package menu

// Option is a custom type to represent the entries of the menu
type Option int

const (
	// Exit ends the menu loop
	Exit Option = 0

	// SearchName looks members up by name
	SearchName Option = 1

	// SearchParty shows the totals of a party
	SearchParty Option = 2

	// SearchConstituency looks constituencies up by name
	SearchConstituency Option = 3

	// ShowTotals lists the votes and percentage of every party
	ShowTotals Option = 4

	// SaveStatistics writes the statistics file
	SaveStatistics Option = 5

	// ExportResults writes the results spreadsheets
	ExportResults Option = 6
)

var (
	optionText = map[Option]string{
		Exit:               "Exit",
		SearchName:         "Search by Candidate Name",
		SearchParty:        "Search by Party",
		SearchConstituency: "Search by Constituency",
		ShowTotals:         "Show Party Vote Totals and Percentages",
		SaveStatistics:     "Save Statistics to File",
		ExportResults:      "Export Results Spreadsheet",
	}

	// exit is listed last
	displayOrder = []Option{SearchName, SearchParty, SearchConstituency, ShowTotals, SaveStatistics, ExportResults, Exit}
)

// Text returns a text for an option. It returns the empty
// string if the option is unknown.
func Text(option Option) string {
	return optionText[option]
}
