package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/candidatos-info/votingstats/config"
	"github.com/candidatos-info/votingstats/elections"
)

const testResults = "General election 2019\n" +
	"Results by constituency\n" +
	"Constituency name,Region name,Country name,Member first name,Member surname,Member gender,Con,Lab,Lib Dem,SNP\n" +
	"Ross Skye and Lochaber,Scotland,Scotland,Ian,Blackford,Male,\"8,660\",,\"5,919\",\"19,263\"\n" +
	"Westmorland and Lonsdale,North West,England,Tim,Farron,Male,\"23,158\",\"2,293\",\"25,795\",\n" +
	"Broken row,North West\n"

func testConfig(t *testing.T, content string) *config.Config {
	dir := t.TempDir()
	dataFile := filepath.Join(dir, "election_data.csv")
	if err := os.WriteFile(dataFile, []byte(content), 0644); err != nil {
		t.Fatalf("expected err nil when writing results file, got %q", err)
	}
	return &config.Config{
		DataFile:   dataFile,
		PartyCodes: elections.DefaultPartyCodes(),
		Report: config.ReportConfig{
			Dir:         filepath.Join(dir, "reports"),
			FileName:    "statistics.txt",
			MaxAttempts: 1,
		},
	}
}

func TestRun(t *testing.T) {
	cfg := testConfig(t, testResults)
	var out bytes.Buffer
	if err := run(cfg, nil, strings.NewReader("4\n5\n0\n"), &out); err != nil {
		t.Fatalf("expected err nil when running, got %q", err)
	}
	for _, want := range []string{
		"Row error: line 6: missing value for column \"Member first name\"",
		"SNP: 19263 votes (42.75%)",
		"Lib Dem: 25795 votes (57.25%)",
		"Statistics saved to ",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected output to contain %q, got %s", want, out.String())
		}
	}
	b, err := os.ReadFile(filepath.Join(cfg.Report.Dir, "statistics.txt"))
	if err != nil {
		t.Fatalf("expected err nil when reading statistics file, got %q", err)
	}
	if !strings.HasPrefix(string(b), "Party Statistics:\nSNP: 19263 votes (42.75%)\n") {
		t.Errorf("unexpected statistics file content %s", string(b))
	}
}

func TestRunWithoutData(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"no winning rows", "a\nb\nConstituency name,Con\nBath,\n"},
		{"missing header", "a\n"},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t, tt.content)
			var out bytes.Buffer
			err := run(cfg, nil, strings.NewReader("0\n"), &out)
			if !errors.Is(err, errNoData) {
				t.Errorf("expected errNoData, got %v", err)
			}
			if strings.Contains(out.String(), "Voting Analysis Menu") {
				t.Errorf("expected menu not to be shown")
			}
		})
	}
}

func TestRunMissingFile(t *testing.T) {
	cfg := testConfig(t, testResults)
	cfg.DataFile = filepath.Join(t.TempDir(), "missing.csv")
	err := run(cfg, nil, strings.NewReader("0\n"), &bytes.Buffer{})
	if !errors.Is(err, errNoData) {
		t.Errorf("expected errNoData, got %v", err)
	}
}
