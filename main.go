package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/candidatos-info/votingstats/config"
	"github.com/candidatos-info/votingstats/elections"
	"github.com/candidatos-info/votingstats/filestorage"
	"github.com/candidatos-info/votingstats/menu"
	"github.com/candidatos-info/votingstats/report"
)

var errNoData = errors.New("could not load data")

func main() {
	dataFile := flag.String("data", "", "csv file with the election results")
	configFile := flag.String("config", "", "YAML configuration file")
	outDir := flag.String("outDir", "", "where reports are saved") // if for GCS pass gs://${BUCKET}, for S3 s3://${BUCKET}, for Google Drive drive://${FOLDER_ID}, if for local pass the local path
	progress := flag.Bool("progress", false, "show a progress bar while reading the results file")
	flag.Parse()
	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("failed to load configuration, error %v", err)
	}
	if *dataFile != "" {
		cfg.DataFile = *dataFile
	}
	if *outDir != "" {
		cfg.Report.Dir = *outDir
	}
	var progressOut io.Writer
	if *progress {
		progressOut = os.Stderr
	}
	if err := run(cfg, progressOut, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, errNoData) {
			fmt.Println("Could not load data")
		}
		log.Fatal(err)
	}
}

// run loads the results file named by cfg and serves the menu until
// the user exits.
func run(cfg *config.Config, progress io.Writer, in io.Reader, out io.Writer) error {
	var opts []elections.LoadOption
	if progress != nil {
		opts = append(opts, elections.WithProgress(progress))
	}
	ds, err := elections.LoadFile(cfg.DataFile, cfg.PartyCodes, opts...)
	if err != nil {
		return fmt.Errorf("%w, error %v", errNoData, err)
	}
	for _, rowErr := range ds.Diagnostics {
		fmt.Fprintf(out, "Row error: %v\n", rowErr)
	}
	if len(ds.Constituencies) == 0 || ds.Parties.Len() == 0 {
		return fmt.Errorf("%w, no constituency found on [%s]", errNoData, cfg.DataFile)
	}
	log.Printf("file [%s], constituencies [%d], parties [%d], rows with errors [%d]\n", cfg.DataFile, len(ds.Constituencies), ds.Parties.Len(), len(ds.Diagnostics))
	storage, bucket, err := filestorage.New(cfg.Report.Dir, cfg.StorageOptions())
	if err != nil {
		return fmt.Errorf("failed to create report storage for [%s], error %w", cfg.Report.Dir, err)
	}
	publisher := report.NewPublisher(storage, bucket, cfg.Report.FileName, cfg.Report.MaxAttempts)
	if err := menu.New(ds, publisher, in, out).Run(); err != nil {
		return fmt.Errorf("failed to read menu input, error %w", err)
	}
	return nil
}
