package report

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/matryer/try"

	"github.com/candidatos-info/votingstats/elections"
	"github.com/candidatos-info/votingstats/filestorage"
)

const (
	// StatisticsFileName is the default name of the statistics file
	StatisticsFileName = "statistics.txt"

	resultsCSVFileName  = "results.csv"
	resultsXLSXFileName = "results.xlsx"
)

// Publisher saves reports on a file storage, retrying failed uploads
type Publisher struct {
	storage            filestorage.FileStorage
	bucket             string
	statisticsFileName string
	maxAttempts        int
}

// NewPublisher returns a publisher that uploads to bucket on storage,
// trying each upload at most maxAttempts times.
func NewPublisher(storage filestorage.FileStorage, bucket, statisticsFileName string, maxAttempts int) *Publisher {
	if statisticsFileName == "" {
		statisticsFileName = StatisticsFileName
	}
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Publisher{
		storage:            storage,
		bucket:             bucket,
		statisticsFileName: statisticsFileName,
		maxAttempts:        maxAttempts,
	}
}

// SaveStatistics uploads the statistics file of ds and returns where it was saved.
func (p *Publisher) SaveStatistics(ds *elections.Dataset) (string, error) {
	return p.publish(p.statisticsFileName, ds, WriteStatistics)
}

// ExportResults uploads the results as csv and xlsx and returns where
// they were saved.
func (p *Publisher) ExportResults(ds *elections.Dataset) ([]string, error) {
	var locations []string
	for _, e := range []struct {
		fileName string
		write    func(io.Writer, *elections.Dataset) error
	}{
		{resultsCSVFileName, WriteResultsCSV},
		{resultsXLSXFileName, WriteResultsXLSX},
	} {
		location, err := p.publish(e.fileName, ds, e.write)
		if err != nil {
			return locations, err
		}
		locations = append(locations, location)
	}
	return locations, nil
}

func (p *Publisher) publish(fileName string, ds *elections.Dataset, write func(io.Writer, *elections.Dataset) error) (string, error) {
	var buf bytes.Buffer
	if err := write(&buf, ds); err != nil {
		return "", err
	}
	var location string
	err := try.Do(func(attempt int) (bool, error) {
		var err error
		location, err = p.storage.Upload(buf.Bytes(), p.bucket, fileName)
		if err != nil {
			log.Printf("attempt %d to save [%s] failed, error %v", attempt, fileName, err)
		}
		return attempt < p.maxAttempts, err
	})
	if err != nil {
		return "", fmt.Errorf("failed to save file [%s] on [%s], error %w", fileName, p.bucket, err)
	}
	return location, nil
}
