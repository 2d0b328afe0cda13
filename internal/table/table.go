// Package table implements the CSV round-trip exercise: a fixed header and
// three data rows written to disk and read back in order.
package table

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Table is a header row plus data rows
type Table struct {
	Header []string
	Rows   [][]string
}

// Sample returns the fixed demonstration table
func Sample() Table {
	return Table{
		Header: []string{"Name", "Alter", "Stadt"},
		Rows: [][]string{
			{"Anna", "28", "Hamburg"},
			{"Ben", "34", "Köln"},
			{"Clara", "41", "Leipzig"},
		},
	}
}

// WriteFile writes the table as CSV, creating parent directories
func (t Table) WriteFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}

	// WriteAll flushes, surface any deferred error
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	return nil
}

// ReadFile reads a table back from a CSV file
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty csv file: %s", path)
	}

	return &Table{
		Header: records[0],
		Rows:   records[1:],
	}, nil
}
