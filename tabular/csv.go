package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/tsawler/scantab/model"
)

// Write serializes the table as CSV, one record per row.
func Write(w io.Writer, t *model.Table) error {
	cw := csv.NewWriter(w)
	for i, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}

// Read parses CSV into a table. Ragged records are accepted.
func Read(r io.Reader) (*model.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	table := model.NewTable()
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV: %w", err)
		}
		table.Rows = append(table.Rows, record)
	}
	return table, nil
}

// WriteFile serializes the table to a CSV file.
func WriteFile(path string, t *model.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Write(f, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadFile parses a CSV file into a table.
func ReadFile(path string) (*model.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
