// Package datasets reads and writes the raw and curated tabular artifacts
// the pipeline stages exchange. Each curated file is written by exactly one
// stage and read by the downstream validators and the database builder.
package datasets

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Column orders of the curated CSVs. These are external contracts consumed
// by client applications; never reorder them.
var (
	CountryColumns   = []string{"code", "name", "continent_code"}
	ContinentColumns = []string{"code", "name"}
	AirportColumns = []string{
		"iata", "name", "latitude_deg", "longitude_deg", "continent",
		"iso_country", "municipality", "timezone", "icao_code", "gps_code",
	}
)

// ReadRawTable loads an arbitrary CSV with a header row into one map per
// record, keyed by column name. Used for the upstream source tables whose
// column sets we do not control.
func ReadRawTable(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	var rows []map[string]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func writeCSV(path string, columns []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}

func readCSV(path string, columns []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	if len(header) != len(columns) {
		return nil, fmt.Errorf("%s: expected %d columns, found %d", path, len(columns), len(header))
	}
	for i, col := range columns {
		if header[i] != col {
			return nil, fmt.Errorf("%s: expected column %q at position %d, found %q", path, col, i, header[i])
		}
	}

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return rows, nil
}
