package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"go-maintenance-pipeline/internal/model"
)

// ------------------- Table Reader -------------------

// ReadTable parses CSV text into an ordered slice of raw records, one per
// data row, keyed by the cleaned header names. A leading byte-order mark and
// surrounding whitespace are stripped from the whole input before
// tokenizing. Header-only or empty input yields an EmptyInput failure.
func ReadTable(data string) ([]model.RawRecord, error) {
	data = strings.TrimPrefix(data, "\ufeff")
	data = strings.TrimSpace(data)

	if data == "" {
		return nil, model.NewEmptyInputError()
	}

	csvReader := csv.NewReader(strings.NewReader(data))
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	headers, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i, h := range headers {
		// Clean header names: trim whitespace and remove ALL quotes
		cleanHeader := strings.TrimSpace(h)
		cleanHeader = strings.ReplaceAll(cleanHeader, `"`, "")
		headers[i] = cleanHeader
	}

	var records []model.RawRecord
	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("CSV read error: %w", err)
		}

		rec := make(model.RawRecord, len(headers))
		for i, h := range headers {
			if i < len(row) {
				rec[h] = row[i]
			}
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, model.NewEmptyInputError()
	}

	return records, nil
}

// ReadTableFrom reads all input from r and parses it as a table.
func ReadTableFrom(r io.Reader) ([]model.RawRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return ReadTable(string(data))
}

// ReadTableFile reads a table from a CSV file on disk.
func ReadTableFile(path string) ([]model.RawRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()
	return ReadTableFrom(file)
}
