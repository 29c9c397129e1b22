package services

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

const utf8BOM = "\ufeff"

// ParseCSV reads a header row followed by data rows and returns one map per
// data row keyed by the lower-cased header. Cells are trimmed, short rows are
// padded with empty values and extra cells without a header are dropped.
// Records whose cells are all blank are kept so row numbers stay aligned with
// the file; fully empty lines are skipped by encoding/csv.
func ParseCSV(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, invalidInput("csv has no header row")
	}
	if err != nil {
		return nil, invalidInput("malformed csv header: %v", err)
	}

	cols := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		cols[i] = strings.ToLower(strings.TrimSpace(h))
	}

	rows := []map[string]string{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, invalidInput("malformed csv: %v", err)
		}
		row := make(map[string]string, len(cols))
		for i, col := range cols {
			if col == "" {
				continue
			}
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

