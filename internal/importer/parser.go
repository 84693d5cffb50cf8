package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet is a parsed tabular upload. Header is the first file row; Rows are
// the data rows in file order, so the file row number of Rows[i] is i+2.
type Sheet struct {
	Header []string
	Rows   [][]string
}

var ErrNoData = errors.New("file contains no data rows")

var xlsxMagic = []byte{0x50, 0x4b, 0x03, 0x04}

// Parse sniffs the format from the leading bytes: xlsx files are zip
// archives, everything else is treated as CSV.
func Parse(data []byte) (*Sheet, error) {
	if bytes.HasPrefix(data, xlsxMagic) {
		return parseXLSX(data)
	}
	return parseCSV(data)
}

func parseXLSX(data []byte) (*Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoData
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	return newSheet(rows)
}

func parseCSV(data []byte) (*Sheet, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, record)
	}

	return newSheet(rows)
}

func newSheet(rows [][]string) (*Sheet, error) {
	if len(rows) < 2 {
		return nil, ErrNoData
	}
	return &Sheet{Header: rows[0], Rows: rows[1:]}, nil
}

// Columns maps lower-cased, trimmed header names to their positions, built
// once so row processing never does a per-row case-insensitive scan. The
// first occurrence of a duplicated header name wins.
func (s *Sheet) Columns() map[string]int {
	cols := make(map[string]int, len(s.Header))
	for i, name := range s.Header {
		key := NormalizeColumn(name)
		if key == "" {
			continue
		}
		if _, ok := cols[key]; !ok {
			cols[key] = i
		}
	}
	return cols
}

// NormalizeColumn is the canonical form used for case-insensitive header
// matching.
func NormalizeColumn(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Cell returns the trimmed cell at idx, tolerating ragged rows.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
