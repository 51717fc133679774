// Package tabular reads uploaded spreadsheet-like files (.csv or
// .xlsx) into a plain grid of string cells. Typed interpretation of
// the cells is left to the spectral and curvefit packages.
package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/psikora/spectra/pkg/errs"
)

// Format identifies a supported upload format.
type Format int

const (
	CSV Format = iota
	XLSX
)

// DetectFormat maps an uploaded file name onto a Format.
func DetectFormat(filename string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(filename))
	switch {
	case strings.HasSuffix(name, ".xlsx"):
		return XLSX, nil
	case strings.HasSuffix(name, ".csv"):
		return CSV, nil
	default:
		return 0, errs.Validation("only .xlsx and .csv files are supported")
	}
}

// ReadRows decodes raw file bytes into a grid of trimmed string cells.
// Fully empty rows are dropped; rows are otherwise returned exactly as
// stored, including ragged lengths, so callers can enforce their own
// shape requirements.
func ReadRows(raw []byte, format Format) ([][]string, error) {
	if len(raw) == 0 {
		return nil, errs.Parse("uploaded file is empty")
	}
	switch format {
	case XLSX:
		return readXLSX(raw)
	default:
		return readCSV(raw)
	}
}

func readCSV(raw []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var rows [][]string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errs.Parse("invalid CSV: %v", err)
		}
		cells := make([]string, len(record))
		empty := true
		for i, c := range record {
			cells[i] = strings.TrimSpace(c)
			if cells[i] != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

func readXLSX(raw []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, errs.Parse("invalid Excel file: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errs.Parse("Excel file has no sheets")
	}
	raws, err := f.GetRows(sheet)
	if err != nil {
		return nil, errs.Parse("could not read Excel sheet: %v", err)
	}

	var rows [][]string
	for _, record := range raws {
		cells := make([]string, len(record))
		empty := true
		for i, c := range record {
			cells[i] = strings.TrimSpace(c)
			if cells[i] != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		rows = append(rows, cells)
	}
	return rows, nil
}
