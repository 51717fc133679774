// Package spectral parses time-resolved spectral matrix files and
// aggregates intensity over a wavelength band.
package spectral

import (
	"strconv"

	"github.com/psikora/spectra/internal/tabular"
	"github.com/psikora/spectra/pkg/errs"
)

// Matrix is a parsed spectral measurement: one intensity row per time
// sample, one column per wavelength. Both axes preserve file order;
// wavelengths may run in either direction. Immutable after parsing.
type Matrix struct {
	Wavelengths []float64   // one per intensity column, nm
	TimeNS      []float64   // one per row
	Intensity   [][]float64 // [row][column]
}

// ParseMatrix interprets raw file bytes as a spectral matrix.
//
// Row 1 is the header: every cell but the last must be a numeric
// wavelength; the last cell is the time-axis label and is ignored.
// Every following row carries intensities in all but the last cell and
// the row's time value in the last cell. Ragged or non-numeric rows
// fail the whole parse; nothing is skipped.
func ParseMatrix(raw []byte, format tabular.Format) (*Matrix, error) {
	rows, err := tabular.ReadRows(raw, format)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, errs.Parse("file must have a header row and at least one data row")
	}

	header := rows[0]
	if len(header) < 2 {
		return nil, errs.Parse("header is too short: need at least one wavelength column and a time column")
	}

	wavelengths := make([]float64, len(header)-1)
	for i, cell := range header[:len(header)-1] {
		w, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, errs.Parse("header wavelengths must be numeric: column %d is %q", i+1, cell)
		}
		wavelengths[i] = w
	}

	times := make([]float64, 0, len(rows)-1)
	intensity := make([][]float64, 0, len(rows)-1)
	for r, row := range rows[1:] {
		if len(row) != len(header) {
			return nil, errs.Parse("row %d has %d columns, expected %d", r+2, len(row), len(header))
		}
		values := make([]float64, len(wavelengths))
		for c, cell := range row[:len(wavelengths)] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, errs.Parse("row %d column %d is not numeric: %q", r+2, c+1, cell)
			}
			values[c] = v
		}
		t, err := strconv.ParseFloat(row[len(wavelengths)], 64)
		if err != nil {
			return nil, errs.Parse("row %d has a non-numeric time value: %q", r+2, row[len(wavelengths)])
		}
		intensity = append(intensity, values)
		times = append(times, t)
	}

	return &Matrix{Wavelengths: wavelengths, TimeNS: times, Intensity: intensity}, nil
}
