// Package curvefit loads two-column numeric datasets and fits them to
// a closed catalog of function families with Levenberg-Marquardt
// least squares.
package curvefit

import (
	"strconv"

	"github.com/psikora/spectra/internal/tabular"
	"github.com/psikora/spectra/pkg/errs"
)

// Dataset is an (x, y) sample set in file order. X is not required to
// be sorted.
type Dataset struct {
	X []float64
	Y []float64
}

// LoadDataset interprets raw file bytes as a two-column numeric
// dataset (first column x, second y). If the first row does not parse
// fully as numbers it is dropped as a header; any other non-numeric or
// short row fails the parse. At least two data rows are required.
func LoadDataset(raw []byte, format tabular.Format) (*Dataset, error) {
	rows, err := tabular.ReadRows(raw, format)
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		if _, _, err := parsePair(rows[0]); err != nil {
			rows = rows[1:] // header row
		}
	}
	if len(rows) < 2 {
		return nil, errs.Parse("dataset needs at least two data rows")
	}

	ds := &Dataset{
		X: make([]float64, 0, len(rows)),
		Y: make([]float64, 0, len(rows)),
	}
	for r, row := range rows {
		x, y, err := parsePair(row)
		if err != nil {
			return nil, errs.Parse("row %d: %v", r+1, err)
		}
		ds.X = append(ds.X, x)
		ds.Y = append(ds.Y, y)
	}
	return ds, nil
}

func parsePair(row []string) (float64, float64, error) {
	if len(row) != 2 {
		return 0, 0, errs.Parse("expected exactly two columns, got %d", len(row))
	}
	x, err := strconv.ParseFloat(row[0], 64)
	if err != nil {
		return 0, 0, errs.Parse("x value %q is not numeric", row[0])
	}
	y, err := strconv.ParseFloat(row[1], 64)
	if err != nil {
		return 0, 0, errs.Parse("y value %q is not numeric", row[1])
	}
	return x, y, nil
}
