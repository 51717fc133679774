package spectral

import (
	"github.com/psikora/spectra/pkg/errs"
)

// RangeSelection is an inclusive wavelength band in nm. Callers must
// pass Min <= Max; no reordering happens here.
type RangeSelection struct {
	Min float64
	Max float64
}

// RangeResult is the per-row average intensity over a wavelength band.
// Row order matches the input matrix exactly.
type RangeResult struct {
	TimeNS        []float64
	AvgIntensity  []float64
	Range         RangeSelection
	SelectedCount int
}

// AverageRange computes, for every time row, the unweighted arithmetic
// mean of the intensity columns whose wavelength lies in [sel.Min,
// sel.Max]. Non-finite cells propagate into the affected row's average.
func AverageRange(m *Matrix, sel RangeSelection) (*RangeResult, error) {
	var selected []int
	for c, w := range m.Wavelengths {
		if sel.Min <= w && w <= sel.Max {
			selected = append(selected, c)
		}
	}
	if len(selected) == 0 {
		return nil, errs.Validation("no wavelengths in range")
	}

	times := make([]float64, len(m.TimeNS))
	copy(times, m.TimeNS)

	avg := make([]float64, len(m.Intensity))
	for r, row := range m.Intensity {
		sum := 0.0
		for _, c := range selected {
			sum += row[c]
		}
		avg[r] = sum / float64(len(selected))
	}

	return &RangeResult{
		TimeNS:        times,
		AvgIntensity:  avg,
		Range:         sel,
		SelectedCount: len(selected),
	}, nil
}
