// Package export serializes analysis results into downloadable Excel
// workbooks.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/psikora/spectra/pkg/errs"
)

const sheetName = "Analysis"

// TimeSeriesWorkbook renders a time/intensity series as a two-column
// .xlsx workbook with a header row and returns the encoded bytes.
func TimeSeriesWorkbook(timeNS, avgIntensity []float64) ([]byte, error) {
	if len(timeNS) == 0 {
		return nil, errs.Validation("nothing to export")
	}
	if len(timeNS) != len(avgIntensity) {
		return nil, errs.Validation("time_ns and avg_intensity must be the same length")
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &[]any{"Time (ns)", "Average Intensity"}); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i := range timeNS {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheetName, cell, &[]any{timeNS[i], avgIntensity[i]}); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
