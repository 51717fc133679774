package export

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/psikora/spectra/pkg/errs"
)

func TestTimeSeriesWorkbookRoundTrip(t *testing.T) {
	timeNS := []float64{0, 0.5, 1, 1.5}
	avg := []float64{10.25, 9.5, 8, 7.125}

	data, err := TimeSeriesWorkbook(timeNS, avg)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, len(timeNS)+1)
	assert.Equal(t, []string{"Time (ns)", "Average Intensity"}, rows[0])

	for i := range timeNS {
		gotT, err := strconv.ParseFloat(rows[i+1][0], 64)
		require.NoError(t, err)
		gotA, err := strconv.ParseFloat(rows[i+1][1], 64)
		require.NoError(t, err)
		assert.InDelta(t, timeNS[i], gotT, 1e-9)
		assert.InDelta(t, avg[i], gotA, 1e-9)
	}
}

func TestTimeSeriesWorkbookValidation(t *testing.T) {
	_, err := TimeSeriesWorkbook(nil, nil)
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))

	_, err = TimeSeriesWorkbook([]float64{1, 2}, []float64{1})
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}
