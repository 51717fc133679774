package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/psikora/spectra/pkg/models"
)

// buildForm assembles and re-parses a real multipart body so file
// headers behave exactly as they do for an actual request.
func buildForm(t *testing.T, fields map[string]string, filename string, content []byte) multipart.Form {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		fw, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return *form
}

func assertStatus(t *testing.T, err error, want int) {
	t.Helper()
	require.Error(t, err)
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, want, se.GetStatus())
}

const matrixCSV = "450,440,430,Time (ns)\n1,2,3,0.0\n4,5,6,0.5\n7,8,9,1.0\n"

func rangeFields(min, max string) map[string]string {
	return map[string]string{
		"min_wavelength_nm": min,
		"max_wavelength_nm": max,
	}
}

func TestAnalyzeRange(t *testing.T) {
	h := NewAnalysisHandler(0)
	req := &models.AnalyzeRangeRequest{
		RawBody: buildForm(t, rangeFields("430", "445"), "trace.csv", []byte(matrixCSV)),
	}

	resp, err := h.AnalyzeRange(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, [2]float64{430, 445}, resp.Body.RangeNM)
	assert.Equal(t, 2, resp.Body.SelectedWavelengthCount)
	assert.Equal(t, []float64{0.0, 0.5, 1.0}, resp.Body.TimeNS)
	require.Len(t, resp.Body.AvgIntensity, 3)
	assert.InDelta(t, 2.5, resp.Body.AvgIntensity[0], 1e-12)
	assert.InDelta(t, 5.5, resp.Body.AvgIntensity[1], 1e-12)
}

func TestAnalyzeRangeErrors(t *testing.T) {
	h := NewAnalysisHandler(0)

	tests := []struct {
		name       string
		fields     map[string]string
		filename   string
		content    string
		wantStatus int
	}{
		{"min above max", rangeFields("500", "400"), "trace.csv", matrixCSV, 400},
		{"missing file", rangeFields("430", "445"), "", "", 400},
		{"missing bound", map[string]string{"min_wavelength_nm": "430"}, "trace.csv", matrixCSV, 400},
		{"non-numeric bound", rangeFields("low", "445"), "trace.csv", matrixCSV, 400},
		{"unsupported extension", rangeFields("430", "445"), "trace.txt", matrixCSV, 400},
		{"ragged matrix", rangeFields("430", "445"), "trace.csv", "450,440,Time\n1,2,0.0\n1\n", 400},
		{"empty selection", rangeFields("100", "200"), "trace.csv", matrixCSV, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &models.AnalyzeRangeRequest{
				RawBody: buildForm(t, tt.fields, tt.filename, []byte(tt.content)),
			}
			_, err := h.AnalyzeRange(context.Background(), req)
			assertStatus(t, err, tt.wantStatus)
		})
	}
}

func TestAnalyzeRangeUploadTooLarge(t *testing.T) {
	h := NewAnalysisHandler(8) // 8-byte cap
	req := &models.AnalyzeRangeRequest{
		RawBody: buildForm(t, rangeFields("430", "445"), "trace.csv", []byte(matrixCSV)),
	}

	_, err := h.AnalyzeRange(context.Background(), req)
	assertStatus(t, err, 400)
}

func TestExportTimeSeries(t *testing.T) {
	h := NewAnalysisHandler(0)
	req := &models.ExportRequest{}
	req.Body.TimeNS = []float64{0, 0.5, 1}
	req.Body.AvgIntensity = []float64{3, 2, 1}

	resp, err := h.ExportTimeSeries(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, xlsxContentType, resp.ContentType)
	assert.Contains(t, resp.ContentDisposition, "attachment")
	assert.Contains(t, resp.ContentDisposition, ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(resp.Body))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Analysis")
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

func TestExportTimeSeriesLengthMismatch(t *testing.T) {
	h := NewAnalysisHandler(0)
	req := &models.ExportRequest{}
	req.Body.TimeNS = []float64{0, 0.5}
	req.Body.AvgIntensity = []float64{3}

	_, err := h.ExportTimeSeries(context.Background(), req)
	assertStatus(t, err, 400)
}
