package handlers

import (
	"context"
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/psikora/spectra/internal/export"
	"github.com/psikora/spectra/internal/spectral"
	"github.com/psikora/spectra/internal/tabular"
	"github.com/psikora/spectra/pkg/models"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AnalysisHandler handles spectral matrix analysis and export requests.
type AnalysisHandler struct {
	maxUploadBytes int64
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(maxUploadBytes int64) *AnalysisHandler {
	return &AnalysisHandler{maxUploadBytes: maxUploadBytes}
}

// AnalyzeRange parses an uploaded spectral matrix and averages
// intensity over the requested wavelength band.
func (h *AnalysisHandler) AnalyzeRange(ctx context.Context, req *models.AnalyzeRangeRequest) (*models.AnalyzeRangeResponse, error) {
	raw, filename, err := formFile(req.RawBody, h.maxUploadBytes)
	if err != nil {
		return nil, err
	}
	minNM, err := formFloat(req.RawBody, "min_wavelength_nm")
	if err != nil {
		return nil, err
	}
	maxNM, err := formFloat(req.RawBody, "max_wavelength_nm")
	if err != nil {
		return nil, err
	}
	if minNM > maxNM {
		return nil, huma.Error400BadRequest("min_wavelength_nm must be <= max_wavelength_nm", nil)
	}

	format, err := tabular.DetectFormat(filename)
	if err != nil {
		return nil, mapCoreError(err)
	}

	log.Info().Str("filename", filename).Int("bytes", len(raw)).
		Float64("min_nm", minNM).Float64("max_nm", maxNM).
		Msg("Analyzing wavelength range")

	matrix, err := spectral.ParseMatrix(raw, format)
	if err != nil {
		return nil, mapCoreError(err)
	}

	result, err := spectral.AverageRange(matrix, spectral.RangeSelection{Min: minNM, Max: maxNM})
	if err != nil {
		return nil, mapCoreError(err)
	}

	log.Info().Int("rows", len(result.TimeNS)).Int("selected_columns", result.SelectedCount).
		Msg("Range analysis complete")

	return &models.AnalyzeRangeResponse{
		Body: models.AnalyzeRangeResponseBody{
			RangeNM:                 [2]float64{result.Range.Min, result.Range.Max},
			SelectedWavelengthCount: result.SelectedCount,
			TimeNS:                  result.TimeNS,
			AvgIntensity:            result.AvgIntensity,
		},
	}, nil
}

// ExportTimeSeries renders an averaged time series as a downloadable
// two-column Excel workbook.
func (h *AnalysisHandler) ExportTimeSeries(ctx context.Context, req *models.ExportRequest) (*models.ExportResponse, error) {
	data, err := export.TimeSeriesWorkbook(req.Body.TimeNS, req.Body.AvgIntensity)
	if err != nil {
		return nil, mapCoreError(err)
	}

	name := fmt.Sprintf("range-analysis-%s.xlsx", uuid.New().String()[:8])
	log.Info().Int("rows", len(req.Body.TimeNS)).Str("filename", name).Msg("Exporting time series")

	return &models.ExportResponse{
		ContentType:        xlsxContentType,
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", name),
		Body:               data,
	}, nil
}
