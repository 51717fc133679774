package handlers

import (
	"context"
	"mime/multipart"

	"github.com/rs/zerolog/log"

	"github.com/psikora/spectra/internal/curvefit"
	"github.com/psikora/spectra/internal/tabular"
	"github.com/psikora/spectra/pkg/models"
)

// CurveFitHandler handles curve dataset uploads and fit requests.
type CurveFitHandler struct {
	engine         *curvefit.Engine
	maxUploadBytes int64
}

// NewCurveFitHandler creates a new curve fit handler.
func NewCurveFitHandler(engine *curvefit.Engine, maxUploadBytes int64) *CurveFitHandler {
	return &CurveFitHandler{engine: engine, maxUploadBytes: maxUploadBytes}
}

// UploadCurveData parses a two-column dataset and returns it for
// immediate, unfitted plotting.
func (h *CurveFitHandler) UploadCurveData(ctx context.Context, req *models.CurveDataRequest) (*models.CurveDataResponse, error) {
	ds, err := h.loadDataset(req.RawBody)
	if err != nil {
		return nil, err
	}

	log.Info().Int("points", len(ds.X)).Msg("Curve dataset parsed")

	return &models.CurveDataResponse{
		Body: models.CurveDataResponseBody{XData: ds.X, YData: ds.Y},
	}, nil
}

// FitCurve parses a two-column dataset and fits it against the model
// named by the form's "function_type" field.
func (h *CurveFitHandler) FitCurve(ctx context.Context, req *models.CurveFitRequest) (*models.CurveFitResponse, error) {
	functionType, err := formString(req.RawBody, "function_type")
	if err != nil {
		return nil, err
	}
	ds, err := h.loadDataset(req.RawBody)
	if err != nil {
		return nil, err
	}

	log.Info().Str("function_type", functionType).Int("points", len(ds.X)).Msg("Fitting curve")

	result, err := h.engine.Fit(ds, curvefit.ModelID(functionType))
	if err != nil {
		return nil, mapCoreError(err)
	}

	log.Info().Str("function_type", functionType).
		Int("points_used", len(result.XUsed)).Int("excluded", result.ExcludedCount).
		Msg("Curve fit complete")

	return &models.CurveFitResponse{
		Body: models.CurveFitResponseBody{
			Parameters:    result.Parameters,
			XData:         result.XUsed,
			YData:         result.YUsed,
			YFit:          result.YFit,
			ExcludedCount: result.ExcludedCount,
			Converged:     result.Converged,
		},
	}, nil
}

func (h *CurveFitHandler) loadDataset(form multipart.Form) (*curvefit.Dataset, error) {
	raw, filename, err := formFile(form, h.maxUploadBytes)
	if err != nil {
		return nil, err
	}
	format, err := tabular.DetectFormat(filename)
	if err != nil {
		return nil, mapCoreError(err)
	}
	ds, err := curvefit.LoadDataset(raw, format)
	if err != nil {
		return nil, mapCoreError(err)
	}
	return ds, nil
}
