package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/psikora/spectra/internal/api/handlers"
	"github.com/psikora/spectra/internal/curvefit"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(api huma.API, engine *curvefit.Engine, maxUploadBytes int64) {
	// Initialize handlers
	analysisHandler := handlers.NewAnalysisHandler(maxUploadBytes)
	curveHandler := handlers.NewCurveFitHandler(engine, maxUploadBytes)

	// Register matrix analysis routes
	huma.Register(api, huma.Operation{
		OperationID: "analyzeRange",
		Method:      http.MethodPost,
		Path:        "/api/analyze-range",
		Summary:     "Analyze a wavelength range",
		Description: "Parses an uploaded spectral matrix (.csv or .xlsx) and averages intensity over the requested inclusive wavelength band",
		Tags:        []string{"Analysis"},
	}, analysisHandler.AnalyzeRange)

	huma.Register(api, huma.Operation{
		OperationID: "exportTimeSeries",
		Method:      http.MethodPost,
		Path:        "/api/export",
		Summary:     "Export an averaged time series",
		Description: "Renders a time/intensity series as a downloadable two-column Excel workbook",
		Tags:        []string{"Analysis"},
	}, analysisHandler.ExportTimeSeries)

	// Register curve fitting routes
	huma.Register(api, huma.Operation{
		OperationID: "uploadCurveData",
		Method:      http.MethodPost,
		Path:        "/api/curve-data",
		Summary:     "Parse a curve dataset",
		Description: "Parses an uploaded two-column (x, y) dataset and returns it for immediate plotting",
		Tags:        []string{"CurveFit"},
	}, curveHandler.UploadCurveData)

	huma.Register(api, huma.Operation{
		OperationID: "fitCurve",
		Method:      http.MethodPost,
		Path:        "/api/curve-fit",
		Summary:     "Fit a curve dataset",
		Description: "Fits an uploaded two-column dataset to the chosen function family and returns fitted parameters plus the predicted curve",
		Tags:        []string{"CurveFit"},
	}, curveHandler.FitCurve)
}
