package models

import "mime/multipart"

// CurveDataRequest is the multipart form carrying a two-column (x, y)
// dataset upload in the "file" field.
type CurveDataRequest struct {
	RawBody multipart.Form
}

// CurveDataResponseBody is the raw dataset for immediate plotting,
// before any fit.
type CurveDataResponseBody struct {
	XData []float64 `json:"x_data" doc:"x values in file order"`
	YData []float64 `json:"y_data" doc:"y values in file order"`
}

// CurveDataResponse wraps the unfitted dataset.
type CurveDataResponse struct {
	Body CurveDataResponseBody
}

// CurveFitRequest is the multipart form carrying a dataset upload in
// "file" and the model id in "function_type".
type CurveFitRequest struct {
	RawBody multipart.Form
}

// CurveFitResponseBody is the fit report. XData/YData are the samples
// that survived domain filtering; YFit is aligned with XData.
type CurveFitResponseBody struct {
	Parameters    map[string]float64 `json:"parameters" doc:"Fitted parameters, only the names relevant to the chosen model"`
	XData         []float64          `json:"x_data" doc:"x values used by the fit"`
	YData         []float64          `json:"y_data" doc:"y values used by the fit"`
	YFit          []float64          `json:"y_fit" doc:"Predicted y values aligned with x_data"`
	ExcludedCount int                `json:"excluded_count" doc:"Points dropped by the model's domain filter"`
	Converged     bool               `json:"converged" doc:"Whether the least-squares solver converged"`
}

// CurveFitResponse wraps the fit report.
type CurveFitResponse struct {
	Body CurveFitResponseBody
}
