package models

import "mime/multipart"

// AnalyzeRangeRequest is the multipart form carrying the spectral
// matrix upload. Fields: "file" (.csv or .xlsx), "min_wavelength_nm",
// "max_wavelength_nm".
type AnalyzeRangeRequest struct {
	RawBody multipart.Form
}

// AnalyzeRangeResponseBody is the band-averaging result.
type AnalyzeRangeResponseBody struct {
	RangeNM                 [2]float64 `json:"range_nm" doc:"Inclusive wavelength band [min, max] in nm"`
	SelectedWavelengthCount int        `json:"selected_wavelength_count" doc:"Number of wavelength columns inside the band"`
	TimeNS                  []float64  `json:"time_ns" doc:"Time axis in file order"`
	AvgIntensity            []float64  `json:"avg_intensity" doc:"Band-averaged intensity per time sample"`
}

// AnalyzeRangeResponse wraps the band-averaging result.
type AnalyzeRangeResponse struct {
	Body AnalyzeRangeResponseBody
}

// ExportRequest carries an averaged time series back for download.
type ExportRequest struct {
	Body struct {
		TimeNS       []float64 `json:"time_ns" required:"true" doc:"Time axis in ns"`
		AvgIntensity []float64 `json:"avg_intensity" required:"true" doc:"Averaged intensity, same length as time_ns"`
	}
}

// ExportResponse streams the rendered .xlsx workbook.
type ExportResponse struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}
