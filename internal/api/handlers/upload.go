package handlers

import (
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/psikora/spectra/pkg/errs"
)

// formFile pulls the uploaded bytes and original file name out of a
// parsed multipart form.
func formFile(form multipart.Form, maxBytes int64) ([]byte, string, error) {
	files := form.File["file"]
	if len(files) == 0 {
		return nil, "", huma.Error400BadRequest("file is required", nil)
	}
	fh := files[0]
	if maxBytes > 0 && fh.Size > maxBytes {
		return nil, "", huma.Error400BadRequest("uploaded file is too large", nil)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, "", huma.Error400BadRequest("could not read uploaded file", err)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, "", huma.Error400BadRequest("could not read uploaded file", err)
	}
	if len(raw) == 0 {
		return nil, "", huma.Error400BadRequest("uploaded file is empty", nil)
	}
	return raw, fh.Filename, nil
}

// formString pulls a required text field out of a multipart form.
func formString(form multipart.Form, field string) (string, error) {
	vals := form.Value[field]
	if len(vals) == 0 || strings.TrimSpace(vals[0]) == "" {
		return "", huma.Error400BadRequest(field+" is required", nil)
	}
	return strings.TrimSpace(vals[0]), nil
}

// formFloat pulls a required numeric field out of a multipart form.
func formFloat(form multipart.Form, field string) (float64, error) {
	s, err := formString(form, field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, huma.Error400BadRequest(field+" must be numeric", err)
	}
	return v, nil
}

// mapCoreError translates the analysis error taxonomy onto HTTP status
// codes: bad input files and invalid requests are 400, datasets the
// chosen model cannot handle are 422.
func mapCoreError(err error) error {
	switch {
	case errs.IsParse(err), errs.IsValidation(err):
		return huma.Error400BadRequest(err.Error(), err)
	case errs.IsDomain(err), errs.IsFit(err):
		return huma.Error422UnprocessableEntity(err.Error(), err)
	default:
		return huma.Error500InternalServerError("analysis failed", err)
	}
}
