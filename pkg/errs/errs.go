// Package errs defines the error taxonomy shared by the analysis
// packages. All four kinds are terminal for the current request; the
// HTTP layer maps them onto status codes.
package errs

import (
	"errors"
	"fmt"
)

// ParseError indicates a malformed or structurally invalid input file.
type ParseError struct {
	msg string
}

func Parse(format string, args ...any) *ParseError {
	return &ParseError{msg: fmt.Sprintf(format, args...)}
}

func (e *ParseError) Error() string { return e.msg }

// ValidationError indicates a structurally valid but semantically
// invalid request, e.g. an empty wavelength selection or an unknown
// model id.
type ValidationError struct {
	msg string
}

func Validation(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string { return e.msg }

// DomainError indicates a dataset incompatible with a model's domain
// after per-point filtering.
type DomainError struct {
	msg string
}

func Domain(format string, args ...any) *DomainError {
	return &DomainError{msg: fmt.Sprintf(format, args...)}
}

func (e *DomainError) Error() string { return e.msg }

// FitError indicates a numerical failure during least-squares
// minimization: non-convergence or a singular system.
type FitError struct {
	msg string
}

func Fit(format string, args ...any) *FitError {
	return &FitError{msg: fmt.Sprintf(format, args...)}
}

func (e *FitError) Error() string { return e.msg }

func IsParse(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsDomain(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

func IsFit(err error) bool {
	var fe *FitError
	return errors.As(err, &fe)
}
