// Package errors provides structured domain errors with user-facing message
// lookup.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"

	// Siegel modular form errors
	CodeFamilyNotFound       Code = "SMF_FAMILY_NOT_FOUND"
	CodeDimensionArgsInvalid Code = "SMF_DIMENSION_ARGS_INVALID"
	CodeSampleFilterInvalid  Code = "SMF_SAMPLE_FILTER_INVALID"
	CodeDimensionUnavailable Code = "SMF_DIMENSION_UNAVAILABLE"
)

// HTTPStatus maps domain codes to HTTP response status codes.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeDimensionArgsInvalid,
		CodeSampleFilterInvalid,
		CodeDimensionUnavailable:
		return http.StatusBadRequest

	case CodeNotFound,
		CodeFamilyNotFound:
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}
