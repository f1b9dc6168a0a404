// Package server provides the HTTP REST API for the movie recommendation pipeline.
package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/movie-scout/internal/catalog"
	"github.com/jonathan/movie-scout/internal/suggest"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return "validation error: " + e.Field + " - " + e.Message
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Per-candidate catalog failures never reach this point; only pipeline-level
// errors are mapped.
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		invalidInput  *suggest.InvalidInputError
		malformed     *suggest.MalformedResponseError
		apiCall       *suggest.APICallError
		upstream      *catalog.UpstreamError
	)

	switch {
	case errors.As(err, &validationErr), errors.As(err, &invalidInput):
		return http.StatusBadRequest
	case errors.As(err, &malformed), errors.As(err, &apiCall), errors.As(err, &upstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
