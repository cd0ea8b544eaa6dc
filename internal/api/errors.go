package api

import (
	"errors"
	"net/http"

	"dutyboard/internal/domain"
)

// httpStatusFromDomainError maps domain errors to HTTP status codes.
// Conflicts (duplicates, delete-blocked-by-duties) map to 400 rather than
// 409 — that is the wire contract the clients were built against.
func httpStatusFromDomainError(err error) int {
	var notFound *domain.NotFoundError
	var validation *domain.ValidationError
	var conflict *domain.ConflictError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &conflict):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
