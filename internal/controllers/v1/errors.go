package v1

import (
	"errors"
	"net/http"

	"github.com/hustleledger/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrHustleNameNotUnique) ||
		errors.Is(err, models.ErrEmailNotUnique) ||
		errors.Is(err, models.ErrProfileExists) {
		return http.StatusConflict
	}

	if errors.Is(err, models.ErrCredentialsInvalid) ||
		errors.Is(err, errNoToken) ||
		errors.Is(err, errTokenInvalid) {
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}

// Authentication errors
var (
	errNoToken      = errors.New("a bearer token is required to access this endpoint")
	errTokenInvalid = errors.New("the bearer token is invalid or expired")
)
