package http

import (
	"encoding/json"
	"net/http"

	"github.com/pmslab/catalog-service/internal/catalog/domain"
	"github.com/pmslab/catalog-service/pkg/logger"
	"github.com/pmslab/catalog-service/pkg/validator"
)

// internalErrorMessage is the only thing callers see for persistence and
// connectivity failures; the underlying error never leaves the process
const internalErrorMessage = "Oops! Internal server error."

// ErrorResponse is the uniform error payload
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondError sends the uniform error payload
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Status: status, Message: message})
}

// respondDomainError maps an error from the validation or persistence
// pipeline onto the response taxonomy: validation and duplicate-key failures
// surface verbatim as 400, absent natural keys as 404, and everything else
// collapses to an opaque 500
func respondDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case isValidationError(err) || domain.IsBadRequest(err):
		respondError(w, http.StatusBadRequest, err.Error())
	case domain.IsNotFound(err):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		logger.WithContext(r.Context()).Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("Internal error")
		respondError(w, http.StatusInternalServerError, internalErrorMessage)
	}
}

func isValidationError(err error) bool {
	_, ok := err.(*validator.ValidationError)
	return ok
}
