// internal/handlers/respond.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dakshilalbetrios/curtain-be/internal/core/domain"
)

func respondJSON(w http.ResponseWriter, logger *slog.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func respondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}

// respondDomainError maps the service error taxonomy onto HTTP status codes.
// Unclassified errors become a generic 500 so internals never leak.
func respondDomainError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, logger, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		respondError(w, logger, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInsufficientStock):
		respondError(w, logger, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidStatusTransition):
		respondError(w, logger, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrAlreadyExists):
		respondError(w, logger, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		respondError(w, logger, http.StatusForbidden, err.Error())
	default:
		respondError(w, logger, http.StatusInternalServerError, "Internal server error")
	}
}
