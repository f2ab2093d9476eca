package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventory/internal/delivery/http/helpers"
	"eventory/internal/domain"
	"eventory/internal/schema"
)

// writeServiceError maps a service error to its HTTP response. Anything
// unrecognised is logged and reported as a bare 500.
func writeServiceError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	if verr, ok := schema.AsValidationError(err); ok {
		helpers.WriteValidationError(w, verr)
		return
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, notFoundMsg)
	case errors.Is(err, domain.ErrUnauthorized):
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "Unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "Forbidden")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteInternalError(w)
	}
}
