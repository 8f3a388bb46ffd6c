package api

import (
	"errors"
	"net/http"

	"github.com/videovault/videos-ms-go/internal/api_context"
	"github.com/videovault/videos-ms-go/internal/usecase/video"
)

// principalFromRequest extracts the authenticated principal or writes a 401.
// Every mutating endpoint treats an absent principal as an authorisation
// failure, never a retryable condition.
func principalFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	uid, ok := api_context.AuthUserIDFromContext(r.Context())
	if !ok || uid == "" {
		WriteError(w, http.StatusUnauthorized, "Unauthorized", nil)
		return "", false
	}
	return uid, true
}

// writeDomainError maps a use-case error onto a fixed status and a generic
// message; no internal detail crosses the boundary.
func writeDomainError(w http.ResponseWriter, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, video.ErrUnauthenticated):
		WriteError(w, http.StatusUnauthorized, "Unauthorized", nil)
	case errors.Is(err, video.ErrValidation):
		WriteError(w, http.StatusBadRequest, "Missing required fields", err)
	case errors.Is(err, video.ErrForbidden):
		WriteError(w, http.StatusForbidden, "Forbidden", nil)
	case errors.Is(err, video.ErrNotFound):
		WriteError(w, http.StatusNotFound, "Not found", nil)
	default:
		WriteError(w, http.StatusInternalServerError, fallbackMsg, err)
	}
}
