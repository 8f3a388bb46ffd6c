package api

import (
	"net/http"

	"github.com/videovault/videos-ms-go/internal/logger"
	"github.com/videovault/videos-ms-go/internal/port"
)

type DeleteVideoResponse struct {
	Success bool `json:"success"`
}

// DeleteVideoHandler deletes a video by ID: the stored object at the media
// service first, then the record.
func DeleteVideoHandler(svc port.VideoDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := principalFromRequest(w, r)
		if !ok {
			return
		}

		id, ok := IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		if err := svc.DeleteVideo(r.Context(), id, uid); err != nil {
			writeDomainError(w, err, "Delete failed")
			return
		}

		RespondJSON(w, http.StatusOK, DeleteVideoResponse{Success: true})
		logger.Infof(r.Context(), "✅  Successfully deleted video #%s", id)
	}
}
