package api

import (
	"net/http"

	"github.com/videovault/videos-ms-go/internal/logger"
	"github.com/videovault/videos-ms-go/internal/model"
	"github.com/videovault/videos-ms-go/internal/port"
)

// ListVideosHandler returns the feed of video records, newest first.
func ListVideosHandler(svc port.VideoLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := principalFromRequest(w, r); !ok {
			return
		}

		videos, err := svc.ListVideos(r.Context())
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not list videos", err)
			return
		}
		if videos == nil {
			videos = []model.Video{}
		}

		RespondJSON(w, http.StatusOK, videos)
		logger.Infof(r.Context(), "✅  Successfully listed %d videos", len(videos))
	}
}
