package api

import (
	"net/http"

	"github.com/videovault/videos-ms-go/internal/logger"
	"github.com/videovault/videos-ms-go/internal/port"
)

func GetVideoHandler(renderer port.HTTPRenderer, svc port.VideoGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := principalFromRequest(w, r); !ok {
			return
		}

		id, ok := IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		raw, etag, err := renderer.RenderGetVideo(r.Context(), svc, id)
		if err != nil {
			writeDomainError(w, err, "Could not get video details")
			return
		}

		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "public, max-age=300")
		if match := r.Header.Get("If-None-Match"); match == etag {
			w.WriteHeader(http.StatusNotModified)
			logger.Infof(r.Context(), "✅  Returning cached video #%s", id)
			return
		}

		RespondRawJSON(w, http.StatusOK, raw)
		logger.Infof(r.Context(), "✅  Successfully returned details for video #%s", id)
	}
}
