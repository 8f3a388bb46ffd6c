package api

import (
	"fmt"
	"net/http"

	"github.com/videovault/videos-ms-go/internal/logger"
	"github.com/videovault/videos-ms-go/internal/port"
	videoUC "github.com/videovault/videos-ms-go/internal/usecase/video"
	"github.com/videovault/videos-ms-go/internal/validation"
)

// multipart form overhead on top of the payload itself
const uploadFormSlack = 1 << 20

type UploadVideoRequest struct {
	Title        string `json:"title" validate:"required,max=255"`
	Description  string `json:"description" validate:"max=2000"`
	OriginalSize string `json:"original_size" validate:"required,number"`
}

// UploadVideoHandler accepts a multipart upload, proxies the bytes to the
// media service and persists the resulting record.
func UploadVideoHandler(svc port.UploadIngestor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := principalFromRequest(w, r)
		if !ok {
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, videoUC.MaxUploadSize+uploadFormSlack)
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid multipart payload", err)
			return
		}

		req := UploadVideoRequest{
			Title:        r.FormValue("title"),
			Description:  r.FormValue("description"),
			OriginalSize: r.FormValue("original_size"),
		}
		if errs := validation.ValidateStruct(req); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "Validation error (could not encode details)", fmt.Errorf("encoding validation errors: %w", err))
				return
			}
			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			logger.Warnf(r.Context(), "❌  Validation failed: %s", errsJSON)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Missing required fields", fmt.Errorf("file part: %w", err))
			return
		}
		defer func() {
			if err := file.Close(); err != nil {
				logger.Warnf(r.Context(), "failed to close uploaded file: %v", err)
			}
		}()

		in := port.IngestUploadInput{
			UserID:       uid,
			File:         file,
			FileSize:     header.Size,
			Title:        req.Title,
			Description:  req.Description,
			OriginalSize: req.OriginalSize,
		}
		out, err := svc.IngestUpload(r.Context(), in)
		if err != nil {
			writeDomainError(w, err, "Upload video failed")
			return
		}

		RespondJSON(w, http.StatusCreated, out)
		logger.Infof(r.Context(), "✅  Successfully ingested video #%s (object %q)", out.ID, out.PublicID)
	}
}
