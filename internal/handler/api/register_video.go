package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/videovault/videos-ms-go/internal/logger"
	"github.com/videovault/videos-ms-go/internal/port"
	"github.com/videovault/videos-ms-go/internal/validation"
)

type RegisterVideoRequest struct {
	Title          string  `json:"title" validate:"required,max=255"`
	Description    string  `json:"description" validate:"max=2000"`
	PublicID       string  `json:"public_id" validate:"required,max=255"`
	URL            string  `json:"url" validate:"omitempty,url"`
	OriginalSize   string  `json:"original_size" validate:"required,number"`
	CompressedSize string  `json:"compressed_size" validate:"omitempty,number"`
	Duration       float64 `json:"duration" validate:"omitempty,gte=0"`
}

// RegisterVideoHandler persists metadata for an object the client already
// uploaded directly to the media service with a signed ticket.
func RegisterVideoHandler(svc port.VideoRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := principalFromRequest(w, r)
		if !ok {
			return
		}

		var req RegisterVideoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
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

		in := port.RegisterVideoInput{
			UserID:         uid,
			Title:          req.Title,
			Description:    req.Description,
			PublicID:       req.PublicID,
			URL:            req.URL,
			OriginalSize:   req.OriginalSize,
			CompressedSize: req.CompressedSize,
			Duration:       req.Duration,
		}
		out, err := svc.RegisterVideo(r.Context(), in)
		if err != nil {
			writeDomainError(w, err, "Failed to save video metadata")
			return
		}

		RespondJSON(w, http.StatusCreated, out)
		logger.Infof(r.Context(), "✅  Successfully registered video #%s (object %q)", out.ID, out.PublicID)
	}
}
