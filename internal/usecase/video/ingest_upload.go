package video

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/videovault/videos-ms-go/internal/model"
	"github.com/videovault/videos-ms-go/internal/port"
)

type uploadIngestorSrv struct {
	repo       port.VideoRepository
	ingester   port.MediaIngester
	dispatcher port.TaskDispatcher
	genUUID    port.UUIDGen
}

// NewUploadIngestor constructs an UploadIngestor implementation.
func NewUploadIngestor(repo port.VideoRepository, ingester port.MediaIngester, dispatcher port.TaskDispatcher, genUUID port.UUIDGen) port.UploadIngestor {
	return &uploadIngestorSrv{repo: repo, ingester: ingester, dispatcher: dispatcher, genUUID: genUUID}
}

// IngestUpload streams the payload to the media service and persists the
// returned descriptor as a video record. Preconditions fail before any
// external call is made. A media-service failure performs no database write;
// a database failure after a successful upload leaves an orphaned stored
// object, for which a best-effort destroy task is queued.
func (s *uploadIngestorSrv) IngestUpload(ctx context.Context, in port.IngestUploadInput) (*model.Video, error) {
	if in.UserID == "" {
		return nil, ErrUnauthenticated
	}
	if err := validateIngestInput(in); err != nil {
		return nil, err
	}

	desc, err := s.ingester.UploadVideo(ctx, in.File, in.FileSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamIngest, err)
	}

	now := time.Now().UTC()
	video := &model.Video{
		ID:             s.genUUID(),
		Title:          in.Title,
		Description:    optionalString(in.Description),
		PublicID:       desc.PublicID,
		URL:            optionalString(desc.SecureURL),
		OriginalSize:   in.OriginalSize,
		CompressedSize: fmt.Sprintf("%d", desc.Bytes),
		Duration:       desc.Duration,
		UserID:         in.UserID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, video); err != nil {
		// the stored object has no record now; queue a best-effort destroy
		if dErr := s.dispatcher.EnqueueDestroyOrphan(ctx, desc.PublicID); dErr != nil {
			log.Printf("failed to enqueue orphan destroy for object %q: %v", desc.PublicID, dErr)
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return video, nil
}

func validateIngestInput(in port.IngestUploadInput) error {
	if in.File == nil || in.FileSize <= 0 {
		return fmt.Errorf("%w: file is required", ErrValidation)
	}
	if in.FileSize > MaxUploadSize {
		return fmt.Errorf("%w: file exceeds %d bytes", ErrValidation, MaxUploadSize)
	}
	if in.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if !IsValidSize(in.OriginalSize) {
		return fmt.Errorf("%w: original_size must be a positive byte count", ErrValidation)
	}
	return nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
