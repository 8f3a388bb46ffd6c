package video

import (
	"context"
	"fmt"
	"time"

	"github.com/videovault/videos-ms-go/internal/model"
	"github.com/videovault/videos-ms-go/internal/port"
)

type videoRegistrarSrv struct {
	repo    port.VideoRepository
	genUUID port.UUIDGen
}

// NewVideoRegistrar constructs a VideoRegistrar implementation.
func NewVideoRegistrar(repo port.VideoRepository, genUUID port.UUIDGen) port.VideoRegistrar {
	return &videoRegistrarSrv{repo: repo, genUUID: genUUID}
}

// RegisterVideo persists metadata for an object the client already uploaded
// directly to the media service. Pure persistence: the caller is trusted to
// report the descriptor truthfully. CompressedSize falls back to OriginalSize
// and Duration to 0 when omitted.
func (s *videoRegistrarSrv) RegisterVideo(ctx context.Context, in port.RegisterVideoInput) (*model.Video, error) {
	if in.UserID == "" {
		return nil, ErrUnauthenticated
	}
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if in.PublicID == "" {
		return nil, fmt.Errorf("%w: public_id is required", ErrValidation)
	}
	if !IsValidSize(in.OriginalSize) {
		return nil, fmt.Errorf("%w: original_size must be a positive byte count", ErrValidation)
	}

	compressed := in.CompressedSize
	if compressed == "" {
		compressed = in.OriginalSize
	} else if !IsValidSize(compressed) {
		return nil, fmt.Errorf("%w: compressed_size must be a positive byte count", ErrValidation)
	}
	if in.Duration < 0 {
		return nil, fmt.Errorf("%w: duration cannot be negative", ErrValidation)
	}

	now := time.Now().UTC()
	video := &model.Video{
		ID:             s.genUUID(),
		Title:          in.Title,
		Description:    optionalString(in.Description),
		PublicID:       in.PublicID,
		URL:            optionalString(in.URL),
		OriginalSize:   in.OriginalSize,
		CompressedSize: compressed,
		Duration:       in.Duration,
		UserID:         in.UserID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, video); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return video, nil
}
