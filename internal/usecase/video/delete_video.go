package video

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/videovault/videos-ms-go/internal/db"
	"github.com/videovault/videos-ms-go/internal/port"
)

type videoDeleterSrv struct {
	repo     port.VideoRepository
	ingester port.MediaIngester
	cache    port.Cache
}

// NewVideoDeleter constructs a VideoDeleter implementation.
func NewVideoDeleter(repo port.VideoRepository, ingester port.MediaIngester, cache port.Cache) port.VideoDeleter {
	return &videoDeleterSrv{repo: repo, ingester: ingester, cache: cache}
}

// DeleteVideo removes the stored object from the media service first, then
// deletes the record. A failed remote delete leaves the record intact and
// re-deletable; a failed record delete after a successful remote delete
// leaves a dangling record. No rollback spans the two systems.
func (s *videoDeleterSrv) DeleteVideo(ctx context.Context, id db.UUID, userID string) error {
	if userID == "" {
		return ErrUnauthenticated
	}

	video, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if video.UserID != userID {
		return ErrForbidden
	}

	if err := s.ingester.DestroyVideo(ctx, video.PublicID); err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamIngest, err)
	}

	if err := s.repo.Delete(ctx, video.ID); err != nil {
		// a concurrent delete of the same id may have won the race between the
		// lookup and this point; that caller already cleaned everything up
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if err := s.cache.DeleteVideoDetails(ctx, video.ID); err != nil {
		log.Printf("failed deleting cache for video #%s: %v", video.ID, err)
	}
	if err := s.cache.DeleteEtagVideoDetails(ctx, video.ID); err != nil {
		log.Printf("failed deleting etag cache for video #%s: %v", video.ID, err)
	}

	return nil
}
