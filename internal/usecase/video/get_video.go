package video

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/videovault/videos-ms-go/internal/db"
	"github.com/videovault/videos-ms-go/internal/port"
)

type videoGetterSrv struct {
	repo port.VideoRepository
}

// NewVideoGetter constructs a VideoGetter implementation.
func NewVideoGetter(repo port.VideoRepository) port.VideoGetter {
	return &videoGetterSrv{repo: repo}
}

func (s *videoGetterSrv) GetVideo(ctx context.Context, id db.UUID) (*port.GetVideoOutput, error) {
	video, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return &port.GetVideoOutput{
		ValidUntil: time.Now().Add(DetailsTTL),
		Video:      *video,
	}, nil
}
