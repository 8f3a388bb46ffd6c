package video

import (
	"context"
	"fmt"

	"github.com/videovault/videos-ms-go/internal/model"
	"github.com/videovault/videos-ms-go/internal/port"
)

type videoListerSrv struct {
	repo port.VideoRepository
}

// NewVideoLister constructs a VideoLister implementation.
func NewVideoLister(repo port.VideoRepository) port.VideoLister {
	return &videoListerSrv{repo: repo}
}

func (s *videoListerSrv) ListVideos(ctx context.Context) ([]model.Video, error) {
	videos, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return videos, nil
}
