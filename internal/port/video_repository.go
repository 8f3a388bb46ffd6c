package port

import (
	"context"

	"github.com/videovault/videos-ms-go/internal/db"
	"github.com/videovault/videos-ms-go/internal/model"
)

// VideoRepository defines persistence operations for video records.
type VideoRepository interface {
	Create(ctx context.Context, video *model.Video) error
	GetByID(ctx context.Context, ID db.UUID) (*model.Video, error)
	List(ctx context.Context) ([]model.Video, error)
	Delete(ctx context.Context, ID db.UUID) error
}
