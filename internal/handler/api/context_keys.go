package api

import (
	"context"

	"github.com/videovault/videos-ms-go/internal/api_context"
	"github.com/videovault/videos-ms-go/internal/db"
)

func IDFromContext(ctx context.Context) (db.UUID, bool) {
	return api_context.IDFromContext(ctx)
}
