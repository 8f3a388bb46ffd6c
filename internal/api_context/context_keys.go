package api_context

import (
	"context"

	"github.com/videovault/videos-ms-go/internal/db"
)

type ctxKey string

const (
	IDKey         ctxKey = "id"
	AuthUserIDKey ctxKey = "authUserID"
)

func IDFromContext(ctx context.Context) (db.UUID, bool) {
	id, ok := ctx.Value(IDKey).(db.UUID)
	return id, ok
}

// AuthUserIDFromContext returns the authenticated principal attached to the
// request, if any. The identifier is opaque: it is whatever the identity
// provider put in the session token's sub claim.
func AuthUserIDFromContext(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(AuthUserIDKey).(string)
	return uid, ok
}
