package model

import (
	"time"

	"github.com/videovault/videos-ms-go/internal/db"
)

// Video is the persisted record describing one uploaded video and its
// provider-assigned identifiers. UserID is set once at creation and is the
// sole ownership key used for authorisation on deletion. OriginalSize and
// CompressedSize are byte counts kept as numeric strings so very large files
// never lose precision on the way through JSON.
type Video struct {
	ID             db.UUID   `json:"id"`
	Title          string    `json:"title"`
	Description    *string   `json:"description,omitempty"`
	PublicID       string    `json:"public_id"`
	URL            *string   `json:"url,omitempty"`
	OriginalSize   string    `json:"original_size"`
	CompressedSize string    `json:"compressed_size"`
	Duration       float64   `json:"duration"`
	UserID         string    `json:"user_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
