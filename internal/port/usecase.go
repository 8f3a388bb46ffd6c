package port

import (
	"context"
	"io"
	"time"

	"github.com/videovault/videos-ms-go/internal/db"
	"github.com/videovault/videos-ms-go/internal/model"
)

type UUIDGen func() db.UUID

// UploadIngestor coordinates a proxied upload: stream the bytes to the media
// service, then persist the returned descriptor as a video record.
type UploadIngestor interface {
	IngestUpload(ctx context.Context, in IngestUploadInput) (*model.Video, error)
}

type IngestUploadInput struct {
	UserID       string
	File         io.Reader
	FileSize     int64
	Title        string
	Description  string
	OriginalSize string
}

// VideoRegistrar persists metadata for an object a client already uploaded
// directly to the media service with a signed ticket.
type VideoRegistrar interface {
	RegisterVideo(ctx context.Context, in RegisterVideoInput) (*model.Video, error)
}

type RegisterVideoInput struct {
	UserID         string
	Title          string
	Description    string
	PublicID       string
	URL            string
	OriginalSize   string
	CompressedSize string
	Duration       float64
}

// TicketIssuer produces a time-scoped signature a client replays verbatim to
// the media service to upload bytes directly.
type TicketIssuer interface {
	IssueUploadTicket(ctx context.Context) (UploadTicketOutput, error)
}

type UploadTicketOutput struct {
	Timestamp         int64  `json:"timestamp"`
	Signature         string `json:"signature"`
	DestinationFolder string `json:"destination_folder"`
	CloudName         string `json:"cloud_name"`
	APIKey            string `json:"api_key"`
}

// VideoDeleter removes a video's stored object and its record, in that order.
type VideoDeleter interface {
	DeleteVideo(ctx context.Context, id db.UUID, userID string) error
}

// VideoGetter retrieves one video record.
type VideoGetter interface {
	GetVideo(ctx context.Context, id db.UUID) (*GetVideoOutput, error)
}

type GetVideoOutput struct {
	ValidUntil time.Time   `json:"valid_until"`
	Video      model.Video `json:"video"`
}

// VideoLister returns the feed of video records, newest first.
type VideoLister interface {
	ListVideos(ctx context.Context) ([]model.Video, error)
}
