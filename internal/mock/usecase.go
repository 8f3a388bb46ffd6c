package mock

import (
	"context"

	"github.com/videovault/videos-ms-go/internal/db"
	"github.com/videovault/videos-ms-go/internal/model"
	"github.com/videovault/videos-ms-go/internal/port"
)

// MockUploadIngestor implements port.UploadIngestor for tests.
type MockUploadIngestor struct {
	Out    *model.Video
	Err    error
	Called bool
	In     port.IngestUploadInput
}

func (m *MockUploadIngestor) IngestUpload(ctx context.Context, in port.IngestUploadInput) (*model.Video, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockVideoRegistrar implements port.VideoRegistrar for tests.
type MockVideoRegistrar struct {
	Out    *model.Video
	Err    error
	Called bool
	In     port.RegisterVideoInput
}

func (m *MockVideoRegistrar) RegisterVideo(ctx context.Context, in port.RegisterVideoInput) (*model.Video, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockTicketIssuer implements port.TicketIssuer for tests.
type MockTicketIssuer struct {
	Out    port.UploadTicketOutput
	Err    error
	Called bool
}

func (m *MockTicketIssuer) IssueUploadTicket(ctx context.Context) (port.UploadTicketOutput, error) {
	m.Called = true
	return m.Out, m.Err
}

// MockVideoDeleter implements port.VideoDeleter for tests.
type MockVideoDeleter struct {
	Err    error
	Called bool
	ID     db.UUID
	UserID string
}

func (m *MockVideoDeleter) DeleteVideo(ctx context.Context, id db.UUID, userID string) error {
	m.Called = true
	m.ID = id
	m.UserID = userID
	return m.Err
}

// MockVideoGetter implements port.VideoGetter for tests.
type MockVideoGetter struct {
	Out    *port.GetVideoOutput
	Err    error
	Called bool
}

func (m *MockVideoGetter) GetVideo(ctx context.Context, id db.UUID) (*port.GetVideoOutput, error) {
	m.Called = true
	return m.Out, m.Err
}

// MockVideoLister implements port.VideoLister for tests.
type MockVideoLister struct {
	Out    []model.Video
	Err    error
	Called bool
}

func (m *MockVideoLister) ListVideos(ctx context.Context) ([]model.Video, error) {
	m.Called = true
	return m.Out, m.Err
}
