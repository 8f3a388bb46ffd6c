package mock

import (
	"context"

	"github.com/videovault/videos-ms-go/internal/db"
	"github.com/videovault/videos-ms-go/internal/port"
)

// MockHTTPRenderer implements port.HTTPRenderer for tests.
type MockHTTPRenderer struct {
	Data []byte
	Etag string
	Err  error

	Called bool
	Getter port.VideoGetter
	ID     db.UUID
}

func (m *MockHTTPRenderer) RenderGetVideo(ctx context.Context, getter port.VideoGetter, id db.UUID) ([]byte, string, error) {
	m.Called = true
	m.Getter = getter
	m.ID = id
	return m.Data, m.Etag, m.Err
}
