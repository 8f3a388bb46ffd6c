package mock

import (
	"context"

	"github.com/videovault/videos-ms-go/internal/db"
	"github.com/videovault/videos-ms-go/internal/model"
)

// MockVideoRepo implements repository operations for tests.
type MockVideoRepo struct {
	VideoRecord *model.Video
	ListOut     []model.Video

	GetErr    error
	CreateErr error
	DeleteErr error
	ListErr   error

	GetCalled    bool
	Created      *model.Video
	DeleteCalled bool
	DeletedID    db.UUID
	ListCalled   bool
}

func (m *MockVideoRepo) Create(ctx context.Context, video *model.Video) error {
	m.Created = video
	return m.CreateErr
}

func (m *MockVideoRepo) GetByID(ctx context.Context, id db.UUID) (*model.Video, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.VideoRecord, nil
}

func (m *MockVideoRepo) List(ctx context.Context) ([]model.Video, error) {
	m.ListCalled = true
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListOut, nil
}

func (m *MockVideoRepo) Delete(ctx context.Context, id db.UUID) error {
	m.DeleteCalled = true
	m.DeletedID = id
	return m.DeleteErr
}
