package mock

import "context"

// MockDispatcher implements task dispatching for tests.
type MockDispatcher struct {
	DestroyOrphanCalled bool
	DestroyOrphanIDs    []string
	DestroyOrphanErr    error
}

func (m *MockDispatcher) EnqueueDestroyOrphan(ctx context.Context, publicID string) error {
	m.DestroyOrphanCalled = true
	m.DestroyOrphanIDs = append(m.DestroyOrphanIDs, publicID)
	return m.DestroyOrphanErr
}
