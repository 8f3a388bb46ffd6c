package task

import (
	"context"

	"github.com/videovault/videos-ms-go/internal/port"
)

type NoopDispatcher struct{}

var _ port.TaskDispatcher = (*NoopDispatcher)(nil)

func NewNoopDispatcher() *NoopDispatcher { return &NoopDispatcher{} }

func (d *NoopDispatcher) EnqueueDestroyOrphan(ctx context.Context, publicID string) error {
	return nil
}
