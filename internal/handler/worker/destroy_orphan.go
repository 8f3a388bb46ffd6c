package worker

import (
	"context"
	"log"

	"github.com/videovault/videos-ms-go/internal/port"
	"github.com/videovault/videos-ms-go/internal/task"
)

// DestroyOrphanHandler handles a destroy-orphan task: it deletes a stored
// object whose database record was never written. Errors propagate so the
// queue retries the destroy later.
func DestroyOrphanHandler(ctx context.Context, p task.DestroyOrphanPayload, ingester port.MediaIngester) error {
	if err := ingester.DestroyVideo(ctx, p.PublicID); err != nil {
		log.Printf("❌  Failed to destroy orphaned object %q: %v", p.PublicID, err)
		return err
	}

	log.Printf("✅  Successfully destroyed orphaned object %q", p.PublicID)
	return nil
}
