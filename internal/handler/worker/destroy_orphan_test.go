package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/videovault/videos-ms-go/internal/mock"
	"github.com/videovault/videos-ms-go/internal/task"
)

func TestDestroyOrphanHandler_Success(t *testing.T) {
	ing := &mock.Ingester{}
	p := task.DestroyOrphanPayload{PublicID: "video-uploads/p1"}

	if err := DestroyOrphanHandler(context.Background(), p, ing); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ing.DestroyCalled || ing.DestroyedIDs[0] != "video-uploads/p1" {
		t.Error("expected the orphaned object to be destroyed")
	}
}

func TestDestroyOrphanHandler_Error(t *testing.T) {
	ing := &mock.Ingester{DestroyErr: errors.New("provider down")}
	p := task.DestroyOrphanPayload{PublicID: "video-uploads/p1"}

	err := DestroyOrphanHandler(context.Background(), p, ing)
	if err == nil {
		t.Fatal("expected the error to propagate for a retry")
	}
}
