package video

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/videovault/videos-ms-go/internal/db"
	"github.com/videovault/videos-ms-go/internal/mock"
	"github.com/videovault/videos-ms-go/internal/port"
)

func newUploadInput() port.IngestUploadInput {
	return port.IngestUploadInput{
		UserID:       "user-1",
		File:         strings.NewReader("payload"),
		FileSize:     7,
		Title:        "My holiday",
		Description:  "a week in the alps",
		OriginalSize: "1000000",
	}
}

func TestIngestUpload_NoPrincipal(t *testing.T) {
	repo := &mock.MockVideoRepo{}
	ing := &mock.Ingester{}
	svc := NewUploadIngestor(repo, ing, &mock.MockDispatcher{}, db.NewUUID)

	in := newUploadInput()
	in.UserID = ""
	_, err := svc.IngestUpload(context.Background(), in)
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if ing.UploadCalled {
		t.Error("expected no upload for unauthenticated caller")
	}
	if repo.Created != nil {
		t.Error("expected no record to be created")
	}
}

func TestIngestUpload_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*port.IngestUploadInput)
	}{
		{"missing file", func(in *port.IngestUploadInput) { in.File = nil }},
		{"empty file", func(in *port.IngestUploadInput) { in.FileSize = 0 }},
		{"oversized file", func(in *port.IngestUploadInput) { in.FileSize = MaxUploadSize + 1 }},
		{"missing title", func(in *port.IngestUploadInput) { in.Title = "" }},
		{"missing original size", func(in *port.IngestUploadInput) { in.OriginalSize = "" }},
		{"non-numeric original size", func(in *port.IngestUploadInput) { in.OriginalSize = "12a4" }},
		{"zero original size", func(in *port.IngestUploadInput) { in.OriginalSize = "0" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mock.MockVideoRepo{}
			ing := &mock.Ingester{}
			dispatcher := &mock.MockDispatcher{}
			svc := NewUploadIngestor(repo, ing, dispatcher, db.NewUUID)

			in := newUploadInput()
			tc.mutate(&in)

			_, err := svc.IngestUpload(context.Background(), in)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if ing.UploadCalled {
				t.Error("expected no upload on invalid input")
			}
			if repo.Created != nil {
				t.Error("expected no record on invalid input")
			}
			if dispatcher.DestroyOrphanCalled {
				t.Error("expected no orphan task on invalid input")
			}
		})
	}
}

func TestIngestUpload_UpstreamError(t *testing.T) {
	repo := &mock.MockVideoRepo{}
	ing := &mock.Ingester{UploadErr: errors.New("provider down")}
	svc := NewUploadIngestor(repo, ing, &mock.MockDispatcher{}, db.NewUUID)

	_, err := svc.IngestUpload(context.Background(), newUploadInput())
	if !errors.Is(err, ErrUpstreamIngest) {
		t.Fatalf("expected ErrUpstreamIngest, got %v", err)
	}
	if repo.Created != nil {
		t.Error("expected no record when the upload fails")
	}
}

func TestIngestUpload_PersistenceError(t *testing.T) {
	repo := &mock.MockVideoRepo{CreateErr: errors.New("insert fail")}
	ing := &mock.Ingester{DescriptorOut: port.UploadDescriptor{
		PublicID:  "p1",
		SecureURL: "https://x/p1.mp4",
		Bytes:     500000,
		Duration:  12,
	}}
	dispatcher := &mock.MockDispatcher{}
	svc := NewUploadIngestor(repo, ing, dispatcher, db.NewUUID)

	_, err := svc.IngestUpload(context.Background(), newUploadInput())
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
	if !dispatcher.DestroyOrphanCalled {
		t.Error("expected an orphan destroy task to be enqueued")
	}
	if len(dispatcher.DestroyOrphanIDs) != 1 || dispatcher.DestroyOrphanIDs[0] != "p1" {
		t.Errorf("orphan task public id = %v; want [p1]", dispatcher.DestroyOrphanIDs)
	}
}

func TestIngestUpload_DispatcherErrorKeepsPersistenceError(t *testing.T) {
	repo := &mock.MockVideoRepo{CreateErr: errors.New("insert fail")}
	ing := &mock.Ingester{DescriptorOut: port.UploadDescriptor{PublicID: "p1"}}
	dispatcher := &mock.MockDispatcher{DestroyOrphanErr: errors.New("queue down")}
	svc := NewUploadIngestor(repo, ing, dispatcher, db.NewUUID)

	_, err := svc.IngestUpload(context.Background(), newUploadInput())
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
}

func TestIngestUpload_Success(t *testing.T) {
	repo := &mock.MockVideoRepo{}
	ing := &mock.Ingester{DescriptorOut: port.UploadDescriptor{
		PublicID:  "p1",
		SecureURL: "https://x/p1.mp4",
		Bytes:     500000,
		Duration:  12,
	}}
	dispatcher := &mock.MockDispatcher{}
	svc := NewUploadIngestor(repo, ing, dispatcher, db.NewUUID)

	out, err := svc.IngestUpload(context.Background(), newUploadInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !ing.UploadCalled {
		t.Fatal("expected the payload to be uploaded")
	}
	if string(ing.UploadedBody) != "payload" {
		t.Errorf("uploaded body = %q; want %q", ing.UploadedBody, "payload")
	}
	if repo.Created == nil {
		t.Fatal("expected a record to be created")
	}
	if repo.Created != out {
		t.Error("expected the created record to be returned")
	}

	if out.Title != "My holiday" {
		t.Errorf("title = %q", out.Title)
	}
	if out.Description == nil || *out.Description != "a week in the alps" {
		t.Errorf("description = %v", out.Description)
	}
	if out.PublicID != "p1" {
		t.Errorf("public id = %q; want p1", out.PublicID)
	}
	if out.URL == nil || *out.URL != "https://x/p1.mp4" {
		t.Errorf("url = %v", out.URL)
	}
	if out.OriginalSize != "1000000" {
		t.Errorf("original size = %q; want 1000000", out.OriginalSize)
	}
	if out.CompressedSize != "500000" {
		t.Errorf("compressed size = %q; want 500000", out.CompressedSize)
	}
	if out.Duration != 12 {
		t.Errorf("duration = %v; want 12", out.Duration)
	}
	if out.UserID != "user-1" {
		t.Errorf("user id = %q; want user-1", out.UserID)
	}
	if out.CreatedAt.IsZero() || !out.CreatedAt.Equal(out.UpdatedAt) {
		t.Errorf("timestamps = %v / %v", out.CreatedAt, out.UpdatedAt)
	}
	if dispatcher.DestroyOrphanCalled {
		t.Error("expected no orphan task on success")
	}
}
