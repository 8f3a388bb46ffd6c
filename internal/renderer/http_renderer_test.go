package renderer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/crc32"
	"testing"
	"time"

	"github.com/videovault/videos-ms-go/internal/db"
	"github.com/videovault/videos-ms-go/internal/mock"
	"github.com/videovault/videos-ms-go/internal/model"
	"github.com/videovault/videos-ms-go/internal/port"
)

func TestRenderGetVideo_CacheHit(t *testing.T) {
	cached := []byte(`{"video":{"title":"clip"}}`)
	cache := &mock.Cache{VideoOut: cached, EtagVideo: `"11223344"`}
	getter := &mock.MockVideoGetter{}
	r := NewHTTPRenderer(cache)

	raw, etag, err := r.RenderGetVideo(context.Background(), getter, db.NewUUID())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != string(cached) {
		t.Errorf("raw = %q; want the cached payload", raw)
	}
	if etag != `"11223344"` {
		t.Errorf("etag = %q", etag)
	}
	if getter.Called {
		t.Error("getter must not run on a cache hit")
	}
}

func TestRenderGetVideo_CacheMiss(t *testing.T) {
	out := &port.GetVideoOutput{
		ValidUntil: time.Now().Add(2 * time.Minute),
		Video:      model.Video{ID: db.NewUUID(), Title: "clip"},
	}
	cache := &mock.Cache{}
	getter := &mock.MockVideoGetter{Out: out}
	r := NewHTTPRenderer(cache)

	raw, etag, err := r.RenderGetVideo(context.Background(), getter, out.Video.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !getter.Called {
		t.Fatal("expected the getter to run on a cache miss")
	}

	want, err := json.Marshal(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != string(want) {
		t.Errorf("raw = %q; want %q", raw, want)
	}

	wantEtag := fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(want))
	if etag != wantEtag {
		t.Errorf("etag = %q; want %q", etag, wantEtag)
	}

	if !cache.SetVideoCalled || !cache.SetEtagVideoCalled {
		t.Error("expected the output and its etag to be cached")
	}
}

func TestRenderGetVideo_GetterError(t *testing.T) {
	cache := &mock.Cache{}
	getter := &mock.MockVideoGetter{Err: errors.New("boom")}
	r := NewHTTPRenderer(cache)

	_, _, err := r.RenderGetVideo(context.Background(), getter, db.NewUUID())
	if err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
	if cache.SetVideoCalled {
		t.Error("nothing must be cached on failure")
	}
}

func TestRenderGetVideo_CacheErrorFallsThrough(t *testing.T) {
	out := &port.GetVideoOutput{
		ValidUntil: time.Now().Add(time.Minute),
		Video:      model.Video{ID: db.NewUUID(), Title: "clip"},
	}
	cache := &mock.Cache{GetVideoErr: errors.New("redis down")}
	getter := &mock.MockVideoGetter{Out: out}
	r := NewHTTPRenderer(cache)

	raw, _, err := r.RenderGetVideo(context.Background(), getter, out.Video.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !getter.Called {
		t.Error("expected the getter to run when the cache errors")
	}
	if len(raw) == 0 {
		t.Error("expected a rendered payload")
	}
}
