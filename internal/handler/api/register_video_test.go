package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/videovault/videos-ms-go/internal/db"
	"github.com/videovault/videos-ms-go/internal/mock"
	"github.com/videovault/videos-ms-go/internal/model"
	videoUC "github.com/videovault/videos-ms-go/internal/usecase/video"
)

func TestRegisterVideoHandler_NoPrincipal(t *testing.T) {
	mockSvc := &mock.MockVideoRegistrar{}
	h := RegisterVideoHandler(mockSvc)

	req := httptest.NewRequest(http.MethodPost, "/videos", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d; want 401", rec.Code)
	}
	if mockSvc.Called {
		t.Error("service must not be called without a principal")
	}
}

func TestRegisterVideoHandler_InvalidJSON(t *testing.T) {
	mockSvc := &mock.MockVideoRegistrar{}
	h := RegisterVideoHandler(mockSvc)

	req := withPrincipal(httptest.NewRequest(http.MethodPost, "/videos", strings.NewReader(`{not json`)), "user-1")
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
}

func TestRegisterVideoHandler_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing title", `{"public_id":"p2","original_size":"1000"}`},
		{"missing public id", `{"title":"clip","original_size":"1000"}`},
		{"missing original size", `{"title":"clip","public_id":"p2"}`},
		{"non-numeric original size", `{"title":"clip","public_id":"p2","original_size":"many"}`},
		{"bad url", `{"title":"clip","public_id":"p2","original_size":"1000","url":"not a url"}`},
		{"negative duration", `{"title":"clip","public_id":"p2","original_size":"1000","duration":-3}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockSvc := &mock.MockVideoRegistrar{}
			h := RegisterVideoHandler(mockSvc)

			req := withPrincipal(httptest.NewRequest(http.MethodPost, "/videos", strings.NewReader(tc.body)), "user-1")
			rec := httptest.NewRecorder()
			h(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d; want 400", rec.Code)
			}
			if mockSvc.Called {
				t.Error("service must not be called on invalid input")
			}
		})
	}
}

func TestRegisterVideoHandler_ServiceError(t *testing.T) {
	mockSvc := &mock.MockVideoRegistrar{Err: videoUC.ErrPersistence}
	h := RegisterVideoHandler(mockSvc)

	body := `{"title":"clip","public_id":"p2","original_size":"1000"}`
	req := withPrincipal(httptest.NewRequest(http.MethodPost, "/videos", strings.NewReader(body)), "user-1")
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want 500", rec.Code)
	}
	if !contains(rec.Body.String(), "Failed to save video metadata") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestRegisterVideoHandler_Success(t *testing.T) {
	created := &model.Video{ID: db.NewUUID(), Title: "clip", PublicID: "p2", UserID: "user-1"}
	mockSvc := &mock.MockVideoRegistrar{Out: created}
	h := RegisterVideoHandler(mockSvc)

	body := `{"title":"clip","description":"d","public_id":"p2","url":"https://x/p2.mp4","original_size":"2000000","compressed_size":"900000","duration":42.5}`
	req := withPrincipal(httptest.NewRequest(http.MethodPost, "/videos", strings.NewReader(body)), "user-1")
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d; want 201", rec.Code)
	}

	if mockSvc.In.UserID != "user-1" {
		t.Errorf("user = %q; want user-1", mockSvc.In.UserID)
	}
	if mockSvc.In.PublicID != "p2" || mockSvc.In.CompressedSize != "900000" || mockSvc.In.Duration != 42.5 {
		t.Errorf("input = %+v", mockSvc.In)
	}

	var out model.Video
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if out.PublicID != "p2" {
		t.Errorf("public id = %q; want p2", out.PublicID)
	}
}
