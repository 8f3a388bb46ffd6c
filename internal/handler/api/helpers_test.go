package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/videovault/videos-ms-go/internal/api_context"
	"github.com/videovault/videos-ms-go/internal/db"
)

func withPrincipal(req *http.Request, uid string) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), api_context.AuthUserIDKey, uid))
}

func withVideoID(req *http.Request, id db.UUID) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), api_context.IDKey, id))
}

func contains(haystack, needle string) bool {
	return needle == "" || strings.Contains(haystack, needle)
}
