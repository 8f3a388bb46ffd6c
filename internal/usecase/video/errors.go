package video

import "errors"

var (
	ErrUnauthenticated = errors.New("auth: no principal")
	ErrValidation      = errors.New("video: invalid input")
	ErrNotFound        = errors.New("video: not found")
	ErrForbidden       = errors.New("video: not owner")
	ErrUpstreamIngest  = errors.New("ingest: media service failure")
	ErrPersistence     = errors.New("store: persistence failure")
)
