package port

import (
	"context"
	"io"
	"net/url"
)

// UploadDescriptor is what the media service reports back once bytes are
// fully transmitted: its identifier for the stored object, the canonical
// retrieval URL, and what it measured during transcoding.
type UploadDescriptor struct {
	PublicID  string
	SecureURL string
	Bytes     int64
	Duration  float64
}

// MediaIngester is the boundary adapter to the external transcoding/storage
// provider. UploadVideo suspends until the provider returns a descriptor or
// fails; it never writes anything locally.
type MediaIngester interface {
	UploadVideo(ctx context.Context, r io.Reader, size int64) (UploadDescriptor, error)
	DestroyVideo(ctx context.Context, publicID string) error
}

// UploadSigner produces the provider-verifiable signature over a set of
// upload parameters. The signing secret never leaves the implementation.
type UploadSigner interface {
	SignUploadParams(params url.Values) string
}
