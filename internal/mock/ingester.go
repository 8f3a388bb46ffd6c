package mock

import (
	"context"
	"io"
	"net/url"

	"github.com/videovault/videos-ms-go/internal/port"
)

// Ingester implements port.MediaIngester for tests.
type Ingester struct {
	// stored values
	DescriptorOut port.UploadDescriptor

	// captured inputs
	UploadedBody []byte
	UploadedSize int64
	DestroyedIDs []string

	// errors
	UploadErr  error
	DestroyErr error

	// call flags
	UploadCalled  bool
	DestroyCalled bool
}

func (m *Ingester) UploadVideo(ctx context.Context, r io.Reader, size int64) (port.UploadDescriptor, error) {
	m.UploadCalled = true
	m.UploadedSize = size
	if r != nil {
		m.UploadedBody, _ = io.ReadAll(r)
	}
	if m.UploadErr != nil {
		return port.UploadDescriptor{}, m.UploadErr
	}
	return m.DescriptorOut, nil
}

func (m *Ingester) DestroyVideo(ctx context.Context, publicID string) error {
	m.DestroyCalled = true
	m.DestroyedIDs = append(m.DestroyedIDs, publicID)
	return m.DestroyErr
}

// Signer implements port.UploadSigner for tests.
type Signer struct {
	SignatureOut string

	Called bool
	Params url.Values
}

func (m *Signer) SignUploadParams(params url.Values) string {
	m.Called = true
	m.Params = params
	return m.SignatureOut
}
