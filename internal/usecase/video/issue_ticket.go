package video

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/videovault/videos-ms-go/internal/port"
)

type ticketIssuerSrv struct {
	signer    port.UploadSigner
	cloudName string
	apiKey    string
	folder    string
	now       func() time.Time
}

// NewTicketIssuer constructs a TicketIssuer implementation. The signature
// binds the destination folder and the current timestamp; expiry is whatever
// timestamp skew the media service enforces, nothing is tracked here.
func NewTicketIssuer(signer port.UploadSigner, cloudName, apiKey, folder string, now func() time.Time) port.TicketIssuer {
	if now == nil {
		now = time.Now
	}
	return &ticketIssuerSrv{signer: signer, cloudName: cloudName, apiKey: apiKey, folder: folder, now: now}
}

func (s *ticketIssuerSrv) IssueUploadTicket(ctx context.Context) (port.UploadTicketOutput, error) {
	ts := s.now().Unix()

	params := url.Values{}
	params.Set("folder", s.folder)
	params.Set("timestamp", strconv.FormatInt(ts, 10))

	return port.UploadTicketOutput{
		Timestamp:         ts,
		Signature:         s.signer.SignUploadParams(params),
		DestinationFolder: s.folder,
		CloudName:         s.cloudName,
		APIKey:            s.apiKey,
	}, nil
}
