package api

import (
	"net/http"

	"github.com/videovault/videos-ms-go/internal/logger"
	"github.com/videovault/videos-ms-go/internal/port"
)

// IssueSignatureHandler returns a time-scoped upload ticket so the client can
// push bytes straight to the media service. The signing secret stays server
// side; only the signature travels.
func IssueSignatureHandler(svc port.TicketIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := principalFromRequest(w, r); !ok {
			return
		}

		out, err := svc.IssueUploadTicket(r.Context())
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not issue upload ticket", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Info(r.Context(), "✅  Successfully issued a direct-upload ticket")
	}
}
