package events

import (
	e "apptrack/internal/core/domain/errors"
	"apptrack/internal/core/domain/logging"
	"apptrack/internal/http/handlers/owner"
	"apptrack/internal/http/handlers/response"
	"net/http"

	"github.com/r3labs/sse/v2"
)

// Handler streams live toast events to the browser over SSE. Each owner
// subscribes to their own stream; the stream id must match the requesting
// owner.
type Handler struct {
	log       logging.Logger
	sseServer *sse.Server
}

func New(
	log logging.Logger,
	sseServer *sse.Server,
) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	return &Handler{log: log, sseServer: sseServer}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	ownerID, ok := owner.FromContext(r.Context())
	if !ok {
		response.RenderError(rw, "owner is not set", http.StatusBadRequest)
		return
	}

	streamID := r.URL.Query().Get("stream")
	if streamID != string(ownerID) {
		response.RenderError(rw, "invalid stream", http.StatusBadRequest)
		return
	}

	go func() {
		// Received browser disconnection
		<-r.Context().Done()
		h.log.Info(
			r.Context(),
			"Unsubscribed from notification events.",
			logging.Entry("ownerID", ownerID),
		)
		h.sseServer.RemoveStream(streamID)
	}()

	h.log.Info(
		r.Context(),
		"Subscribed to notification events.",
		logging.Entry("ownerID", ownerID),
		logging.Entry("streamID", streamID),
	)
	h.sseServer.ServeHTTP(rw, r)
}
