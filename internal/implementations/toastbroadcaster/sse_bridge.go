package toastbroadcaster

import (
	e "apptrack/internal/core/domain/errors"
	"apptrack/internal/core/domain/logging"
	"apptrack/internal/core/domain/notification"
	"context"
	"encoding/json"

	"github.com/r3labs/sse/v2"
)

type toastEvent struct {
	ID           string `json:"id"`
	Kind         string `json:"kind"`
	Message      string `json:"message"`
	DisplayForMs int64  `json:"display_for_ms"`
}

// SSEBridge forwards broadcast toasts onto the owner's SSE stream so a
// connected dashboard can render them. Owners without an open stream simply
// miss the toast.
type SSEBridge struct {
	log         logging.Logger
	sseServer   *sse.Server
	unsubscribe notification.Unsubscribe
}

func NewSSEBridge(
	log logging.Logger,
	sseServer *sse.Server,
	broadcaster notification.ToastBroadcaster,
) *SSEBridge {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	if broadcaster == nil {
		panic(e.NewNilArgumentError("broadcaster"))
	}
	bridge := &SSEBridge{log: log, sseServer: sseServer}
	bridge.unsubscribe = broadcaster.Subscribe(bridge.forward)
	return bridge
}

func (b *SSEBridge) Close() {
	b.unsubscribe()
}

func (b *SSEBridge) forward(toast notification.Toast) {
	streamID := string(toast.OwnerID)
	if !b.sseServer.StreamExists(streamID) {
		return
	}
	data, err := json.Marshal(toastEvent{
		ID:           string(toast.ID),
		Kind:         toast.Kind.String(),
		Message:      toast.Message,
		DisplayForMs: toast.DisplayFor.Milliseconds(),
	})
	if err != nil {
		logging.Error(context.Background(), b.log, err, logging.Entry("toastID", toast.ID))
		return
	}
	b.sseServer.Publish(streamID, &sse.Event{Event: []byte("toast"), Data: data})
}
