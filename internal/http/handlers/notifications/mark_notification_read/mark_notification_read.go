package marknotificationread

import (
	e "apptrack/internal/core/domain/errors"
	"apptrack/internal/core/domain/notification"
	"apptrack/internal/core/services"
	service "apptrack/internal/core/services/mark_notification_read"
	"apptrack/internal/http/handlers/owner"
	"apptrack/internal/http/handlers/response"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Notification response.Notification `json:"notification"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	ownerID, ok := owner.FromContext(r.Context())
	if !ok {
		response.RenderError(rw, "owner is not set", http.StatusBadRequest)
		return
	}
	notificationID := chi.URLParam(r, "notificationID")
	if notificationID == "" {
		response.RenderError(rw, "notification does not exist", http.StatusNotFound)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{ID: notification.ID(notificationID), OwnerID: ownerID},
	)
	if err != nil {
		switch {
		case errors.Is(err, notification.ErrNotificationDoesNotExist):
			response.RenderError(rw, "notification does not exist", http.StatusNotFound)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	respNotification := response.Notification{}
	respNotification.FromDomainType(result.Notification)
	response.Render(rw, Result{Notification: respNotification}, http.StatusOK)
}
