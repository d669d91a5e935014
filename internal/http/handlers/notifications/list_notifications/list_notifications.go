package listnotifications

import (
	e "apptrack/internal/core/domain/errors"
	"apptrack/internal/core/services"
	service "apptrack/internal/core/services/list_notifications"
	"apptrack/internal/http/handlers/owner"
	"apptrack/internal/http/handlers/response"
	"net/http"
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
	Notifications []response.Notification `json:"notifications"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	ownerID, ok := owner.FromContext(r.Context())
	if !ok {
		response.RenderError(rw, "owner is not set", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{OwnerID: ownerID})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	respNotifications := make([]response.Notification, 0, len(result.Notifications))
	for _, n := range result.Notifications {
		respNotification := response.Notification{}
		respNotification.FromDomainType(n)
		respNotifications = append(respNotifications, respNotification)
	}
	response.Render(rw, Result{Notifications: respNotifications}, http.StatusOK)
}
