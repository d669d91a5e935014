package deleteappointment

import (
	"apptrack/internal/core/domain/appointment"
	e "apptrack/internal/core/domain/errors"
	"apptrack/internal/core/services"
	service "apptrack/internal/core/services/delete_appointment"
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

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	ownerID, ok := owner.FromContext(r.Context())
	if !ok {
		response.RenderError(rw, "owner is not set", http.StatusBadRequest)
		return
	}
	appointmentID := chi.URLParam(r, "appointmentID")
	if appointmentID == "" {
		response.RenderNotFound(rw)
		return
	}

	_, err := h.service.Run(
		r.Context(),
		service.Input{ID: appointment.ID(appointmentID), OwnerID: ownerID},
	)
	if err != nil {
		switch {
		case errors.Is(err, appointment.ErrAppointmentDoesNotExist):
			response.RenderNotFound(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	rw.WriteHeader(http.StatusNoContent)
}
