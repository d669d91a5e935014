package listappointments

import (
	"apptrack/internal/core/domain/appointment"
	c "apptrack/internal/core/domain/common"
	e "apptrack/internal/core/domain/errors"
	"apptrack/internal/core/services"
	service "apptrack/internal/core/services/list_appointments"
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
	Appointments []response.Appointment `json:"appointments"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	ownerID, ok := owner.FromContext(r.Context())
	if !ok {
		response.RenderError(rw, "owner is not set", http.StatusBadRequest)
		return
	}

	var statusEquals c.Optional[appointment.Status]
	rawStatus := r.URL.Query().Get("status")
	if rawStatus != "" {
		status, err := appointment.ParseStatus(rawStatus)
		if err != nil {
			response.RenderError(rw, "invalid status query parameter", http.StatusBadRequest)
			return
		}
		statusEquals = c.NewOptional(status, true)
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{OwnerID: ownerID, StatusEquals: statusEquals},
	)
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	respAppointments := make([]response.Appointment, 0, len(result.Appointments))
	for _, apt := range result.Appointments {
		respApt := response.Appointment{}
		respApt.FromDomainType(apt)
		respAppointments = append(respAppointments, respApt)
	}
	response.Render(rw, Result{Appointments: respAppointments}, http.StatusOK)
}
