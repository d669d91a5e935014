package updateappointment

import (
	"apptrack/internal/core/domain/appointment"
	c "apptrack/internal/core/domain/common"
	e "apptrack/internal/core/domain/errors"
	"apptrack/internal/core/services"
	service "apptrack/internal/core/services/update_appointment"
	"apptrack/internal/http/handlers/owner"
	"apptrack/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

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

type Input struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	StartAt         *time.Time `json:"start_at"`
	EndAt           *time.Time `json:"end_at"`
	Priority        *string    `json:"priority"`
	ReminderMinutes *int       `json:"reminder_minutes"`
}

type Result struct {
	Appointment response.Appointment `json:"appointment"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
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

	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}

	serviceInput := service.Input{
		ID:      appointment.ID(appointmentID),
		OwnerID: ownerID,
	}
	if input.Title != nil {
		serviceInput.Title = c.NewOptional(*input.Title, true)
	}
	if input.Description != nil {
		serviceInput.Description = c.NewOptional(*input.Description, true)
	}
	if input.StartAt != nil {
		serviceInput.StartAt = c.NewOptional(input.StartAt.UTC(), true)
	}
	if input.EndAt != nil {
		serviceInput.EndAt = c.NewOptional(input.EndAt.UTC(), true)
	}
	if input.Priority != nil {
		p, err := appointment.ParsePriority(*input.Priority)
		if err != nil {
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
			return
		}
		serviceInput.Priority = c.NewOptional(p, true)
	}
	if input.ReminderMinutes != nil {
		serviceInput.ReminderMinutes = c.NewOptional(*input.ReminderMinutes, true)
	}

	result, err := h.service.Run(r.Context(), serviceInput)
	if err != nil {
		switch {
		case errors.Is(err, appointment.ErrAppointmentDoesNotExist):
			response.RenderNotFound(rw)
		case isExpectedError(err):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	apt := response.Appointment{}
	apt.FromDomainType(result.Appointment)
	response.Render(rw, Result{Appointment: apt}, http.StatusOK)
}

func isExpectedError(err error) bool {
	return (errors.Is(err, appointment.ErrTitleIsEmpty) ||
		errors.Is(err, appointment.ErrStartTimeNotSet) ||
		errors.Is(err, appointment.ErrEndBeforeStart) ||
		errors.Is(err, appointment.ErrNegativeReminderMinutes))
}
