package createappointment

import (
	"apptrack/internal/core/domain/appointment"
	e "apptrack/internal/core/domain/errors"
	"apptrack/internal/core/services"
	service "apptrack/internal/core/services/create_appointment"
	"apptrack/internal/http/handlers/owner"
	"apptrack/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
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
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	StartAt         time.Time  `json:"start_at"`
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

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Title, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.Description, validation.Length(0, 4096)),
		validation.Field(&i.StartAt, validation.Required),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	ownerID, ok := owner.FromContext(r.Context())
	if !ok {
		response.RenderError(rw, "owner is not set", http.StatusBadRequest)
		return
	}

	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	var priority appointment.Priority
	if input.Priority != nil {
		p, err := appointment.ParsePriority(*input.Priority)
		if err != nil {
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
			return
		}
		priority = p
	}
	var endAt time.Time
	if input.EndAt != nil {
		endAt = input.EndAt.UTC()
	}
	reminderMinutes := 0
	if input.ReminderMinutes != nil {
		reminderMinutes = *input.ReminderMinutes
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			OwnerID:         ownerID,
			Title:           input.Title,
			Description:     input.Description,
			StartAt:         input.StartAt.UTC(),
			EndAt:           endAt,
			Priority:        priority,
			ReminderMinutes: reminderMinutes,
		},
	)
	if err != nil {
		switch {
		case isExpectedError(err):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	apt := response.Appointment{}
	apt.FromDomainType(result.Appointment)
	response.Render(rw, Result{Appointment: apt}, http.StatusCreated)
}

func isExpectedError(err error) bool {
	return (errors.Is(err, appointment.ErrTitleIsEmpty) ||
		errors.Is(err, appointment.ErrStartTimeNotSet) ||
		errors.Is(err, appointment.ErrEndBeforeStart) ||
		errors.Is(err, appointment.ErrNegativeReminderMinutes))
}
