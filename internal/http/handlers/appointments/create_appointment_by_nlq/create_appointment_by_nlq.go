package createappointmentbynlq

import (
	e "apptrack/internal/core/domain/errors"
	"apptrack/internal/core/domain/quickadd"
	"apptrack/internal/core/domain/ratelimiter"
	"apptrack/internal/core/services"
	createappointment "apptrack/internal/core/services/create_appointment"
	service "apptrack/internal/core/services/create_appointment_by_nlq"
	"apptrack/internal/http/handlers/owner"
	"apptrack/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[service.Input, createappointment.Result]
}

func New(
	service services.Service[service.Input, createappointment.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Query string `json:"query"`
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
		validation.Field(&i.Query, validation.Required, validation.Length(1, 1024)),
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

	result, err := h.service.Run(
		r.Context(),
		service.Input{OwnerID: ownerID, Query: input.Query},
	)
	if err != nil {
		switch {
		case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
			response.RenderRateLimitExceeded(rw)
		case errors.Is(err, quickadd.ErrQueryParsing):
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
