package createappointmentbynlq

import (
	"apptrack/internal/core/domain/appointment"
	"apptrack/internal/core/domain/quickadd"
	"apptrack/internal/core/domain/ratelimiter"
	createappointment "apptrack/internal/core/services/create_appointment"
	service "apptrack/internal/core/services/create_appointment_by_nlq"
	"apptrack/internal/http/handlers/owner"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	appointment appointment.Appointment
	err         error
	input       *service.Input
}

func (s *stubService) Run(
	ctx context.Context,
	input service.Input,
) (result createappointment.Result, err error) {
	s.input = &input
	if s.err != nil {
		return result, s.err
	}
	result.Appointment = s.appointment
	return result, nil
}

func TestCreateAppointmentByNLQHandler(t *testing.T) {
	created := appointment.Appointment{
		ID:              appointment.ID("apt-1"),
		OwnerID:         appointment.UserID("user-1"),
		Title:           "Dentist",
		StartAt:         time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC),
		EndAt:           time.Date(2025, 6, 15, 15, 0, 0, 0, time.UTC),
		Priority:        appointment.PriorityMedium,
		Status:          appointment.StatusPending,
		ReminderMinutes: 15,
	}

	cases := []struct {
		id             string
		body           string
		ownerID        string
		serviceErr     error
		expectedStatus int
	}{
		{
			id:             "success",
			body:           `{"query": "dentist tomorrow at 2pm"}`,
			ownerID:        "user-1",
			expectedStatus: http.StatusCreated,
		},
		{
			id:             "missing owner",
			body:           `{"query": "dentist tomorrow at 2pm"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "empty query",
			body:           `{"query": ""}`,
			ownerID:        "user-1",
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "invalid json",
			body:           `{"query": `,
			ownerID:        "user-1",
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "query parsing failed",
			body:           `{"query": "gibberish"}`,
			ownerID:        "user-1",
			serviceErr:     quickadd.ErrQueryParsing,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			id:             "rate limit exceeded",
			body:           `{"query": "dentist tomorrow at 2pm"}`,
			ownerID:        "user-1",
			serviceErr:     ratelimiter.ErrRateLimitExceeded,
			expectedStatus: http.StatusTooManyRequests,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			svc := &stubService{appointment: created, err: testcase.serviceErr}
			handler := New(svc)

			request := httptest.NewRequest(
				http.MethodPost,
				"/appointments/nlq",
				strings.NewReader(testcase.body),
			)
			if testcase.ownerID != "" {
				request.Header.Set(owner.HEADER, testcase.ownerID)
			}
			recorder := httptest.NewRecorder()

			owner.SetOwnerToContext(handler).ServeHTTP(recorder, request)

			require.Equal(t, testcase.expectedStatus, recorder.Code)
			if testcase.expectedStatus == http.StatusCreated {
				require.NotNil(t, svc.input)
				assert.Equal(t, appointment.UserID("user-1"), svc.input.OwnerID)
				assert.Equal(t, "dentist tomorrow at 2pm", svc.input.Query)
				assert.Contains(t, recorder.Body.String(), `"title":"Dentist"`)
			}
		})
	}
}
