package parseappointment

import (
	"apptrack/internal/core/domain/appointment"
	"apptrack/internal/core/domain/logging"
	"apptrack/internal/core/domain/quickadd"
	"apptrack/internal/core/services"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var Now = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

type suite struct {
	log    *logging.FakeLogger
	oracle *quickadd.TestOracle
}

func setupSuite() *suite {
	return &suite{
		log:    logging.NewFakeLogger(),
		oracle: quickadd.NewTestOracle(),
	}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(s.log, s.oracle, time.Second, func() time.Time { return Now })
}

func TestDraftParsedWithDefaults(t *testing.T) {
	s := setupSuite()
	s.oracle.Draft = quickadd.RawDraft{
		Title:     "Lunch",
		StartTime: "2024-05-01T12:00:00Z",
	}
	service := s.createService()

	result, err := service.Run(
		context.Background(),
		Input{OwnerID: "user-1", Query: "lunch tomorrow at noon"},
	)

	require.NoError(t, err)
	require.Equal(t, "Lunch", result.Draft.Title)
	require.Equal(t, "", result.Draft.Description)
	require.True(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC).Equal(result.Draft.StartAt))
	require.True(t, time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC).Equal(result.Draft.EndAt))
	require.Equal(t, appointment.PriorityMedium, result.Draft.Priority)
	require.Equal(t, 15, result.Draft.ReminderMinutes)

	require.Len(t, s.oracle.Calls, 1)
	require.Equal(t, "lunch tomorrow at noon", s.oracle.Calls[0].Query)
	require.True(t, Now.Equal(s.oracle.Calls[0].ReferenceTime))
}

func TestOracleFailureBecomesQueryParsingError(t *testing.T) {
	s := setupSuite()
	s.oracle.Error = errors.New("oracle unreachable")
	service := s.createService()

	_, err := service.Run(context.Background(), Input{OwnerID: "user-1", Query: "lunch"})

	require.ErrorIs(t, err, quickadd.ErrQueryParsing)
}

func TestInvalidOracleOutputIsRejected(t *testing.T) {
	cases := []struct {
		id    string
		draft quickadd.RawDraft
	}{
		{id: "empty-title", draft: quickadd.RawDraft{Title: "", StartTime: "2024-05-01T12:00:00Z"}},
		{id: "no-start-time", draft: quickadd.RawDraft{Title: "Lunch"}},
		{id: "garbage-start-time", draft: quickadd.RawDraft{Title: "Lunch", StartTime: "sometime"}},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			s := setupSuite()
			s.oracle.Draft = testcase.draft
			service := s.createService()

			_, err := service.Run(
				context.Background(),
				Input{OwnerID: "user-1", Query: "lunch"},
			)

			require.ErrorIs(t, err, quickadd.ErrQueryParsing)
		})
	}
}
