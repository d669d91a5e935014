package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOptionalString(t *testing.T) {
	absent := NewOptional(0, false)
	require.Equal(t, "[-]", absent.String())

	present := NewOptional(42, true)
	require.Equal(t, "[42]", present.String())
}

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		id       string
		value    string
		expected time.Time
		isError  bool
	}{
		{
			id:       "rfc3339-utc",
			value:    "2024-05-01T12:00:00Z",
			expected: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			id:       "rfc3339-offset",
			value:    "2024-05-01T14:00:00+02:00",
			expected: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			id:       "date-with-time",
			value:    "2024-05-01 12:30:00",
			expected: time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC),
		},
		{id: "empty", value: "", isError: true},
		{id: "garbage", value: "not a timestamp", isError: true},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			parsed, err := ParseTimestamp(testcase.value)
			if testcase.isError {
				require.ErrorIs(t, err, ErrInvalidTimestamp)
				return
			}
			require.NoError(t, err)
			require.True(t, testcase.expected.Equal(parsed))
		})
	}
}
