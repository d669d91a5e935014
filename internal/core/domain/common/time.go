package common

import (
	"errors"
	"time"

	"github.com/golang-module/carbon/v2"
)

var ErrInvalidTimestamp = errors.New("invalid timestamp")

// ParseTimestamp accepts ISO-8601-ish timestamp strings and canonicalizes
// them to UTC. Anything carbon cannot make sense of is rejected.
func ParseTimestamp(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, ErrInvalidTimestamp
	}
	c := carbon.Parse(value)
	if c.Error != nil || c.IsZero() {
		return time.Time{}, ErrInvalidTimestamp
	}
	return c.Carbon2Time().UTC(), nil
}

// FormatTimestamp renders a timestamp the way the rest of the system expects
// to read it back, RFC 3339 in UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
