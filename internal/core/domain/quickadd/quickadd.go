package quickadd

import (
	"apptrack/internal/core/domain/appointment"
	"context"
	"errors"
	"time"
)

// ErrQueryParsing is the uniform failure surfaced to callers whenever free
// text could not be turned into a valid draft, regardless of whether the
// oracle was unreachable, returned garbage, or returned something that
// failed validation.
var ErrQueryParsing = errors.New("could not understand the appointment text")

// RawDraft is the oracle's answer exactly as received, before any trust is
// placed in it. String fields are empty when omitted, ReminderMinutes is nil
// when omitted.
type RawDraft struct {
	Title           string
	Description     string
	StartTime       string
	EndTime         string
	Priority        string
	ReminderMinutes *float64
}

// Draft is a validated appointment-creation payload.
type Draft struct {
	Title           string
	Description     string
	StartAt         time.Time
	EndAt           time.Time
	Priority        appointment.Priority
	ReminderMinutes int
}

// Oracle converts free text into a raw draft. referenceTime anchors relative
// expressions like "tomorrow" or "next Monday". Implementations may be slow,
// fail, or return schema-violating output; callers must treat the result as
// untrusted.
type Oracle interface {
	Parse(ctx context.Context, query string, referenceTime time.Time) (RawDraft, error)
}
