package quickadd

import (
	"apptrack/internal/core/domain/appointment"
	c "apptrack/internal/core/domain/common"
	"fmt"
	"strings"

	"github.com/golang-module/carbon/v2"
)

const DefaultReminderMinutes = 15

// NormalizeDraft runs the defaulting and validation pass over an untrusted
// raw draft. Title and start time are hard requirements, everything else
// falls back to a defined default. Relative expressions are already anchored
// by the oracle, so the raw timestamps stand on their own here.
func NormalizeDraft(raw RawDraft) (draft Draft, err error) {
	title := strings.TrimSpace(raw.Title)
	if title == "" {
		return draft, fmt.Errorf("empty title, %w", ErrQueryParsing)
	}

	startAt, err := c.ParseTimestamp(raw.StartTime)
	if err != nil {
		return draft, fmt.Errorf("unparsable start time %q, %w", raw.StartTime, ErrQueryParsing)
	}

	endAt, err := c.ParseTimestamp(raw.EndTime)
	if err != nil || endAt.Before(startAt) {
		endAt = carbon.Time2Carbon(startAt).AddHour().Carbon2Time()
	}

	priority, err := appointment.ParsePriority(raw.Priority)
	if err != nil {
		priority = appointment.PriorityMedium
	}

	reminderMinutes := DefaultReminderMinutes
	if raw.ReminderMinutes != nil && *raw.ReminderMinutes >= 0 {
		reminderMinutes = int(*raw.ReminderMinutes)
	}

	return Draft{
		Title:           title,
		Description:     raw.Description,
		StartAt:         startAt,
		EndAt:           endAt,
		Priority:        priority,
		ReminderMinutes: reminderMinutes,
	}, nil
}
