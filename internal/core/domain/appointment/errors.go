package appointment

import "errors"

var ErrAppointmentDoesNotExist = errors.New("appointment does not exist")
var ErrOwnerIsEmpty = errors.New("appointment owner must be set")
var ErrStartTimeNotSet = errors.New("appointment start time must be set")
var ErrTitleIsEmpty = errors.New("appointment title must not be empty")
var ErrEndBeforeStart = errors.New("appointment end time must not precede start time")
var ErrNegativeReminderMinutes = errors.New("reminder minutes must not be negative")
var ErrNotPending = errors.New("appointment is not pending")
