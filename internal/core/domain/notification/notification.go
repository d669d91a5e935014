package notification

import (
	"apptrack/internal/core/domain/appointment"
	"errors"
	"time"
)

var ErrParseType = errors.New("invalid notification type")
var ErrNotificationDoesNotExist = errors.New("notification does not exist")

type ID string

type Type struct {
	v string
}

func (t Type) String() string {
	return t.v
}

func ParseType(value string) (Type, error) {
	switch value {
	case "info":
		return TypeInfo, nil
	case "reminder":
		return TypeReminder, nil
	case "update":
		return TypeUpdate, nil
	case "error":
		return TypeError, nil
	default:
		return TypeUnknown, ErrParseType
	}
}

var (
	TypeUnknown  = Type{}
	TypeInfo     = Type{v: "info"}
	TypeReminder = Type{v: "reminder"}
	TypeUpdate   = Type{v: "update"}
	TypeError    = Type{v: "error"}
)

type Notification struct {
	ID        ID
	OwnerID   appointment.UserID
	Title     string
	Message   string
	Type      Type
	CreatedAt time.Time
	IsRead    bool
}
