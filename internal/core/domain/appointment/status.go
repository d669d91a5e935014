package appointment

import "errors"

var ErrParseStatus = errors.New("invalid status")

type Status struct {
	v string
}

func (s Status) String() string {
	return s.v
}

func ParseStatus(value string) (Status, error) {
	switch value {
	case "Pending":
		return StatusPending, nil
	case "Completed":
		return StatusCompleted, nil
	case "Cancelled":
		return StatusCancelled, nil
	default:
		return StatusUnknown, ErrParseStatus
	}
}

var (
	StatusUnknown   = Status{}
	StatusPending   = Status{v: "Pending"}
	StatusCompleted = Status{v: "Completed"}
	StatusCancelled = Status{v: "Cancelled"}
)
