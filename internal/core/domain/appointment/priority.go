package appointment

import "errors"

var ErrParsePriority = errors.New("invalid priority")

type Priority struct {
	v string
}

func (p Priority) String() string {
	return p.v
}

func ParsePriority(value string) (Priority, error) {
	switch value {
	case "Low":
		return PriorityLow, nil
	case "Medium":
		return PriorityMedium, nil
	case "High":
		return PriorityHigh, nil
	default:
		return PriorityUnknown, ErrParsePriority
	}
}

var (
	PriorityUnknown = Priority{}
	PriorityLow     = Priority{v: "Low"}
	PriorityMedium  = Priority{v: "Medium"}
	PriorityHigh    = Priority{v: "High"}
)
