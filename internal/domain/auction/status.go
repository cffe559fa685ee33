package auction

type Status string

const (
	StatusUpcoming  Status = "UPCOMING"
	StatusLive      Status = "LIVE"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusUpcoming, StatusLive, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// Terminal states never move again.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusUpcoming:
		return next == StatusLive || next == StatusCompleted || next == StatusCancelled
	case StatusLive:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

func ParseStatus(v string) (Status, error) {
	s := Status(v)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func TerminalStatuses() []Status {
	return []Status{StatusCompleted, StatusCancelled}
}
