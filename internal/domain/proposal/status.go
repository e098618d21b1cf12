package proposal

import "autoflow/internal/pkg/errs"

var ErrInvalidStatus = errs.NewKind(errs.ErrValidation, "invalid proposal status")

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusSubmitted Status = "SUBMITTED"
	StatusAccepted  Status = "ACCEPTED"
	StatusRejected  Status = "REJECTED"
	StatusExpired   Status = "EXPIRED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

var AllStatuses = []Status{
	StatusDraft,
	StatusSubmitted,
	StatusAccepted,
	StatusRejected,
	StatusExpired,
	StatusCancelled,
	StatusCompleted,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusAccepted, StatusRejected, StatusExpired, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition may leave the status.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusRejected, StatusExpired, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", errs.Wrap(ErrInvalidStatus, s)
	}
	return status, nil
}
