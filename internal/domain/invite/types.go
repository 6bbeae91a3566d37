package invite

import "strings"

type Status string

const (
	StatusPending             Status = "PENDING"
	StatusPendingVerification Status = "PENDING_VERIFICATION"
	StatusUsed                Status = "USED"
	StatusExpired             Status = "EXPIRED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPendingVerification, StatusUsed, StatusExpired:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusUsed || s == StatusExpired
}

func ParseStatus(label string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(label)))
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Event is what moves a ledger entry forward.
type Event string

const (
	EventJoined    Event = "JOINED"
	EventConfirmed Event = "CONFIRMED"
	EventExpired   Event = "EXPIRED"
)
