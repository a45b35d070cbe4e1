package appointment

import "fmt"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusCompleted Status = "COMPLETED"
	StatusNoShow    Status = "NO_SHOW"
	StatusCancelled Status = "CANCELLED"
)

func InitialStatus() Status {
	return StatusScheduled
}

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusScheduled, StatusCompleted, StatusNoShow, StatusCancelled:
		return st, nil
	}
	return "", fmt.Errorf("%w: unknown status %q", ErrInvalidRequest, s)
}

// IsActive: tudo que não foi cancelado ocupa o horário.
func IsActive(s Status) bool {
	return s != StatusCancelled
}

func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusNoShow || s == StatusCancelled
}

// ===============================
// Validations
// ===============================

// CanTransition allows only SCHEDULED -> COMPLETED | NO_SHOW | CANCELLED.
func CanTransition(from, to Status) error {
	if from != StatusScheduled {
		return fmt.Errorf("%w: %s is terminal", ErrInvalidTransition, from)
	}
	if !IsTerminal(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}
