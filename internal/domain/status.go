package domain

import "fmt"

type Status string

const (
	StatusPending       Status = "pending"
	StatusReceived      Status = "received"
	StatusInPreparation Status = "in_preparation"
	StatusReady         Status = "ready"
	StatusDelivered     Status = "delivered"
	StatusCancelled     Status = "cancelled"
)

// transitions is the single source of truth for the order lifecycle:
// a linear path to delivered, with cancellation possible from any
// non-terminal state. delivered and cancelled are terminal.
var transitions = map[Status][]Status{
	StatusPending:       {StatusReceived, StatusCancelled},
	StatusReceived:      {StatusInPreparation, StatusCancelled},
	StatusInPreparation: {StatusReady, StatusCancelled},
	StatusReady:         {StatusDelivered, StatusCancelled},
	StatusDelivered:     {},
	StatusCancelled:     {},
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if _, ok := transitions[status]; !ok {
		return "", fmt.Errorf("%w: unknown status %q", ErrInvalidValue, s)
	}
	return status, nil
}

func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) Terminal() bool {
	targets, ok := transitions[s]
	return ok && len(targets) == 0
}

func (s Status) CanTransition(to Status) bool {
	for _, target := range transitions[s] {
		if target == to {
			return true
		}
	}
	return false
}
