package models

import "errors"

// Status is an order's position in the laundry lifecycle.
type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusPickedUp   Status = "picked-up"
	StatusInProgress Status = "in-progress"
	StatusReady      Status = "ready"
	StatusDelivered  Status = "delivered"
)

// StatusFlow is the lifecycle in display order, scheduled through delivered.
var StatusFlow = []Status{
	StatusScheduled,
	StatusPickedUp,
	StatusInProgress,
	StatusReady,
	StatusDelivered,
}

var ErrInvalidStatus = errors.New("invalid order status")

func ParseStatus(s string) (Status, error) {
	for _, status := range StatusFlow {
		if Status(s) == status {
			return status, nil
		}
	}
	return "", ErrInvalidStatus
}

// ApplyStatus moves the order to newStatus. Any of the five statuses is
// accepted from any current status; admins may jump forward or backward.
func (o *Order) ApplyStatus(newStatus Status) error {
	if _, err := ParseStatus(string(newStatus)); err != nil {
		return err
	}
	o.Status = newStatus
	return nil
}

// DisplayIndex returns the status position in StatusFlow, or -1 when
// unknown. Used for progress rendering only, never for validation.
func DisplayIndex(s Status) int {
	for i, status := range StatusFlow {
		if s == status {
			return i
		}
	}
	return -1
}
