package order

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrStatusIsTerminal is returned when the transition policy forbids leaving delivered or cancelled.
var ErrStatusIsTerminal = errors.New("order status is terminal")

// Status represents the fulfilment state of an order.
//
//	Pending ─> Confirmed ─> InPreparation ─> Ready ─> Delivered
//	   └──────────┴─────────────┴─────────────┴──────> Cancelled
//
// The arrows show the usual flow only. Transitions are free: staff may jump
// from any status to any other enumerated status, including skipping steps
// and moving back to Pending.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Pending
	Confirmed
	InPreparation
	Ready
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "unknown",
		Pending:       "pending",
		Confirmed:     "confirmed",
		InPreparation: "in_preparation",
		Ready:         "ready",
		Delivered:     "delivered",
		Cancelled:     "cancelled",
	}
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Confirmed, InPreparation, Ready, Delivered, Cancelled}
}

// TerminalStatuses returns the statuses excluded from the active order list.
func TerminalStatuses() []Status {
	return []Status{Delivered, Cancelled}
}

// ParseStatus maps the wire name (e.g. "in_preparation") to a Status.
func ParseStatus(s string) (Status, error) {
	for _, status := range Statuses() {
		if status.String() == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order status", s))
}

func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether s is Delivered or Cancelled.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// TransitionTo returns target if the policy lets the order leave s.
// No adjacency check is made.
func (s Status) TransitionTo(target Status, policy kernel.TransitionPolicy) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !policy.AllowsLeaving(s.IsTerminal()) {
		return Unknown, fmt.Errorf("%w: cannot move from %s to %s", ErrStatusIsTerminal, s, target)
	}
	return target, nil
}
