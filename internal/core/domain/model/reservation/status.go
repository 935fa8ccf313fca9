package reservation

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var ErrStatusIsTerminal = errors.New("reservation status is terminal")

type Status int

const (
	Unknown Status = iota
	Pending
	Confirmed
	Cancelled
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Cancelled: "cancelled",
		Completed: "completed",
	}
}

func Statuses() []Status {
	return []Status{Pending, Confirmed, Cancelled, Completed}
}

func ParseStatus(s string) (Status, error) {
	for _, status := range Statuses() {
		if status.String() == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid reservation status", s))
}

func (s Status) Validate() error {
	if s < Pending || s > Completed {
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

func (s Status) IsTerminal() bool {
	return s == Cancelled || s == Completed
}

// TransitionTo returns target when the policy lets the reservation leave s.
func (s Status) TransitionTo(target Status, policy kernel.TransitionPolicy) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !policy.AllowsLeaving(s.IsTerminal()) {
		return Unknown, fmt.Errorf("%w: cannot move from %s to %s", ErrStatusIsTerminal, s, target)
	}
	return target, nil
}
