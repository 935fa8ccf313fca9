package report

import (
	"fmt"
	"time"

	"restaurant/internal/pkg/errs"
)

type Kind int

const (
	Unknown Kind = iota
	Daily
	Weekly
	Monthly
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		Unknown: "unknown",
		Daily:   "daily",
		Weekly:  "weekly",
		Monthly: "monthly",
	}
}

func Kinds() []Kind {
	return []Kind{Daily, Weekly, Monthly}
}

func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if k.String() == s {
			return k, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a valid report kind", s))
}

func (k Kind) Validate() error {
	if k < Daily || k > Monthly {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

// Window returns the length of the period the kind covers: 1, 7 or 30 days.
func (k Kind) Window() time.Duration {
	switch k {
	case Daily:
		return 24 * time.Hour
	case Weekly:
		return 7 * 24 * time.Hour
	case Monthly:
		return 30 * 24 * time.Hour
	default:
		return 0
	}
}

// Period returns the half-open interval [now-Window, now).
func (k Kind) Period(now time.Time) (time.Time, time.Time) {
	return now.Add(-k.Window()), now
}
