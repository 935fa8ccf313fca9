package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
)

// Objects guarded by the Authorizer.
const (
	ObjectOrders       = "orders"
	ObjectReservations = "reservations"
	ObjectMenu         = "menu"
	ObjectReports      = "reports"
	ObjectComments     = "comments"
)

// Actions guarded by the Authorizer.
const (
	ActionPlace      = "place"
	ActionReadOwn    = "read_own"
	ActionReadActive = "read_active"
	ActionReadRecent = "read_recent"
	ActionReadAll    = "read_all"
	ActionTransition = "transition"
	ActionCreate     = "create"
	ActionManage     = "manage"
	ActionRead       = "read"
	ActionGenerate   = "generate"
	ActionModerate   = "moderate"
)

// Authorizer decides whether a principal's role grants an action on an object.
type Authorizer interface {
	// Authorize returns nil when allowed and an errs.AccessDeniedError otherwise.
	Authorize(ctx context.Context, principal kernel.Principal, object, action string) error
}
