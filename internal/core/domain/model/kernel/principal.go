package kernel

import (
	"errors"
	"fmt"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// Role is the capability tag carried by the acting user.
type Role int

const (
	RoleUnknown Role = iota
	RoleCustomer
	RoleStaff
	RoleAdmin
)

var ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal")

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleCustomer: "customer",
		RoleStaff:    "staff",
		RoleAdmin:    "admin",
	}
}

// ParseRole maps "customer", "staff" or "admin" to a Role.
func ParseRole(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != RoleUnknown && str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

func (r Role) Validate() error {
	if r != RoleCustomer && r != RoleStaff && r != RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Principal is the authenticated actor of a single request. It is passed
// explicitly into every command and query instead of being read from session state.
type Principal struct { //nolint:recvcheck //using for validation
	id    UUID
	role  Role
	guard guard.ConstructorGuard
}

func NewPrincipal(id UUID, role Role) (Principal, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Principal{}, err
	}
	return Principal{
		id:    id,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (p Principal) Validate() error {
	return p.guard.Validate(ErrPrincipalIsNotConstructed)
}

func (p Principal) ID() UUID {
	return p.id
}

func (p Principal) Role() Role {
	return p.role
}
