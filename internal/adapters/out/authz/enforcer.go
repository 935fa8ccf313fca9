// Package authz implements ports.Authorizer with a casbin RBAC enforcer. The
// model and policy are embedded; subjects are role names.
package authz

import (
	"context"
	_ "embed"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	stringadapter "github.com/casbin/casbin/v2/persist/string-adapter"
)

//go:embed model.conf
var embeddedModel string

//go:embed policy.csv
var embeddedPolicy string

type Enforcer struct {
	enforcer *casbin.SyncedEnforcer
}

// NewEnforcer builds an enforcer from the embedded model and policy.
func NewEnforcer() (*Enforcer, error) {
	return NewEnforcerFromPolicy(embeddedPolicy)
}

// NewEnforcerFromPolicy builds an enforcer from the embedded model and the
// given policy in casbin CSV form.
func NewEnforcerFromPolicy(policy string) (*Enforcer, error) {
	m, err := model.NewModelFromString(embeddedModel)
	if err != nil {
		return nil, fmt.Errorf("failed to load casbin model: %w", err)
	}

	// The adapter loads the policy while the enforcer is built.
	enforcer, err := casbin.NewSyncedEnforcer(m, stringadapter.NewAdapter(policy))
	if err != nil {
		return nil, fmt.Errorf("failed to load casbin policy: %w", err)
	}

	return &Enforcer{enforcer: enforcer}, nil
}

// Authorize allows the request when the principal's role, or a role it
// inherits, holds the object/action pair.
func (e *Enforcer) Authorize(_ context.Context, principal kernel.Principal, object, action string) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	subject := principal.Role().String()
	allowed, err := e.enforcer.Enforce(subject, object, action)
	if err != nil {
		return fmt.Errorf("enforcement failed: %w", err)
	}
	if !allowed {
		return errs.NewAccessDeniedError(subject, object, action)
	}

	return nil
}
