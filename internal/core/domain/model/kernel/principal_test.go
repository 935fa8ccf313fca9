package kernel_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for in, want := range map[string]kernel.Role{
		"customer": kernel.RoleCustomer,
		"staff":    kernel.RoleStaff,
		"admin":    kernel.RoleAdmin,
	} {
		got, err := kernel.ParseRole(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, in, got.String())
	}

	for _, in := range []string{"", "unknown", "Admin", "chef"} {
		_, err := kernel.ParseRole(in)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, in)
	}
}

func TestNewPrincipal(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()
		p, err := kernel.NewPrincipal(id, kernel.RoleStaff)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, kernel.RoleStaff, p.Role())
	})

	t.Run("joins all validation errors", func(t *testing.T) {
		_, err := kernel.NewPrincipal(kernel.UUID{}, kernel.RoleUnknown)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is rejected", func(t *testing.T) {
		var p kernel.Principal
		require.ErrorIs(t, p.Validate(), kernel.ErrPrincipalIsNotConstructed)
	})
}

func TestTransitionPolicy_AllowsLeaving(t *testing.T) {
	assert.True(t, kernel.FreeTransition.AllowsLeaving(false))
	assert.True(t, kernel.FreeTransition.AllowsLeaving(true))
	assert.True(t, kernel.BlockTerminalTransition.AllowsLeaving(false))
	assert.False(t, kernel.BlockTerminalTransition.AllowsLeaving(true))
}
