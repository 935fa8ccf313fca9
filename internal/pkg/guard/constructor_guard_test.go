package guard_test

import (
	"errors"
	"sync"
	"testing"

	"restaurant/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("Reservation must be created via NewReservation")

	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type tableNumber struct {
		value string
		guard guard.ConstructorGuard
	}
	errTableNotConstructed := errors.New("tableNumber must be created via newTableNumber")
	newTableNumber := func(v string) (tableNumber, error) {
		if v == "" {
			return tableNumber{}, errors.New("table is required")
		}
		return tableNumber{value: v, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_output_is_valid", func(t *testing.T) {
		tn, err := newTableNumber("T4")
		require.NoError(t, err)
		require.NoError(t, tn.guard.Validate(errTableNotConstructed))
	})

	t.Run("literal_is_rejected", func(t *testing.T) {
		tn := tableNumber{value: "T4"}
		require.ErrorIs(t, tn.guard.Validate(errTableNotConstructed), errTableNotConstructed)
	})

	t.Run("failed_constructor_returns_zero_value", func(t *testing.T) {
		tn, err := newTableNumber("")
		require.Error(t, err)
		require.Error(t, tn.guard.Validate(errTableNotConstructed))
	})
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()
	errNotConstructed := errors.New("not constructed")

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, g.Validate(errNotConstructed))
		}()
	}
	wg.Wait()
}
