package notification_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePrincipal(t *testing.T, role kernel.Role) kernel.Principal {
	t.Helper()
	p, err := kernel.NewPrincipal(kernel.NewUUID(), role)
	require.NoError(t, err)
	return p
}

func TestNewNotification(t *testing.T) {
	t.Run("creates broadcast notification", func(t *testing.T) {
		n, err := notification.NewNotification(kernel.NewUUID(), "Order shipped",
			"Your order is on its way", notification.TypeOrder, notification.TargetAll, nil)
		require.NoError(t, err)

		assert.Equal(t, "Order shipped", n.Title())
		assert.Equal(t, notification.TypeOrder, n.Type())
		assert.Equal(t, notification.TargetAll, n.Target())
		assert.Nil(t, n.RecipientID())
		assert.Empty(t, n.ReadBy())
		require.NoError(t, n.Validate())
	})

	t.Run("specific target requires a recipient", func(t *testing.T) {
		_, err := notification.NewNotification(kernel.NewUUID(), "t", "m",
			notification.TypeOrder, notification.TargetSpecific, nil)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("broadcast targets forbid a recipient", func(t *testing.T) {
		recipient := kernel.NewUUID()
		_, err := notification.NewNotification(kernel.NewUUID(), "t", "m",
			notification.TypeOrder, notification.TargetAll, &recipient)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("requires title and message", func(t *testing.T) {
		_, err := notification.NewNotification(kernel.NewUUID(), "", "m",
			notification.TypeInfo, notification.TargetAdmin, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = notification.NewNotification(kernel.NewUUID(), "t", "",
			notification.TypeInfo, notification.TargetAdmin, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects unknown type and target", func(t *testing.T) {
		_, err := notification.NewNotification(kernel.NewUUID(), "t", "m",
			notification.TypeUnknown, notification.TargetAll, nil)
		require.Error(t, err)

		_, err = notification.NewNotification(kernel.NewUUID(), "t", "m",
			notification.TypeInfo, notification.TargetUnknown, nil)
		require.Error(t, err)
	})
}

func TestNotification_ReadTracking(t *testing.T) {
	n, err := notification.NewNotification(kernel.NewUUID(), "t", "m",
		notification.TypeSystem, notification.TargetAll, nil)
	require.NoError(t, err)

	reader := kernel.NewUUID()
	assert.False(t, n.IsReadBy(reader))

	require.NoError(t, n.MarkReadBy(reader))
	assert.True(t, n.IsReadBy(reader))
	assert.Len(t, n.ReadBy(), 1)

	// Idempotent.
	require.NoError(t, n.MarkReadBy(reader))
	assert.Len(t, n.ReadBy(), 1)

	// Other principals are unaffected.
	assert.False(t, n.IsReadBy(kernel.NewUUID()))

	require.Error(t, n.MarkReadBy(kernel.UUID{}))
}

func TestNotification_VisibleTo(t *testing.T) {
	admin := makePrincipal(t, kernel.RoleAdmin)
	customer := makePrincipal(t, kernel.RoleCustomer)

	t.Run("all is visible to everyone", func(t *testing.T) {
		n, err := notification.NewNotification(kernel.NewUUID(), "t", "m",
			notification.TypePromo, notification.TargetAll, nil)
		require.NoError(t, err)
		assert.True(t, n.VisibleTo(admin))
		assert.True(t, n.VisibleTo(customer))
	})

	t.Run("admin target is visible to admins only", func(t *testing.T) {
		n, err := notification.NewNotification(kernel.NewUUID(), "t", "m",
			notification.TypeInfo, notification.TargetAdmin, nil)
		require.NoError(t, err)
		assert.True(t, n.VisibleTo(admin))
		assert.False(t, n.VisibleTo(customer))
	})

	t.Run("customer target is visible to customers only", func(t *testing.T) {
		n, err := notification.NewNotification(kernel.NewUUID(), "t", "m",
			notification.TypePromo, notification.TargetCustomer, nil)
		require.NoError(t, err)
		assert.False(t, n.VisibleTo(admin))
		assert.True(t, n.VisibleTo(customer))
	})

	t.Run("specific target is visible to the recipient only", func(t *testing.T) {
		recipient := customer.ID()
		n, err := notification.NewNotification(kernel.NewUUID(), "t", "m",
			notification.TypeOrder, notification.TargetSpecific, &recipient)
		require.NoError(t, err)
		assert.True(t, n.VisibleTo(customer))
		assert.False(t, n.VisibleTo(admin))
		assert.False(t, n.VisibleTo(makePrincipal(t, kernel.RoleCustomer)))
	})
}

func TestRestoreNotification(t *testing.T) {
	original, err := notification.NewNotification(kernel.NewUUID(), "t", "m",
		notification.TypeOrder, notification.TargetAll, nil)
	require.NoError(t, err)
	reader := kernel.NewUUID()
	require.NoError(t, original.MarkReadBy(reader))

	restored, err := notification.RestoreNotification(
		original.ID(), original.Title(), original.Message(),
		original.Type(), original.Target(), original.RecipientID(),
		original.ReadBy(), original.CreatedAt(),
	)
	require.NoError(t, err)

	assert.True(t, restored.IsEqual(original))
	assert.True(t, restored.IsReadBy(reader))
	assert.Equal(t, original.CreatedAt(), restored.CreatedAt())
}

func TestTypeFromString(t *testing.T) {
	for name, want := range map[string]notification.Type{
		"order":  notification.TypeOrder,
		"promo":  notification.TypePromo,
		"system": notification.TypeSystem,
		"info":   notification.TypeInfo,
	} {
		got, err := notification.TypeFromString(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got)
		assert.Equal(t, name, got.String())
	}

	_, err := notification.TypeFromString("Order")
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestTargetFromString(t *testing.T) {
	for name, want := range map[string]notification.Target{
		"all":      notification.TargetAll,
		"customer": notification.TargetCustomer,
		"admin":    notification.TargetAdmin,
		"specific": notification.TargetSpecific,
	} {
		got, err := notification.TargetFromString(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got)
		assert.Equal(t, name, got.String())
	}

	_, err := notification.TargetFromString("everyone")
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
