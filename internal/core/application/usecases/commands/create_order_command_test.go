package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderItemsFixture() []commands.OrderItem {
	return []commands.OrderItem{
		{ProductID: kernel.NewUUID(), Quantity: 2},
		{ProductID: kernel.NewUUID(), Quantity: 1},
	}
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("creates valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
			orderItemsFixture(), shippingFixture(), paymentFixture(), 25)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Len(t, cmd.Items(), 2)
	})

	t.Run("requires items", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
			nil, shippingFixture(), paymentFixture(), 25)
		require.ErrorIs(t, err, commands.ErrOrderItemsAreRequired)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		items := []commands.OrderItem{{ProductID: kernel.NewUUID(), Quantity: 0}}
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
			items, shippingFixture(), paymentFixture(), 25)
		require.Error(t, err)
	})

	t.Run("rejects non-positive total", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
			orderItemsFixture(), shippingFixture(), paymentFixture(), 0)
		require.ErrorIs(t, err, commands.ErrTotalAmountIsInvalid)
	})

	t.Run("rejects incomplete shipping info", func(t *testing.T) {
		shipping := shippingFixture()
		shipping.City = ""
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
			orderItemsFixture(), shipping, paymentFixture(), 25)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}

func TestOrderItem_Validate(t *testing.T) {
	require.NoError(t, commands.OrderItem{ProductID: kernel.NewUUID(), Quantity: 1}.Validate())
	require.Error(t, commands.OrderItem{Quantity: 1}.Validate())
	require.Error(t, commands.OrderItem{ProductID: kernel.NewUUID(), Quantity: -1}.Validate())
}

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	cmd, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), order.Shipped)
	require.NoError(t, err)
	assert.Equal(t, order.Shipped, cmd.Target())

	_, err = commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), order.Unknown)
	require.Error(t, err)

	_, err = commands.NewUpdateOrderStatusCommand(kernel.UUID{}, order.Shipped)
	require.Error(t, err)
}

func TestNewCancelOrderCommand(t *testing.T) {
	cmd, err := commands.NewCancelOrderCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	_, err = commands.NewCancelOrderCommand(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)

	_, err = commands.NewCancelOrderCommand(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
}

func TestNewVerifyDeliveryCommand(t *testing.T) {
	cmd, err := commands.NewVerifyDeliveryCommand(kernel.NewUUID(), "A1B2C3")
	require.NoError(t, err)
	assert.Equal(t, "A1B2C3", cmd.PresentedCode())

	_, err = commands.NewVerifyDeliveryCommand(kernel.NewUUID(), "")
	require.Error(t, err)
}
