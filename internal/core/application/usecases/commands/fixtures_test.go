package commands_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func shippingFixture() order.ShippingInfo {
	return order.ShippingInfo{
		Name:    "Jamie Doe",
		Address: "12 Fern Lane",
		City:    "Springfield",
		Phone:   "555-0134",
	}
}

func paymentFixture() order.PaymentInfo {
	return order.PaymentInfo{Status: "paid", Method: "card"}
}

// pendingOrderFixture builds a two-item Pending order owned by ownerID.
func pendingOrderFixture(t *testing.T, ownerID kernel.UUID) *order.Order {
	t.Helper()

	itemA, err := order.NewLineItem(kernel.NewUUID(), 2, 10, "Monstera", "img/monstera.jpg")
	require.NoError(t, err)
	itemB, err := order.NewLineItem(kernel.NewUUID(), 1, 5, "Ficus", "img/ficus.jpg")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), ownerID, []order.LineItem{itemA, itemB},
		shippingFixture(), paymentFixture(), 25)
	require.NoError(t, err)
	return o
}

// reservedOrderFixture builds a Pending order with every reservation committed.
func reservedOrderFixture(t *testing.T, ownerID kernel.UUID) *order.Order {
	t.Helper()

	o := pendingOrderFixture(t, ownerID)
	for _, index := range o.UnreservedItems() {
		require.NoError(t, o.MarkItemReserved(index))
	}
	return o
}

// shippedOrderFixture builds a Shipped order and returns it with its code.
func shippedOrderFixture(t *testing.T, ownerID kernel.UUID) (*order.Order, string) {
	t.Helper()

	o := reservedOrderFixture(t, ownerID)
	require.NoError(t, o.SetStatusByAdmin(order.Shipped))
	code, ok := o.DeliveryCode()
	require.True(t, ok)
	return o, code.String()
}
