package order_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/pkg/result"
)

func pricedOrderFixture(t *testing.T, total int64, lines []order.PricedOrderLine) order.PricedOrder {
	t.Helper()

	orderID, err := kernel.NewOrderID("OrderId", "order-1")
	require.NoError(t, err)

	firstName, err := kernel.NewString50("FirstName", "Alice")
	require.NoError(t, err)
	lastName, err := kernel.NewString50("LastName", "Smith")
	require.NoError(t, err)
	name, err := order.NewPersonalName(firstName, lastName)
	require.NoError(t, err)
	email, err := kernel.NewEmailAddress("EmailAddress", "alice@example.com")
	require.NoError(t, err)
	customerInfo, err := order.NewCustomerInfo(name, email, order.VipStatusNormal)
	require.NoError(t, err)

	none, err := kernel.NewOptionalString50("AddressLine2", "")
	require.NoError(t, err)
	line1, err := kernel.NewString50("AddressLine1", "123 Main St")
	require.NoError(t, err)
	city, err := kernel.NewString50("City", "Los Angeles")
	require.NoError(t, err)
	zipCode, err := kernel.NewZipCode("ZipCode", "90001")
	require.NoError(t, err)
	state, err := kernel.NewUsStateCode("State", "CA")
	require.NoError(t, err)
	country, err := kernel.NewString50("Country", "US")
	require.NoError(t, err)
	address, err := order.NewAddress(line1, none, none, none, city, zipCode, state, country)
	require.NoError(t, err)

	amountToBill, err := kernel.NewBillingAmount(decimal.NewFromInt(total))
	require.NoError(t, err)

	pricedOrder, err := order.NewPricedOrder(
		orderID, customerInfo, address, address, amountToBill, lines, order.NewPricingMethod(""))
	require.NoError(t, err)
	return pricedOrder
}

func pricedLineFixture(t *testing.T) order.PricedProductLine {
	t.Helper()

	lineID, err := kernel.NewOrderLineID("OrderLineId", "line-1")
	require.NoError(t, err)
	productCode, err := kernel.NewProductCode("ProductCode", "W1234")
	require.NoError(t, err)
	quantity, err := kernel.NewOrderQuantity(productCode, decimal.NewFromInt(2))
	require.NoError(t, err)
	linePrice, err := kernel.NewPrice(decimal.NewFromInt(10))
	require.NoError(t, err)

	line, err := order.NewPricedProductLine(lineID, productCode, quantity, linePrice)
	require.NoError(t, err)
	return line
}

func TestCreateEvents_EmissionOrder(t *testing.T) {
	pricedOrder := pricedOrderFixture(t, 10, []order.PricedOrderLine{pricedLineFixture(t)})
	acknowledgment := result.Some(order.AcknowledgmentSent{
		OrderID:      pricedOrder.OrderID(),
		EmailAddress: pricedOrder.CustomerInfo().Email(),
	})

	events := order.CreateEvents(pricedOrder, acknowledgment)
	require.Len(t, events, 3)
	require.IsType(t, order.AcknowledgmentSent{}, events[0])
	require.IsType(t, order.ShippableOrderPlaced{}, events[1])
	require.IsType(t, order.BillableOrderPlaced{}, events[2])
}

func TestCreateEvents_NoAcknowledgment(t *testing.T) {
	pricedOrder := pricedOrderFixture(t, 10, []order.PricedOrderLine{pricedLineFixture(t)})

	events := order.CreateEvents(pricedOrder, result.None[order.AcknowledgmentSent]())
	require.Len(t, events, 2)
	require.IsType(t, order.ShippableOrderPlaced{}, events[0])
	require.IsType(t, order.BillableOrderPlaced{}, events[1])
}

func TestCreateEvents_ZeroTotalSkipsBilling(t *testing.T) {
	lineID, err := kernel.NewOrderLineID("OrderLineId", "line-1")
	require.NoError(t, err)
	productCode, err := kernel.NewProductCode("ProductCode", "W1234")
	require.NoError(t, err)
	quantity, err := kernel.NewOrderQuantity(productCode, decimal.NewFromInt(1))
	require.NoError(t, err)
	freeLine, err := order.NewPricedProductLine(
		lineID, productCode, quantity, kernel.MustPrice(decimal.Zero))
	require.NoError(t, err)

	pricedOrder := pricedOrderFixture(t, 0, []order.PricedOrderLine{freeLine})

	events := order.CreateEvents(pricedOrder, result.None[order.AcknowledgmentSent]())
	require.Len(t, events, 1)
	require.IsType(t, order.ShippableOrderPlaced{}, events[0])
}

func TestCreateEvents_CommentLinesNeverShip(t *testing.T) {
	pricedOrder := pricedOrderFixture(t, 10, []order.PricedOrderLine{
		pricedLineFixture(t),
		order.NewCommentLine("Applied promotion HALF"),
	})

	events := order.CreateEvents(pricedOrder, result.None[order.AcknowledgmentSent]())

	shippable, ok := events[0].(order.ShippableOrderPlaced)
	require.True(t, ok)
	require.Len(t, shippable.ShipmentLines, 1)
	require.Equal(t, "W1234", shippable.ShipmentLines[0].ProductCode.String())
}

func TestCreateEvents_PdfName(t *testing.T) {
	pricedOrder := pricedOrderFixture(t, 10, []order.PricedOrderLine{pricedLineFixture(t)})

	events := order.CreateEvents(pricedOrder, result.None[order.AcknowledgmentSent]())

	shippable, ok := events[0].(order.ShippableOrderPlaced)
	require.True(t, ok)
	require.Equal(t, "Order_order-1.pdf", shippable.Pdf.Name)
}
