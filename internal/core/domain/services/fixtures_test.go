package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
)

func testUnvalidatedAddress() order.UnvalidatedAddress {
	return order.UnvalidatedAddress{
		AddressLine1: "123 Main St",
		City:         "Los Angeles",
		ZipCode:      "90001",
		State:        "CA",
		Country:      "US",
	}
}

func testUnvalidatedOrder() order.UnvalidatedOrder {
	return order.UnvalidatedOrder{
		OrderID: "order-1",
		CustomerInfo: order.UnvalidatedCustomerInfo{
			FirstName:    "Alice",
			LastName:     "Smith",
			EmailAddress: "alice@example.com",
		},
		ShippingAddress: testUnvalidatedAddress(),
		BillingAddress:  testUnvalidatedAddress(),
		Lines: []order.UnvalidatedOrderLine{
			{OrderLineID: "line-1", ProductCode: "W1234", Quantity: decimal.NewFromInt(2)},
			{OrderLineID: "line-2", ProductCode: "G123", Quantity: decimal.NewFromFloat(1.5)},
		},
	}
}

func testString50(t *testing.T, fieldName, raw string) kernel.String50 {
	t.Helper()
	v, err := kernel.NewString50(fieldName, raw)
	require.NoError(t, err)
	return v
}

func testAddress(t *testing.T, state, country string) order.Address {
	t.Helper()

	none, err := kernel.NewOptionalString50("AddressLine2", "")
	require.NoError(t, err)
	zipCode, err := kernel.NewZipCode("ZipCode", "90001")
	require.NoError(t, err)
	stateCode, err := kernel.NewUsStateCode("State", state)
	require.NoError(t, err)

	address, err := order.NewAddress(
		testString50(t, "AddressLine1", "123 Main St"),
		none, none, none,
		testString50(t, "City", "Los Angeles"),
		zipCode,
		stateCode,
		testString50(t, "Country", country),
	)
	require.NoError(t, err)
	return address
}

func testCustomerInfo(t *testing.T, vipStatus order.VipStatus) order.CustomerInfo {
	t.Helper()

	name, err := order.NewPersonalName(
		testString50(t, "FirstName", "Alice"),
		testString50(t, "LastName", "Smith"),
	)
	require.NoError(t, err)
	email, err := kernel.NewEmailAddress("EmailAddress", "alice@example.com")
	require.NoError(t, err)

	customerInfo, err := order.NewCustomerInfo(name, email, vipStatus)
	require.NoError(t, err)
	return customerInfo
}

func testOrderID(t *testing.T) kernel.OrderID {
	t.Helper()
	orderID, err := kernel.NewOrderID("OrderId", "order-1")
	require.NoError(t, err)
	return orderID
}

func testValidatedLine(t *testing.T, lineID, code string, quantity decimal.Decimal) order.ValidatedOrderLine {
	t.Helper()

	orderLineID, err := kernel.NewOrderLineID("OrderLineId", lineID)
	require.NoError(t, err)
	productCode, err := kernel.NewProductCode("ProductCode", code)
	require.NoError(t, err)
	orderQuantity, err := kernel.NewOrderQuantity(productCode, quantity)
	require.NoError(t, err)

	line, err := order.NewValidatedOrderLine(orderLineID, productCode, orderQuantity)
	require.NoError(t, err)
	return line
}

func testValidatedOrder(t *testing.T, promotionCode string, lines ...order.ValidatedOrderLine) order.ValidatedOrder {
	t.Helper()

	if len(lines) == 0 {
		lines = []order.ValidatedOrderLine{
			testValidatedLine(t, "line-1", "W1234", decimal.NewFromInt(1)),
			testValidatedLine(t, "line-2", "G123", decimal.NewFromInt(1)),
		}
	}

	validated, err := order.NewValidatedOrder(
		testOrderID(t),
		testCustomerInfo(t, order.VipStatusNormal),
		testAddress(t, "CA", "US"),
		testAddress(t, "CA", "US"),
		lines,
		order.NewPricingMethod(promotionCode),
	)
	require.NoError(t, err)
	return validated
}

func testPricedOrder(t *testing.T, state, country string, vipStatus order.VipStatus) order.PricedOrder {
	t.Helper()

	line := testValidatedLine(t, "line-1", "W1234", decimal.NewFromInt(2))
	linePrice, err := kernel.NewPrice(decimal.NewFromInt(10))
	require.NoError(t, err)
	pricedLine, err := order.NewPricedProductLine(
		line.OrderLineID(), line.ProductCode(), line.Quantity(), linePrice)
	require.NoError(t, err)

	amountToBill, err := kernel.SumPrices([]kernel.Price{linePrice})
	require.NoError(t, err)

	pricedOrder, err := order.NewPricedOrder(
		testOrderID(t),
		testCustomerInfo(t, vipStatus),
		testAddress(t, state, country),
		testAddress(t, "CA", "US"),
		amountToBill,
		[]order.PricedOrderLine{pricedLine},
		order.NewPricingMethod(""),
	)
	require.NoError(t, err)
	return pricedOrder
}
