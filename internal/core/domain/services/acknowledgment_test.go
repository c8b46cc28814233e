package services_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/domain/services"
	"ordertaking/internal/core/ports"
)

type MockAcknowledgmentSender struct{ mock.Mock }

func (m *MockAcknowledgmentSender) Send(acknowledgment ports.OrderAcknowledgment) ports.SendResult {
	args := m.Called(acknowledgment)
	return args.Get(0).(ports.SendResult)
}

func plainLetter(order.PricedOrderWithShipping) ports.Letter {
	return ports.Letter("thank you for your order")
}

func TestAcknowledger_Acknowledge_Sent(t *testing.T) {
	pricedOrder := testPricedOrder(t, "CA", "US", order.VipStatusNormal)
	withShipping := services.AddShippingInfo(services.CalculateShippingCost, pricedOrder)

	sender := new(MockAcknowledgmentSender)
	sender.On("Send", mock.Anything).Return(ports.Sent).Once()

	acknowledger := services.NewAcknowledger(plainLetter, sender)

	sent, ok := acknowledger.Acknowledge(withShipping).Get()
	require.True(t, ok)
	require.Equal(t, pricedOrder.OrderID(), sent.OrderID)
	require.Equal(t, pricedOrder.CustomerInfo().Email(), sent.EmailAddress)
	sender.AssertExpectations(t)
}

func TestAcknowledger_Acknowledge_NotSent(t *testing.T) {
	pricedOrder := testPricedOrder(t, "CA", "US", order.VipStatusNormal)
	withShipping := services.AddShippingInfo(services.CalculateShippingCost, pricedOrder)

	sender := new(MockAcknowledgmentSender)
	sender.On("Send", mock.Anything).Return(ports.NotSent).Once()

	acknowledger := services.NewAcknowledger(plainLetter, sender)

	outcome := acknowledger.Acknowledge(withShipping)
	require.True(t, outcome.IsNone())
	sender.AssertExpectations(t)
}

func TestAcknowledger_Acknowledge_LetterGoesToCustomer(t *testing.T) {
	pricedOrder := testPricedOrder(t, "CA", "US", order.VipStatusNormal)
	withShipping := services.AddShippingInfo(services.CalculateShippingCost, pricedOrder)

	sender := new(MockAcknowledgmentSender)
	sender.On("Send", ports.OrderAcknowledgment{
		EmailAddress: pricedOrder.CustomerInfo().Email(),
		Letter:       ports.Letter("thank you for your order"),
	}).Return(ports.Sent).Once()

	acknowledger := services.NewAcknowledger(plainLetter, sender)
	acknowledger.Acknowledge(withShipping)
	sender.AssertExpectations(t)
}
