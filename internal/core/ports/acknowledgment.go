package ports

import (
	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
)

// Letter is the rendered text of a customer order confirmation.
type Letter string

// LetterRenderer renders the confirmation letter for a fully priced and
// shipping-classified order. It is total.
type LetterRenderer func(o order.PricedOrderWithShipping) Letter

// OrderAcknowledgment pairs the rendered letter with the address it goes to.
type OrderAcknowledgment struct {
	EmailAddress kernel.EmailAddress
	Letter       Letter
}

// SendResult is the binary outcome of an acknowledgment send attempt.
// There is no error channel: delivery either happened or it did not, and
// the workflow treats a failed send as a skipped event, never as a failure.
type SendResult int

const (
	// NotSent means the acknowledgment could not be delivered.
	NotSent SendResult = iota

	// Sent means the acknowledgment was delivered.
	Sent
)

// AcknowledgmentSender delivers an order confirmation to the customer.
type AcknowledgmentSender interface {
	Send(acknowledgment OrderAcknowledgment) SendResult
}

// ShippingCostCalculator computes the shipping cost for a priced order.
// It is total: every priced order maps to some valid Price.
type ShippingCostCalculator func(o order.PricedOrder) kernel.Price
