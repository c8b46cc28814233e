package services

import (
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
	"ordertaking/internal/pkg/result"
)

// Acknowledger renders and sends the customer confirmation letter.
type Acknowledger struct {
	renderLetter ports.LetterRenderer
	sender       ports.AcknowledgmentSender
}

// NewAcknowledger creates an Acknowledger over the injected renderer and sender.
func NewAcknowledger(renderLetter ports.LetterRenderer, sender ports.AcknowledgmentSender) Acknowledger {
	return Acknowledger{renderLetter: renderLetter, sender: sender}
}

// Acknowledge sends the confirmation and reports whether it was delivered.
// A failed send yields None: acknowledgment is best-effort and never fails
// the order.
func (a Acknowledger) Acknowledge(orderWithShipping order.PricedOrderWithShipping) result.Option[order.AcknowledgmentSent] {
	pricedOrder := orderWithShipping.PricedOrder()

	acknowledgment := ports.OrderAcknowledgment{
		EmailAddress: pricedOrder.CustomerInfo().Email(),
		Letter:       a.renderLetter(orderWithShipping),
	}

	if a.sender.Send(acknowledgment) != ports.Sent {
		return result.None[order.AcknowledgmentSent]()
	}

	return result.Some(order.AcknowledgmentSent{
		OrderID:      pricedOrder.OrderID(),
		EmailAddress: pricedOrder.CustomerInfo().Email(),
	})
}
