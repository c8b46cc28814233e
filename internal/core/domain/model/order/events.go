package order

import (
	"fmt"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/result"
)

// PlaceOrderEvent is one domain event emitted for a successfully placed
// order. It is a closed variant over ShippableOrderPlaced,
// BillableOrderPlaced, and AcknowledgmentSent; consumers switch
// exhaustively on the concrete type.
type PlaceOrderEvent interface {
	isPlaceOrderEvent()
}

// ShippableOrderLine is one product line as the shipping department sees
// it: what to ship and how much of it. Comment lines never appear here.
type ShippableOrderLine struct {
	ProductCode kernel.ProductCode
	Quantity    kernel.OrderQuantity
}

// PdfAttachment names the confirmation document reserved for the shipping
// workflow. The bytes are produced downstream; the event only fixes the name.
type PdfAttachment struct {
	Name  string
	Bytes []byte
}

// ShippableOrderPlaced tells the shipping department a new order is ready.
// Exactly one is emitted per successfully placed order.
type ShippableOrderPlaced struct {
	OrderID       kernel.OrderID
	ShipmentLines []ShippableOrderLine
	Pdf           PdfAttachment
}

func (ShippableOrderPlaced) isPlaceOrderEvent() {}

// BillableOrderPlaced tells billing to collect payment. It is emitted only
// when the order actually costs something.
type BillableOrderPlaced struct {
	OrderID        kernel.OrderID
	BillingAddress Address
	AmountToBill   kernel.BillingAmount
}

func (BillableOrderPlaced) isPlaceOrderEvent() {}

// AcknowledgmentSent records that the customer confirmation was delivered.
// It is emitted only when the send capability reported success.
type AcknowledgmentSent struct {
	OrderID      kernel.OrderID
	EmailAddress kernel.EmailAddress
}

func (AcknowledgmentSent) isPlaceOrderEvent() {}

// CreateEvents assembles the event list for a priced order and the optional
// acknowledgment outcome. Emission order is fixed: the acknowledgment event
// (when present) first, then the shippable-order event (always), then the
// billable-order event (only for a positive billing amount).
func CreateEvents(pricedOrder PricedOrder, acknowledgment result.Option[AcknowledgmentSent]) []PlaceOrderEvent {
	events := make([]PlaceOrderEvent, 0, 3)

	if ack, ok := acknowledgment.Get(); ok {
		events = append(events, ack)
	}

	events = append(events, createShippingEvent(pricedOrder))

	if pricedOrder.AmountToBill().IsPositive() {
		events = append(events, BillableOrderPlaced{
			OrderID:        pricedOrder.OrderID(),
			BillingAddress: pricedOrder.BillingAddress(),
			AmountToBill:   pricedOrder.AmountToBill(),
		})
	}

	return events
}

// createShippingEvent derives the shipment lines from the priced line list.
// The variant switch is exhaustive: product lines ship, comment lines are
// annotations and are skipped deliberately.
func createShippingEvent(pricedOrder PricedOrder) ShippableOrderPlaced {
	shipmentLines := make([]ShippableOrderLine, 0, len(pricedOrder.Lines()))
	for _, line := range pricedOrder.Lines() {
		switch l := line.(type) {
		case PricedProductLine:
			shipmentLines = append(shipmentLines, ShippableOrderLine{
				ProductCode: l.ProductCode(),
				Quantity:    l.Quantity(),
			})
		case CommentLine:
			// Nothing to ship for an annotation.
		}
	}

	return ShippableOrderPlaced{
		OrderID:       pricedOrder.OrderID(),
		ShipmentLines: shipmentLines,
		Pdf: PdfAttachment{
			Name: fmt.Sprintf("Order_%s.pdf", pricedOrder.OrderID()),
		},
	}
}
