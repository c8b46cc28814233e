package commands

import (
	"context"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/domain/services"
	"ordertaking/internal/core/ports"
)

// PlaceOrderCommandHandler runs the whole place-order workflow: validate,
// price, classify shipping, acknowledge the customer, and assemble the
// outgoing events. The stages are pure domain services; all I/O reaches the
// handler through the capabilities injected at construction.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(
//	    services.NewOrderValidator(catalog, addressChecker),
//	    services.NewOrderPricer(getPricingFunction),
//	    services.CalculateShippingCost,
//	    services.NewAcknowledger(renderLetter, sender),
//	)
//
//	events, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err // *order.ValidationError, *order.PricingError, or *order.RemoteServiceError
//	}
type PlaceOrderCommandHandler struct {
	validator             services.OrderValidator
	pricer                services.OrderPricer
	calculateShippingCost ports.ShippingCostCalculator
	acknowledger          services.Acknowledger
}

// NewPlaceOrderCommandHandler creates a handler over the workflow stages.
func NewPlaceOrderCommandHandler(
	validator services.OrderValidator,
	pricer services.OrderPricer,
	calculateShippingCost ports.ShippingCostCalculator,
	acknowledger services.Acknowledger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		validator:             validator,
		pricer:                pricer,
		calculateShippingCost: calculateShippingCost,
		acknowledger:          acknowledger,
	}
}

// Handle processes one order submission end to end and returns the events
// to publish. The stages run strictly in order and the first failure wins:
// a submission that fails validation is never priced, and one that fails
// pricing never reaches shipping. Acknowledgment delivery cannot fail the
// order; an undelivered letter just means no AcknowledgmentSent event.
func (h PlaceOrderCommandHandler) Handle(
	ctx context.Context, cmd PlaceOrderCommand,
) ([]order.PlaceOrderEvent, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	validated, err := h.validator.Validate(ctx, cmd.UnvalidatedOrder())
	if err != nil {
		return nil, err
	}

	priced, err := h.pricer.Price(validated)
	if err != nil {
		return nil, err
	}

	withShipping := services.FreeVipShipping(services.AddShippingInfo(h.calculateShippingCost, priced))

	acknowledgment := h.acknowledger.Acknowledge(withShipping)

	return order.CreateEvents(priced, acknowledgment), nil
}
