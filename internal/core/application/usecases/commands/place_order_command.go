package commands

import (
	"errors"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/pkg/guard"
)

// ErrPlaceOrderCommandIsNotConstructed is returned when validating a
// zero-value PlaceOrderCommand.
var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor")

// PlaceOrderCommand carries one raw order submission into the workflow.
//
// The command deliberately performs no business validation: the submission
// travels through as untrusted strings, and the validation stage inside the
// handler decides what is acceptable. Constructing the command only pins
// down that a submission was actually provided.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(unvalidatedOrder)
//	if err != nil {
//	    return fmt.Errorf("invalid request: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(validator, pricer, calc, acknowledger)
//	events, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	unvalidatedOrder order.UnvalidatedOrder

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command from a raw order submission.
func NewPlaceOrderCommand(unvalidatedOrder order.UnvalidatedOrder) (PlaceOrderCommand, error) {
	return PlaceOrderCommand{
		unvalidatedOrder: unvalidatedOrder,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// UnvalidatedOrder returns the raw submission.
func (c PlaceOrderCommand) UnvalidatedOrder() order.UnvalidatedOrder {
	return c.unvalidatedOrder
}
