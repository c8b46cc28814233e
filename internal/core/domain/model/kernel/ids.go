package kernel

import (
	"errors"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// idMaxLength bounds order and line identifiers the same way String50
// bounds free text.
const idMaxLength = 50

// ErrOrderIDIsNotConstructed is returned when validating a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errors.New("OrderID must be created via NewOrderID")

// ErrOrderLineIDIsNotConstructed is returned when validating a zero-value OrderLineID.
var ErrOrderLineIDIsNotConstructed = errors.New("OrderLineID must be created via NewOrderLineID")

// OrderID identifies one order submission. It is supplied by the caller,
// not generated here, so it carries whatever shape the upstream system
// uses as long as it is non-empty and at most 50 characters.
type OrderID struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewOrderID creates an OrderID from raw input.
func NewOrderID(fieldName string, raw string) (OrderID, error) {
	id := OrderID{
		guard: guard.NewConstructorGuard(),
	}

	if err := validateID(fieldName, raw); err != nil {
		return OrderID{}, err
	}

	id.value = raw
	return id, nil
}

// Validate checks that the OrderID was created through the constructor.
func (id OrderID) Validate() error {
	return id.guard.Validate(ErrOrderIDIsNotConstructed)
}

// String returns the wrapped identifier.
func (id OrderID) String() string {
	return id.value
}

// OrderLineID identifies one line within an order submission.
type OrderLineID struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewOrderLineID creates an OrderLineID from raw input.
func NewOrderLineID(fieldName string, raw string) (OrderLineID, error) {
	id := OrderLineID{
		guard: guard.NewConstructorGuard(),
	}

	if err := validateID(fieldName, raw); err != nil {
		return OrderLineID{}, err
	}

	id.value = raw
	return id, nil
}

// Validate checks that the OrderLineID was created through the constructor.
func (id OrderLineID) Validate() error {
	return id.guard.Validate(ErrOrderLineIDIsNotConstructed)
}

// String returns the wrapped identifier.
func (id OrderLineID) String() string {
	return id.value
}

func validateID(fieldName string, raw string) error {
	if raw == "" {
		return errs.NewValueIsRequiredError(fieldName)
	}
	if len(raw) > idMaxLength {
		return errs.NewValueIsOutOfRangeError(fieldName, len(raw), 1, idMaxLength)
	}
	return nil
}
