package kernel

import (
	"errors"
	"fmt"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Quantity bounds. Widgets are ordered in whole units, gizmos in kilograms.
const (
	UnitQuantityMin = 1
	UnitQuantityMax = 1000
)

// Kilogram quantity bounds, exclusive of nothing: [0.5, 100.0].
var (
	KilogramQuantityMin = decimal.RequireFromString("0.5")
	KilogramQuantityMax = decimal.RequireFromString("100.0")
)

// orderQuantityFieldName is the field name reported for any order-line
// quantity failure. The kind-specific rule is picked from the product code,
// but the submission field is the same either way, so failures always name
// the generic field.
const orderQuantityFieldName = "OrderQuantity"

// ErrUnitQuantityIsNotConstructed is returned when validating a zero-value UnitQuantity.
var ErrUnitQuantityIsNotConstructed = errors.New("UnitQuantity must be created via NewUnitQuantity")

// ErrKilogramQuantityIsNotConstructed is returned when validating a zero-value KilogramQuantity.
var ErrKilogramQuantityIsNotConstructed = errors.New("KilogramQuantity must be created via NewKilogramQuantity")

// ErrOrderQuantityIsNotConstructed is returned when validating a zero-value OrderQuantity.
var ErrOrderQuantityIsNotConstructed = errors.New("OrderQuantity must be created via NewOrderQuantity")

// UnitQuantity is a whole-unit order quantity in [1, 1000].
type UnitQuantity struct { //nolint:recvcheck //using for validation
	value int
	guard guard.ConstructorGuard
}

// NewUnitQuantity creates a UnitQuantity from an integer.
func NewUnitQuantity(fieldName string, value int) (UnitQuantity, error) {
	if value < UnitQuantityMin || value > UnitQuantityMax {
		return UnitQuantity{}, errs.NewValueIsOutOfRangeError(fieldName, value, UnitQuantityMin, UnitQuantityMax)
	}

	return UnitQuantity{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the UnitQuantity was created through the constructor.
func (q UnitQuantity) Validate() error {
	return q.guard.Validate(ErrUnitQuantityIsNotConstructed)
}

// Int returns the wrapped unit count.
func (q UnitQuantity) Int() int {
	return q.value
}

// KilogramQuantity is a weight-based order quantity in [0.5, 100.0] kilograms.
type KilogramQuantity struct { //nolint:recvcheck //using for validation
	value decimal.Decimal
	guard guard.ConstructorGuard
}

// NewKilogramQuantity creates a KilogramQuantity from a decimal.
func NewKilogramQuantity(fieldName string, value decimal.Decimal) (KilogramQuantity, error) {
	if value.LessThan(KilogramQuantityMin) || value.GreaterThan(KilogramQuantityMax) {
		return KilogramQuantity{}, errs.NewValueIsOutOfRangeError(
			fieldName, value.String(), KilogramQuantityMin.String(), KilogramQuantityMax.String())
	}

	return KilogramQuantity{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the KilogramQuantity was created through the constructor.
func (q KilogramQuantity) Validate() error {
	return q.guard.Validate(ErrKilogramQuantityIsNotConstructed)
}

// Decimal returns the wrapped weight.
func (q KilogramQuantity) Decimal() decimal.Decimal {
	return q.value
}

// OrderQuantity is the quantity of one order line. It is a tagged variant:
// the validation rule (whole units vs. kilograms) is selected by the kind
// of the line's already-resolved product code, not by a declared field on
// the submission.
type OrderQuantity struct { //nolint:recvcheck //using for validation
	kind      ProductCodeKind
	units     UnitQuantity
	kilograms KilogramQuantity
	guard     guard.ConstructorGuard
}

// NewOrderQuantity creates an OrderQuantity for the product identified by
// code. Widget lines require a whole number in [1, 1000]; gizmo lines
// require a decimal in [0.5, 100.0]. Failures always name the generic
// "OrderQuantity" field regardless of which rule applied.
func NewOrderQuantity(code ProductCode, quantity decimal.Decimal) (OrderQuantity, error) {
	if err := code.Validate(); err != nil {
		return OrderQuantity{}, err
	}

	switch code.Kind() {
	case WidgetKind:
		if !quantity.IsInteger() {
			return OrderQuantity{}, errs.NewValueIsInvalidErrorWithCause(orderQuantityFieldName,
				fmt.Errorf("%s is not a whole number of units", quantity))
		}

		// Range-check the decimal itself: IntPart wraps outside int64, so
		// converting first would let huge quantities alias back into range.
		if quantity.LessThan(decimal.NewFromInt(UnitQuantityMin)) ||
			quantity.GreaterThan(decimal.NewFromInt(UnitQuantityMax)) {
			return OrderQuantity{}, errs.NewValueIsOutOfRangeError(
				orderQuantityFieldName, quantity.String(), UnitQuantityMin, UnitQuantityMax)
		}

		units, err := NewUnitQuantity(orderQuantityFieldName, int(quantity.IntPart()))
		if err != nil {
			return OrderQuantity{}, err
		}

		return OrderQuantity{
			kind:  WidgetKind,
			units: units,
			guard: guard.NewConstructorGuard(),
		}, nil

	case GizmoKind:
		kilograms, err := NewKilogramQuantity(orderQuantityFieldName, quantity)
		if err != nil {
			return OrderQuantity{}, err
		}

		return OrderQuantity{
			kind:      GizmoKind,
			kilograms: kilograms,
			guard:     guard.NewConstructorGuard(),
		}, nil

	default:
		return OrderQuantity{}, errs.NewValueIsInvalidError(orderQuantityFieldName)
	}
}

// Validate checks that the OrderQuantity was created through the constructor.
func (q OrderQuantity) Validate() error {
	return q.guard.Validate(ErrOrderQuantityIsNotConstructed)
}

// Kind returns which quantity rule produced this value.
func (q OrderQuantity) Kind() ProductCodeKind {
	return q.kind
}

// Decimal returns the quantity as a decimal regardless of kind, for
// arithmetic such as line pricing.
func (q OrderQuantity) Decimal() decimal.Decimal {
	if q.kind == WidgetKind {
		return decimal.NewFromInt(int64(q.units.Int()))
	}
	return q.kilograms.Decimal()
}
