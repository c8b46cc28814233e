package kernel

import (
	"errors"
	"fmt"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Money bounds. A single price is capped well below the billing cap so a
// multi-line order can still overflow the billing bound and must fail there.
var (
	PriceMin         = decimal.Zero
	PriceMax         = decimal.NewFromInt(1000)
	BillingAmountMin = decimal.Zero
	BillingAmountMax = decimal.NewFromInt(10000)
)

// ErrPriceIsNotConstructed is returned when validating a zero-value Price.
var ErrPriceIsNotConstructed = errors.New("Price must be created via NewPrice or MustPrice")

// ErrBillingAmountIsNotConstructed is returned when validating a zero-value BillingAmount.
var ErrBillingAmountIsNotConstructed = errors.New("BillingAmount must be created via NewBillingAmount or SumPrices")

// Price is a monetary amount in [0.00, 1000.00], used both for unit prices
// and for computed line prices.
type Price struct { //nolint:recvcheck //using for validation
	value decimal.Decimal
	guard guard.ConstructorGuard
}

// NewPrice creates a Price from a decimal, failing with
// ValueIsOutOfRangeError when the amount falls outside [PriceMin, PriceMax].
func NewPrice(value decimal.Decimal) (Price, error) {
	if value.LessThan(PriceMin) || value.GreaterThan(PriceMax) {
		return Price{}, errs.NewValueIsOutOfRangeError("Price", value.String(), PriceMin.String(), PriceMax.String())
	}

	return Price{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// MustPrice is the escape hatch for amounts already known to be valid, such
// as constants in a price table loaded from trusted storage. It panics on
// out-of-range input and must never be handed raw submission data.
func MustPrice(value decimal.Decimal) Price {
	p, err := NewPrice(value)
	if err != nil {
		panic(fmt.Sprintf("MustPrice: %s", err))
	}
	return p
}

// Validate checks that the Price was created through a constructor.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

// Decimal returns the wrapped amount.
func (p Price) Decimal() decimal.Decimal {
	return p.value
}

// String renders the amount with two decimal places.
func (p Price) String() string {
	return p.value.StringFixed(2)
}

// MultipliedBy computes quantity × price as a new Price, re-validated
// against the price bound. A large quantity can push a perfectly valid unit
// price out of range; that surfaces here as an error.
func (p Price) MultipliedBy(quantity decimal.Decimal) (Price, error) {
	return NewPrice(p.value.Mul(quantity))
}

// BillingAmount is the total amount billed for one order, in
// [0.00, 10000.00].
type BillingAmount struct { //nolint:recvcheck //using for validation
	value decimal.Decimal
	guard guard.ConstructorGuard
}

// NewBillingAmount creates a BillingAmount from a decimal, failing with
// ValueIsOutOfRangeError when the amount falls outside
// [BillingAmountMin, BillingAmountMax].
func NewBillingAmount(value decimal.Decimal) (BillingAmount, error) {
	if value.LessThan(BillingAmountMin) || value.GreaterThan(BillingAmountMax) {
		return BillingAmount{}, errs.NewValueIsOutOfRangeError(
			"BillingAmount", value.String(), BillingAmountMin.String(), BillingAmountMax.String())
	}

	return BillingAmount{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// SumPrices totals a list of line prices into a BillingAmount. Every
// operand is individually valid, but the sum is re-validated against the
// billing bound, which it can overflow.
func SumPrices(prices []Price) (BillingAmount, error) {
	total := decimal.Zero
	for _, p := range prices {
		if err := p.Validate(); err != nil {
			return BillingAmount{}, err
		}
		total = total.Add(p.value)
	}
	return NewBillingAmount(total)
}

// Validate checks that the BillingAmount was created through a constructor.
func (b BillingAmount) Validate() error {
	return b.guard.Validate(ErrBillingAmountIsNotConstructed)
}

// Decimal returns the wrapped amount.
func (b BillingAmount) Decimal() decimal.Decimal {
	return b.value
}

// String renders the amount with two decimal places.
func (b BillingAmount) String() string {
	return b.value.StringFixed(2)
}

// IsPositive reports whether anything is actually owed. The billable-order
// event is emitted only for positive amounts.
func (b BillingAmount) IsPositive() bool {
	return b.value.IsPositive()
}
