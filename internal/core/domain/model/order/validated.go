package order

import (
	"errors"
	"strings"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// ErrValidatedOrderLineIsNotConstructed is returned when validating a zero-value ValidatedOrderLine.
var ErrValidatedOrderLineIsNotConstructed = errors.New(
	"ValidatedOrderLine must be created via NewValidatedOrderLine")

// ErrValidatedOrderIsNotConstructed is returned when validating a zero-value ValidatedOrder.
var ErrValidatedOrderIsNotConstructed = errors.New("ValidatedOrder must be created via NewValidatedOrder")

// PromotionCode names a promotional price table. It carries whatever
// non-blank string the caller submitted; whether a table by that name
// exists is the pricing provider's concern.
type PromotionCode string

// PricingMethodKind distinguishes standard from promotional pricing.
type PricingMethodKind int

const (
	// PricingMethodStandard prices every line from the standard price book.
	PricingMethodStandard PricingMethodKind = iota

	// PricingMethodPromotion tries a promotion-specific price table first
	// and falls back to the standard price book per product.
	PricingMethodPromotion
)

// PricingMethod is the pricing strategy resolved for an order: Standard, or
// Promotion carrying the submitted promotion code.
type PricingMethod struct {
	kind PricingMethodKind
	code PromotionCode
}

// NewPricingMethod resolves the pricing method from the raw promotion-code
// field: blank or whitespace-only input means standard pricing, anything
// else is a promotion. The code is not checked for existence here.
func NewPricingMethod(rawPromotionCode string) PricingMethod {
	if strings.TrimSpace(rawPromotionCode) == "" {
		return PricingMethod{kind: PricingMethodStandard}
	}
	return PricingMethod{
		kind: PricingMethodPromotion,
		code: PromotionCode(rawPromotionCode),
	}
}

// Kind returns whether the method is standard or promotional.
func (m PricingMethod) Kind() PricingMethodKind {
	return m.kind
}

// PromotionCode returns the promotion code. It is meaningful only when
// Kind is PricingMethodPromotion.
func (m PricingMethod) PromotionCode() PromotionCode {
	return m.code
}

// ValidatedOrderLine is one fully validated order line: its identifier, a
// product code known to exist, and a quantity matching the product kind.
type ValidatedOrderLine struct { //nolint:recvcheck //using for validation
	orderLineID kernel.OrderLineID
	productCode kernel.ProductCode
	quantity    kernel.OrderQuantity
	guard       guard.ConstructorGuard
}

// NewValidatedOrderLine creates a ValidatedOrderLine from validated components.
func NewValidatedOrderLine(
	orderLineID kernel.OrderLineID,
	productCode kernel.ProductCode,
	quantity kernel.OrderQuantity,
) (ValidatedOrderLine, error) {
	if err := errors.Join(
		orderLineID.Validate(),
		productCode.Validate(),
		quantity.Validate(),
	); err != nil {
		return ValidatedOrderLine{}, err
	}

	return ValidatedOrderLine{
		orderLineID: orderLineID,
		productCode: productCode,
		quantity:    quantity,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the line was created through the constructor.
func (l ValidatedOrderLine) Validate() error {
	return l.guard.Validate(ErrValidatedOrderLineIsNotConstructed)
}

// OrderLineID returns the line identifier.
func (l ValidatedOrderLine) OrderLineID() kernel.OrderLineID {
	return l.orderLineID
}

// ProductCode returns the validated product code.
func (l ValidatedOrderLine) ProductCode() kernel.ProductCode {
	return l.productCode
}

// Quantity returns the validated quantity.
func (l ValidatedOrderLine) Quantity() kernel.OrderQuantity {
	return l.quantity
}

// ValidatedOrder is the output of the validation stage: every field typed,
// every product known to exist, both addresses verified, and the pricing
// method resolved. Holding one is proof validation succeeded.
type ValidatedOrder struct { //nolint:recvcheck //using for validation
	orderID         kernel.OrderID
	customerInfo    CustomerInfo
	shippingAddress Address
	billingAddress  Address
	lines           []ValidatedOrderLine
	pricingMethod   PricingMethod
	guard           guard.ConstructorGuard
}

// NewValidatedOrder creates a ValidatedOrder from validated components.
// The line list must be non-empty; an order with nothing on it is not an
// order.
func NewValidatedOrder(
	orderID kernel.OrderID,
	customerInfo CustomerInfo,
	shippingAddress Address,
	billingAddress Address,
	lines []ValidatedOrderLine,
	pricingMethod PricingMethod,
) (ValidatedOrder, error) {
	if err := errors.Join(
		orderID.Validate(),
		customerInfo.Validate(),
		shippingAddress.Validate(),
		billingAddress.Validate(),
	); err != nil {
		return ValidatedOrder{}, err
	}

	if len(lines) == 0 {
		return ValidatedOrder{}, errs.NewValueIsRequiredError("OrderLines")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return ValidatedOrder{}, err
		}
	}

	return ValidatedOrder{
		orderID:         orderID,
		customerInfo:    customerInfo,
		shippingAddress: shippingAddress,
		billingAddress:  billingAddress,
		lines:           lines,
		pricingMethod:   pricingMethod,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the order was created through the constructor.
func (o ValidatedOrder) Validate() error {
	return o.guard.Validate(ErrValidatedOrderIsNotConstructed)
}

// OrderID returns the order identifier.
func (o ValidatedOrder) OrderID() kernel.OrderID {
	return o.orderID
}

// CustomerInfo returns the validated customer.
func (o ValidatedOrder) CustomerInfo() CustomerInfo {
	return o.customerInfo
}

// ShippingAddress returns the verified shipping address.
func (o ValidatedOrder) ShippingAddress() Address {
	return o.shippingAddress
}

// BillingAddress returns the verified billing address.
func (o ValidatedOrder) BillingAddress() Address {
	return o.billingAddress
}

// Lines returns the validated order lines in submission order.
func (o ValidatedOrder) Lines() []ValidatedOrderLine {
	return o.lines
}

// PricingMethod returns the resolved pricing strategy.
func (o ValidatedOrder) PricingMethod() PricingMethod {
	return o.pricingMethod
}
