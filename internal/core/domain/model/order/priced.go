package order

import (
	"errors"
	"fmt"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// ErrPricedOrderIsNotConstructed is returned when validating a zero-value PricedOrder.
var ErrPricedOrderIsNotConstructed = errors.New("PricedOrder must be created via NewPricedOrder")

// ErrPricedOrderWithShippingIsNotConstructed is returned when validating a
// zero-value PricedOrderWithShipping.
var ErrPricedOrderWithShippingIsNotConstructed = errors.New(
	"PricedOrderWithShipping must be created via NewPricedOrderWithShipping")

// PricedOrderLine is one line of a priced order. It is a closed variant:
// either a PricedProductLine carrying a real product and its computed
// price, or a CommentLine carrying display text with no price. Consumers
// must switch exhaustively on the concrete type; shipment-line derivation
// in particular skips CommentLine explicitly.
type PricedOrderLine interface {
	isPricedOrderLine()
}

// PricedProductLine is a priced line for a real product.
type PricedProductLine struct {
	orderLineID kernel.OrderLineID
	productCode kernel.ProductCode
	quantity    kernel.OrderQuantity
	linePrice   kernel.Price
}

// NewPricedProductLine creates a PricedProductLine from validated components.
func NewPricedProductLine(
	orderLineID kernel.OrderLineID,
	productCode kernel.ProductCode,
	quantity kernel.OrderQuantity,
	linePrice kernel.Price,
) (PricedProductLine, error) {
	if err := errors.Join(
		orderLineID.Validate(),
		productCode.Validate(),
		quantity.Validate(),
		linePrice.Validate(),
	); err != nil {
		return PricedProductLine{}, err
	}

	return PricedProductLine{
		orderLineID: orderLineID,
		productCode: productCode,
		quantity:    quantity,
		linePrice:   linePrice,
	}, nil
}

func (PricedProductLine) isPricedOrderLine() {}

// OrderLineID returns the line identifier.
func (l PricedProductLine) OrderLineID() kernel.OrderLineID {
	return l.orderLineID
}

// ProductCode returns the product code.
func (l PricedProductLine) ProductCode() kernel.ProductCode {
	return l.productCode
}

// Quantity returns the ordered quantity.
func (l PricedProductLine) Quantity() kernel.OrderQuantity {
	return l.quantity
}

// LinePrice returns the computed price for the whole line.
func (l PricedProductLine) LinePrice() kernel.Price {
	return l.linePrice
}

// CommentLine is a synthetic annotation line, such as the note recording
// which promotion applied. It carries no price and never becomes a
// shipment line, but it is retained in the priced line list for display
// and serialization.
type CommentLine struct {
	text string
}

// NewCommentLine creates a CommentLine with the given display text.
func NewCommentLine(text string) CommentLine {
	return CommentLine{text: text}
}

func (CommentLine) isPricedOrderLine() {}

// Text returns the annotation text.
func (l CommentLine) Text() string {
	return l.text
}

// PricedOrder is the output of the pricing stage: the validated order data
// plus a priced line list and the total billing amount.
type PricedOrder struct { //nolint:recvcheck //using for validation
	orderID         kernel.OrderID
	customerInfo    CustomerInfo
	shippingAddress Address
	billingAddress  Address
	amountToBill    kernel.BillingAmount
	lines           []PricedOrderLine
	pricingMethod   PricingMethod
	guard           guard.ConstructorGuard
}

// NewPricedOrder creates a PricedOrder from validated components.
func NewPricedOrder(
	orderID kernel.OrderID,
	customerInfo CustomerInfo,
	shippingAddress Address,
	billingAddress Address,
	amountToBill kernel.BillingAmount,
	lines []PricedOrderLine,
	pricingMethod PricingMethod,
) (PricedOrder, error) {
	if err := errors.Join(
		orderID.Validate(),
		customerInfo.Validate(),
		shippingAddress.Validate(),
		billingAddress.Validate(),
		amountToBill.Validate(),
	); err != nil {
		return PricedOrder{}, err
	}

	if len(lines) == 0 {
		return PricedOrder{}, errs.NewValueIsRequiredError("OrderLines")
	}

	return PricedOrder{
		orderID:         orderID,
		customerInfo:    customerInfo,
		shippingAddress: shippingAddress,
		billingAddress:  billingAddress,
		amountToBill:    amountToBill,
		lines:           lines,
		pricingMethod:   pricingMethod,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the order was created through the constructor.
func (o PricedOrder) Validate() error {
	return o.guard.Validate(ErrPricedOrderIsNotConstructed)
}

// OrderID returns the order identifier.
func (o PricedOrder) OrderID() kernel.OrderID {
	return o.orderID
}

// CustomerInfo returns the validated customer.
func (o PricedOrder) CustomerInfo() CustomerInfo {
	return o.customerInfo
}

// ShippingAddress returns the verified shipping address.
func (o PricedOrder) ShippingAddress() Address {
	return o.shippingAddress
}

// BillingAddress returns the verified billing address.
func (o PricedOrder) BillingAddress() Address {
	return o.billingAddress
}

// AmountToBill returns the total billing amount.
func (o PricedOrder) AmountToBill() kernel.BillingAmount {
	return o.amountToBill
}

// Lines returns the priced line list, including any comment lines.
func (o PricedOrder) Lines() []PricedOrderLine {
	return o.lines
}

// PricingMethod returns the pricing strategy that priced this order.
func (o PricedOrder) PricingMethod() PricingMethod {
	return o.pricingMethod
}

// ShippingMethod is the carrier service used to ship an order.
type ShippingMethod int

const (
	// PostalService is standard postal delivery.
	PostalService ShippingMethod = iota

	// Fedex24 is FedEx delivery within 24 hours.
	Fedex24

	// Fedex48 is FedEx delivery within 48 hours.
	Fedex48

	// Ups48 is UPS delivery within 48 hours.
	Ups48
)

// String returns the human-readable name of the shipping method.
func (m ShippingMethod) String() string {
	switch m {
	case PostalService:
		return "PostalService"
	case Fedex24:
		return "Fedex24"
	case Fedex48:
		return "Fedex48"
	case Ups48:
		return "Ups48"
	default:
		return "Unknown"
	}
}

// ShippingInfo is the shipping method and cost computed for an order.
type ShippingInfo struct {
	method ShippingMethod
	cost   kernel.Price
}

// NewShippingInfo creates a ShippingInfo from a method and a validated cost.
func NewShippingInfo(method ShippingMethod, cost kernel.Price) (ShippingInfo, error) {
	if err := cost.Validate(); err != nil {
		return ShippingInfo{}, err
	}

	return ShippingInfo{method: method, cost: cost}, nil
}

// MustShippingInfo creates a ShippingInfo and panics if the cost is not a
// constructed Price. For rate tables built from validated constants.
func MustShippingInfo(method ShippingMethod, cost kernel.Price) ShippingInfo {
	info, err := NewShippingInfo(method, cost)
	if err != nil {
		panic(fmt.Sprintf("MustShippingInfo: %s", err))
	}
	return info
}

// Method returns the carrier service.
func (s ShippingInfo) Method() ShippingMethod {
	return s.method
}

// Cost returns the shipping cost.
func (s ShippingInfo) Cost() kernel.Price {
	return s.cost
}

// PricedOrderWithShipping is the output of the shipping stage: the priced
// order plus its shipping classification.
type PricedOrderWithShipping struct { //nolint:recvcheck //using for validation
	pricedOrder  PricedOrder
	shippingInfo ShippingInfo
	guard        guard.ConstructorGuard
}

// WithShipping attaches shipping info to the priced order. The shipping
// stage is total, so this cannot fail: the receiver is valid by
// construction and the info carries an already-validated cost.
func (o PricedOrder) WithShipping(shippingInfo ShippingInfo) PricedOrderWithShipping {
	return PricedOrderWithShipping{
		pricedOrder:  o,
		shippingInfo: shippingInfo,
		guard:        guard.NewConstructorGuard(),
	}
}

// WithShippingInfo returns a copy with the shipping classification
// replaced. Used by the VIP override, which discards the tiered cost.
func (o PricedOrderWithShipping) WithShippingInfo(shippingInfo ShippingInfo) PricedOrderWithShipping {
	return PricedOrderWithShipping{
		pricedOrder:  o.pricedOrder,
		shippingInfo: shippingInfo,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate checks that the value was created through the constructor.
func (o PricedOrderWithShipping) Validate() error {
	return o.guard.Validate(ErrPricedOrderWithShippingIsNotConstructed)
}

// PricedOrder returns the underlying priced order.
func (o PricedOrderWithShipping) PricedOrder() PricedOrder {
	return o.pricedOrder
}

// ShippingInfo returns the computed shipping classification.
func (o PricedOrderWithShipping) ShippingInfo() ShippingInfo {
	return o.shippingInfo
}
