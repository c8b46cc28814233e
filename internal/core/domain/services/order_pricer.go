package services

import (
	"fmt"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
)

// OrderPricer prices a validated order. The pricing function itself is
// resolved from the order's pricing method by the injected provider, so the
// pricer stays ignorant of where prices come from.
type OrderPricer struct {
	getPricingFunction ports.GetPricingFunction
}

// NewOrderPricer creates a pricer over the injected pricing provider.
func NewOrderPricer(getPricingFunction ports.GetPricingFunction) OrderPricer {
	return OrderPricer{getPricingFunction: getPricingFunction}
}

// Price computes every line price and the order total. Any price that falls
// outside its allowed range surfaces as *order.PricingError: pricing gets
// trusted inputs, so a failure here is the pipeline's problem, not the
// customer's.
//
// Under promotional pricing a comment line recording the applied promotion
// is appended after the product lines.
func (p OrderPricer) Price(validated order.ValidatedOrder) (order.PricedOrder, error) {
	pricingFunction := p.getPricingFunction(validated.PricingMethod())

	pricedLines := make([]order.PricedOrderLine, 0, len(validated.Lines())+1)
	linePrices := make([]kernel.Price, 0, len(validated.Lines()))

	for _, line := range validated.Lines() {
		pricedLine, err := priceLine(pricingFunction, line)
		if err != nil {
			return order.PricedOrder{}, order.NewPricingErrorFrom(err)
		}

		pricedLines = append(pricedLines, pricedLine)
		linePrices = append(linePrices, pricedLine.LinePrice())
	}

	if validated.PricingMethod().Kind() == order.PricingMethodPromotion {
		pricedLines = append(pricedLines, order.NewCommentLine(
			fmt.Sprintf("Applied promotion %s", validated.PricingMethod().PromotionCode())))
	}

	amountToBill, err := kernel.SumPrices(linePrices)
	if err != nil {
		return order.PricedOrder{}, order.NewPricingErrorFrom(err)
	}

	pricedOrder, err := order.NewPricedOrder(
		validated.OrderID(),
		validated.CustomerInfo(),
		validated.ShippingAddress(),
		validated.BillingAddress(),
		amountToBill,
		pricedLines,
		validated.PricingMethod(),
	)
	if err != nil {
		return order.PricedOrder{}, order.NewPricingErrorFrom(err)
	}

	return pricedOrder, nil
}

func priceLine(pricingFunction ports.PricingFunction, line order.ValidatedOrderLine) (order.PricedProductLine, error) {
	unitPrice := pricingFunction(line.ProductCode())

	linePrice, err := unitPrice.MultipliedBy(line.Quantity().Decimal())
	if err != nil {
		return order.PricedProductLine{}, err
	}

	return order.NewPricedProductLine(line.OrderLineID(), line.ProductCode(), line.Quantity(), linePrice)
}
