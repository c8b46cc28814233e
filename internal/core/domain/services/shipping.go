package services

import (
	"github.com/shopspring/decimal"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
)

// localStates are the US states close enough to the warehouse for the
// cheapest shipping rate.
var localStates = map[string]struct{}{
	"CA": {},
	"OR": {},
	"AZ": {},
	"NV": {},
}

var (
	shippingCostLocal  = kernel.MustPrice(decimal.NewFromInt(5))
	shippingCostUs     = kernel.MustPrice(decimal.NewFromInt(10))
	shippingCostAbroad = kernel.MustPrice(decimal.NewFromInt(20))
	shippingCostFree   = kernel.MustPrice(decimal.Zero)
)

// CalculateShippingCost classifies the order's destination into one of
// three rates: local US states, the rest of the US, and everywhere else.
// It satisfies ports.ShippingCostCalculator.
func CalculateShippingCost(pricedOrder order.PricedOrder) kernel.Price {
	destination := pricedOrder.ShippingAddress()

	if destination.Country().String() != "US" {
		return shippingCostAbroad
	}
	if _, ok := localStates[destination.State().String()]; ok {
		return shippingCostLocal
	}
	return shippingCostUs
}

// AddShippingInfo attaches the shipping classification to a priced order
// using the given rate calculator. All orders ship Fedex24. The function is
// total: calculators return constructed prices, so classification cannot
// fail.
func AddShippingInfo(
	calculateShippingCost ports.ShippingCostCalculator,
	pricedOrder order.PricedOrder,
) order.PricedOrderWithShipping {
	shippingInfo := order.MustShippingInfo(order.Fedex24, calculateShippingCost(pricedOrder))
	return pricedOrder.WithShipping(shippingInfo)
}

// FreeVipShipping upgrades VIP customers to free shipping, leaving
// everyone else untouched. It runs after AddShippingInfo so the override
// wins regardless of the computed rate.
func FreeVipShipping(orderWithShipping order.PricedOrderWithShipping) order.PricedOrderWithShipping {
	if orderWithShipping.PricedOrder().CustomerInfo().VipStatus() != order.VipStatusVip {
		return orderWithShipping
	}

	return orderWithShipping.WithShippingInfo(order.MustShippingInfo(order.Fedex24, shippingCostFree))
}
