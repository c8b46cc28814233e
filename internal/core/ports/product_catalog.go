// Package ports defines the contracts for the external capabilities the
// place-order workflow consumes. The core treats every capability as
// opaque and replaceable at construction time; concrete implementations
// live under internal/adapters/out.
package ports

import (
	"context"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
)

// ProductCatalog answers whether a syntactically valid product code names a
// real product. A false answer becomes a validation error upstream; a
// non-nil error is a transport-level failure that the adapter has already
// wrapped as *order.RemoteServiceError and passes through the workflow
// unchanged.
type ProductCatalog interface {
	// Exists reports whether the product code is known to the catalog.
	Exists(ctx context.Context, code kernel.ProductCode) (bool, error)
}

// PricingFunction resolves the price of one product under a chosen pricing
// strategy. It is total: every constructed product code prices to some
// valid Price.
type PricingFunction func(code kernel.ProductCode) kernel.Price

// GetPricingFunction selects the pricing function for an order's resolved
// pricing method. For standard pricing it returns the standard price book
// lookup; for a promotion it returns a lookup that tries the promotion's
// price table first and falls back per product to the standard book.
// It is total: an unknown promotion code simply prices everything from the
// standard book.
type GetPricingFunction func(method order.PricingMethod) PricingFunction
