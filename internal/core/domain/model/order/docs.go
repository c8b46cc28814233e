// Package order models one order submission at each stage of the
// place-order pipeline. The representations widen in typedness as the
// pipeline progresses:
//
//	UnvalidatedOrder -> ValidatedOrder -> PricedOrder -> PricedOrderWithShipping
//
// UnvalidatedOrder is raw caller input with no invariants. Each later
// representation is built only from constrained kernel values, so holding
// one is proof the earlier stages succeeded. Stages consume their input by
// value and produce a new immutable value; nothing is shared or mutated
// across stage boundaries.
//
// The package also defines the domain events emitted for a successfully
// placed order and the typed error union returned when the workflow fails.
package order
