// Package addrcheck implements the address verification capability. The
// screening rules are local and deterministic, standing in for the vendor's
// address API behind the same port.
package addrcheck

import (
	"context"
	"regexp"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
)

var zipPattern = regexp.MustCompile(`^\d{5}$`)

// ScreeningChecker verifies addresses by screening their shape: an address
// with no street line or city is malformed, and one whose zip code is not
// five digits is treated as unknown to the postal service.
type ScreeningChecker struct{}

// NewScreeningChecker creates a screening address checker.
func NewScreeningChecker() ScreeningChecker {
	return ScreeningChecker{}
}

// Check screens the address and returns it unchanged when it passes.
func (ScreeningChecker) Check(
	_ context.Context, address order.UnvalidatedAddress,
) (order.CheckedAddress, error) {
	if address.AddressLine1 == "" || address.City == "" {
		return order.CheckedAddress{}, ports.ErrAddressInvalidFormat
	}

	if !zipPattern.MatchString(address.ZipCode) {
		return order.CheckedAddress{}, ports.ErrAddressNotFound
	}

	return order.CheckedAddress{Address: address}, nil
}
