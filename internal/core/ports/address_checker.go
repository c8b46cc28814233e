package ports

import (
	"context"
	"errors"

	"ordertaking/internal/core/domain/model/order"
)

// Address verification failures with domain meaning. The validation stage
// maps both to a validation error; anything else returned by Check is a
// transport-level failure passed through as *order.RemoteServiceError.
var (
	// ErrAddressNotFound means the verifier could not locate the address.
	ErrAddressNotFound = errors.New("address not found")

	// ErrAddressInvalidFormat means the address fields were malformed
	// beyond what the verifier will attempt to resolve.
	ErrAddressInvalidFormat = errors.New("address has an invalid format")
)

// AddressChecker verifies that a raw address exists. On success it returns
// the checked address whose fields the validation stage re-validates into
// a typed order.Address; the verifier may have normalized them.
type AddressChecker interface {
	// Check verifies the address with the external service. The call may
	// suspend; it is the only capability besides the product catalog that
	// does, and the caller bounds it through ctx.
	Check(ctx context.Context, address order.UnvalidatedAddress) (order.CheckedAddress, error)
}
