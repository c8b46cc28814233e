package order

import (
	"errors"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/guard"
	"ordertaking/internal/pkg/result"
)

// ErrAddressIsNotConstructed is returned when validating a zero-value Address.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress")

// Address is a fully validated postal address. Instances exist only for
// addresses the external verification capability confirmed and whose fields
// then passed the kernel validators.
type Address struct { //nolint:recvcheck //using for validation
	addressLine1 kernel.String50
	addressLine2 result.Option[kernel.String50]
	addressLine3 result.Option[kernel.String50]
	addressLine4 result.Option[kernel.String50]
	city         kernel.String50
	zipCode      kernel.ZipCode
	state        kernel.UsStateCode
	country      kernel.String50
	guard        guard.ConstructorGuard
}

// NewAddress creates an Address from validated components. Lines 2 through 4
// are optional and may be empty Options.
func NewAddress(
	addressLine1 kernel.String50,
	addressLine2, addressLine3, addressLine4 result.Option[kernel.String50],
	city kernel.String50,
	zipCode kernel.ZipCode,
	state kernel.UsStateCode,
	country kernel.String50,
) (Address, error) {
	if err := errors.Join(
		addressLine1.Validate(),
		city.Validate(),
		zipCode.Validate(),
		state.Validate(),
		country.Validate(),
	); err != nil {
		return Address{}, err
	}

	return Address{
		addressLine1: addressLine1,
		addressLine2: addressLine2,
		addressLine3: addressLine3,
		addressLine4: addressLine4,
		city:         city,
		zipCode:      zipCode,
		state:        state,
		country:      country,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Address was created through the constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// AddressLine1 returns the first, mandatory address line.
func (a Address) AddressLine1() kernel.String50 {
	return a.addressLine1
}

// AddressLine2 returns the optional second address line.
func (a Address) AddressLine2() result.Option[kernel.String50] {
	return a.addressLine2
}

// AddressLine3 returns the optional third address line.
func (a Address) AddressLine3() result.Option[kernel.String50] {
	return a.addressLine3
}

// AddressLine4 returns the optional fourth address line.
func (a Address) AddressLine4() result.Option[kernel.String50] {
	return a.addressLine4
}

// City returns the validated city.
func (a Address) City() kernel.String50 {
	return a.city
}

// ZipCode returns the validated zip code.
func (a Address) ZipCode() kernel.ZipCode {
	return a.zipCode
}

// State returns the validated US state code.
func (a Address) State() kernel.UsStateCode {
	return a.state
}

// Country returns the validated country name.
func (a Address) Country() kernel.String50 {
	return a.country
}
