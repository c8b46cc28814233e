package order

import (
	"errors"
	"fmt"
	"strings"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// ErrCustomerInfoIsNotConstructed is returned when validating a zero-value CustomerInfo.
var ErrCustomerInfoIsNotConstructed = errors.New("CustomerInfo must be created via NewCustomerInfo")

// VipStatus marks whether a customer receives VIP shipping treatment.
type VipStatus int

const (
	// VipStatusUnknown is the zero value and never appears on a
	// constructed CustomerInfo.
	VipStatusUnknown VipStatus = iota

	// VipStatusNormal is a regular customer.
	VipStatusNormal

	// VipStatusVip receives free expedited shipping.
	VipStatusVip
)

// NewVipStatus parses the raw status string. A blank field or "normal"
// (case-insensitive) is Normal, "vip" is VIP, anything else is invalid.
func NewVipStatus(fieldName string, raw string) (VipStatus, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "normal":
		return VipStatusNormal, nil
	case "vip":
		return VipStatusVip, nil
	default:
		return VipStatusUnknown, errs.NewValueIsInvalidErrorWithCause(fieldName,
			fmt.Errorf("%q is not a recognized VIP status", raw))
	}
}

// String returns the human-readable name of the status.
func (s VipStatus) String() string {
	switch s {
	case VipStatusNormal:
		return "Normal"
	case VipStatusVip:
		return "VIP"
	default:
		return "Unknown"
	}
}

// PersonalName is a customer's validated first and last name.
type PersonalName struct {
	firstName kernel.String50
	lastName  kernel.String50
}

// NewPersonalName creates a PersonalName from validated name parts.
func NewPersonalName(firstName, lastName kernel.String50) (PersonalName, error) {
	if err := errors.Join(firstName.Validate(), lastName.Validate()); err != nil {
		return PersonalName{}, err
	}

	return PersonalName{firstName: firstName, lastName: lastName}, nil
}

// FirstName returns the validated first name.
func (n PersonalName) FirstName() kernel.String50 {
	return n.firstName
}

// LastName returns the validated last name.
func (n PersonalName) LastName() kernel.String50 {
	return n.lastName
}

// CustomerInfo is the validated customer of an order: name, contact email,
// and VIP status.
type CustomerInfo struct { //nolint:recvcheck //using for validation
	name      PersonalName
	email     kernel.EmailAddress
	vipStatus VipStatus
	guard     guard.ConstructorGuard
}

// NewCustomerInfo creates a CustomerInfo from validated components.
func NewCustomerInfo(name PersonalName, email kernel.EmailAddress, vipStatus VipStatus) (CustomerInfo, error) {
	if err := email.Validate(); err != nil {
		return CustomerInfo{}, err
	}
	if vipStatus != VipStatusNormal && vipStatus != VipStatusVip {
		return CustomerInfo{}, errs.NewValueIsInvalidError("VipStatus")
	}

	return CustomerInfo{
		name:      name,
		email:     email,
		vipStatus: vipStatus,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the CustomerInfo was created through the constructor.
func (c CustomerInfo) Validate() error {
	return c.guard.Validate(ErrCustomerInfoIsNotConstructed)
}

// Name returns the customer's personal name.
func (c CustomerInfo) Name() PersonalName {
	return c.name
}

// Email returns the customer's contact address.
func (c CustomerInfo) Email() kernel.EmailAddress {
	return c.email
}

// VipStatus returns the customer's VIP classification.
func (c CustomerInfo) VipStatus() VipStatus {
	return c.vipStatus
}
