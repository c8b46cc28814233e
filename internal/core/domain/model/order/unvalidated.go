package order

import "github.com/shopspring/decimal"

// UnvalidatedOrder is the raw order submission exactly as the caller sent
// it: loose strings and numbers, no invariants. It is the input of the
// validation stage and is never trusted beyond it.
type UnvalidatedOrder struct {
	OrderID         string
	CustomerInfo    UnvalidatedCustomerInfo
	ShippingAddress UnvalidatedAddress
	BillingAddress  UnvalidatedAddress
	Lines           []UnvalidatedOrderLine
	PromotionCode   string
}

// UnvalidatedCustomerInfo carries the raw customer fields of a submission.
type UnvalidatedCustomerInfo struct {
	FirstName    string
	LastName     string
	EmailAddress string
	VipStatus    string
}

// UnvalidatedAddress carries the raw address fields of a submission.
// AddressLine2 through AddressLine4 are optional.
type UnvalidatedAddress struct {
	AddressLine1 string
	AddressLine2 string
	AddressLine3 string
	AddressLine4 string
	City         string
	ZipCode      string
	State        string
	Country      string
}

// UnvalidatedOrderLine carries the raw fields of one order line.
type UnvalidatedOrderLine struct {
	OrderLineID string
	ProductCode string
	Quantity    decimal.Decimal
}

// CheckedAddress is an address the external address-verification capability
// has confirmed to exist. The fields are still raw: the validation stage
// re-validates the returned values into a typed Address.
type CheckedAddress struct {
	Address UnvalidatedAddress
}
