package services

import (
	"context"
	"errors"
	"fmt"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
	"ordertaking/internal/pkg/result"
)

// OrderValidator turns a raw order submission into a fully typed
// ValidatedOrder, consulting the product catalog and the address
// verification capability.
//
// Validation is monadic and ordered: order id, then customer, then shipping
// address, then billing address, then each line in submission order. The
// first failing check aborts everything after it; failures are never
// aggregated across fields or lines.
//
// Errors returned are always part of the workflow union: constraint
// violations and unknown products/addresses come back as
// *order.ValidationError, while transport failures raised by the capability
// adapters pass through as *order.RemoteServiceError.
type OrderValidator struct {
	catalog        ports.ProductCatalog
	addressChecker ports.AddressChecker
}

// NewOrderValidator creates a validator over the injected capabilities.
func NewOrderValidator(catalog ports.ProductCatalog, addressChecker ports.AddressChecker) OrderValidator {
	return OrderValidator{
		catalog:        catalog,
		addressChecker: addressChecker,
	}
}

// addressPair carries both verified addresses out of the suspended
// address-check chain.
type addressPair struct {
	shipping order.Address
	billing  order.Address
}

// Validate runs the full validation algorithm against the submission.
func (v OrderValidator) Validate(ctx context.Context, unvalidated order.UnvalidatedOrder) (order.ValidatedOrder, error) {
	orderID, err := kernel.NewOrderID("OrderId", unvalidated.OrderID)
	if err != nil {
		return order.ValidatedOrder{}, order.NewValidationErrorFrom(err)
	}

	customerInfo, err := v.toCustomerInfo(unvalidated.CustomerInfo)
	if err != nil {
		return order.ValidatedOrder{}, err
	}

	// The two address checks are the pipeline's only suspension points.
	// Chaining them with BindAsync guarantees the billing check is never
	// even started once the shipping check has failed.
	checkBoth := result.BindAsync(
		v.toCheckedAddress(unvalidated.ShippingAddress),
		func(shipping order.Address) result.AsyncResult[addressPair] {
			return result.MapAsync(
				v.toCheckedAddress(unvalidated.BillingAddress),
				func(billing order.Address) addressPair {
					return addressPair{shipping: shipping, billing: billing}
				})
		})

	addresses, err := checkBoth.Await(ctx)
	if err != nil {
		return order.ValidatedOrder{}, err
	}

	lines, err := v.toValidatedLines(ctx, unvalidated.Lines)
	if err != nil {
		return order.ValidatedOrder{}, err
	}

	pricingMethod := order.NewPricingMethod(unvalidated.PromotionCode)

	validated, err := order.NewValidatedOrder(
		orderID, customerInfo, addresses.shipping, addresses.billing, lines, pricingMethod)
	if err != nil {
		return order.ValidatedOrder{}, order.NewValidationErrorFrom(err)
	}

	return validated, nil
}

func (v OrderValidator) toCustomerInfo(raw order.UnvalidatedCustomerInfo) (order.CustomerInfo, error) {
	firstName, err := kernel.NewString50("FirstName", raw.FirstName)
	if err != nil {
		return order.CustomerInfo{}, order.NewValidationErrorFrom(err)
	}

	lastName, err := kernel.NewString50("LastName", raw.LastName)
	if err != nil {
		return order.CustomerInfo{}, order.NewValidationErrorFrom(err)
	}

	name, err := order.NewPersonalName(firstName, lastName)
	if err != nil {
		return order.CustomerInfo{}, order.NewValidationErrorFrom(err)
	}

	email, err := kernel.NewEmailAddress("EmailAddress", raw.EmailAddress)
	if err != nil {
		return order.CustomerInfo{}, order.NewValidationErrorFrom(err)
	}

	vipStatus, err := order.NewVipStatus("VipStatus", raw.VipStatus)
	if err != nil {
		return order.CustomerInfo{}, order.NewValidationErrorFrom(err)
	}

	customerInfo, err := order.NewCustomerInfo(name, email, vipStatus)
	if err != nil {
		return order.CustomerInfo{}, order.NewValidationErrorFrom(err)
	}

	return customerInfo, nil
}

// toCheckedAddress builds the suspended computation that verifies one raw
// address with the external capability and re-validates the returned
// checked address into a typed order.Address. Nothing runs until awaited.
func (v OrderValidator) toCheckedAddress(raw order.UnvalidatedAddress) result.AsyncResult[order.Address] {
	return func(ctx context.Context) result.Result[order.Address] {
		checked, err := v.addressChecker.Check(ctx, raw)
		if err != nil {
			switch {
			case errors.Is(err, ports.ErrAddressNotFound),
				errors.Is(err, ports.ErrAddressInvalidFormat):
				return result.Err[order.Address](order.NewValidationErrorFrom(err))
			default:
				// Transport failure already wrapped by the adapter.
				return result.Err[order.Address](err)
			}
		}

		return result.Of(v.toAddress(checked))
	}
}

func (v OrderValidator) toAddress(checked order.CheckedAddress) (order.Address, error) {
	raw := checked.Address

	addressLine1, err := kernel.NewString50("AddressLine1", raw.AddressLine1)
	if err != nil {
		return order.Address{}, order.NewValidationErrorFrom(err)
	}

	addressLine2, err := kernel.NewOptionalString50("AddressLine2", raw.AddressLine2)
	if err != nil {
		return order.Address{}, order.NewValidationErrorFrom(err)
	}

	addressLine3, err := kernel.NewOptionalString50("AddressLine3", raw.AddressLine3)
	if err != nil {
		return order.Address{}, order.NewValidationErrorFrom(err)
	}

	addressLine4, err := kernel.NewOptionalString50("AddressLine4", raw.AddressLine4)
	if err != nil {
		return order.Address{}, order.NewValidationErrorFrom(err)
	}

	city, err := kernel.NewString50("City", raw.City)
	if err != nil {
		return order.Address{}, order.NewValidationErrorFrom(err)
	}

	zipCode, err := kernel.NewZipCode("ZipCode", raw.ZipCode)
	if err != nil {
		return order.Address{}, order.NewValidationErrorFrom(err)
	}

	state, err := kernel.NewUsStateCode("State", raw.State)
	if err != nil {
		return order.Address{}, order.NewValidationErrorFrom(err)
	}

	country, err := kernel.NewString50("Country", raw.Country)
	if err != nil {
		return order.Address{}, order.NewValidationErrorFrom(err)
	}

	address, err := order.NewAddress(
		addressLine1, addressLine2, addressLine3, addressLine4, city, zipCode, state, country)
	if err != nil {
		return order.Address{}, order.NewValidationErrorFrom(err)
	}

	return address, nil
}

// toValidatedLines validates every line in submission order, stopping at
// the first failure.
func (v OrderValidator) toValidatedLines(
	ctx context.Context, raw []order.UnvalidatedOrderLine,
) ([]order.ValidatedOrderLine, error) {
	lines := result.Traverse(raw, func(line order.UnvalidatedOrderLine) result.Result[order.ValidatedOrderLine] {
		return result.Of(v.toValidatedLine(ctx, line))
	})
	return lines.Unpack()
}

func (v OrderValidator) toValidatedLine(
	ctx context.Context, raw order.UnvalidatedOrderLine,
) (order.ValidatedOrderLine, error) {
	orderLineID, err := kernel.NewOrderLineID("OrderLineId", raw.OrderLineID)
	if err != nil {
		return order.ValidatedOrderLine{}, order.NewValidationErrorFrom(err)
	}

	productCode, err := v.toProductCode(ctx, raw.ProductCode)
	if err != nil {
		return order.ValidatedOrderLine{}, err
	}

	// The quantity rule follows the already-resolved product code's kind.
	quantity, err := kernel.NewOrderQuantity(productCode, raw.Quantity)
	if err != nil {
		return order.ValidatedOrderLine{}, order.NewValidationErrorFrom(err)
	}

	line, err := order.NewValidatedOrderLine(orderLineID, productCode, quantity)
	if err != nil {
		return order.ValidatedOrderLine{}, order.NewValidationErrorFrom(err)
	}

	return line, nil
}

// toProductCode validates the code's format and confirms the product
// exists. A syntactically valid but unknown code is a validation error.
func (v OrderValidator) toProductCode(ctx context.Context, raw string) (kernel.ProductCode, error) {
	code, err := kernel.NewProductCode("ProductCode", raw)
	if err != nil {
		return kernel.ProductCode{}, order.NewValidationErrorFrom(err)
	}

	exists, err := v.catalog.Exists(ctx, code)
	if err != nil {
		// Transport failure already wrapped by the adapter.
		return kernel.ProductCode{}, err
	}
	if !exists {
		return kernel.ProductCode{}, order.NewValidationError(
			fmt.Sprintf("product code %s does not exist", code))
	}

	return code, nil
}
