package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/domain/services"
	"ordertaking/internal/core/ports"
)

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) Exists(ctx context.Context, code kernel.ProductCode) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

type MockAddressChecker struct{ mock.Mock }

func (m *MockAddressChecker) Check(
	ctx context.Context, address order.UnvalidatedAddress,
) (order.CheckedAddress, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(order.CheckedAddress), args.Error(1)
}

// echoingChecker returns every address unchanged, as a checker does when
// the address service recognizes it.
func echoingChecker() *MockAddressChecker {
	checker := new(MockAddressChecker)
	checker.On("Check", mock.Anything, mock.Anything).
		Return(order.CheckedAddress{Address: testUnvalidatedAddress()}, nil)
	return checker
}

func allProductsExist() *MockProductCatalog {
	catalog := new(MockProductCatalog)
	catalog.On("Exists", mock.Anything, mock.Anything).Return(true, nil)
	return catalog
}

func TestOrderValidator_Validate_Success(t *testing.T) {
	validator := services.NewOrderValidator(allProductsExist(), echoingChecker())

	validated, err := validator.Validate(t.Context(), testUnvalidatedOrder())
	require.NoError(t, err)

	require.Equal(t, "order-1", validated.OrderID().String())
	require.Equal(t, "Alice", validated.CustomerInfo().Name().FirstName().String())
	require.Equal(t, order.VipStatusNormal, validated.CustomerInfo().VipStatus())
	require.Len(t, validated.Lines(), 2)
	require.Equal(t, "W1234", validated.Lines()[0].ProductCode().String())
	require.Equal(t, order.PricingMethodStandard, validated.PricingMethod().Kind())
}

func TestOrderValidator_Validate_PromotionCode(t *testing.T) {
	validator := services.NewOrderValidator(allProductsExist(), echoingChecker())

	unvalidated := testUnvalidatedOrder()
	unvalidated.PromotionCode = "HALF"

	validated, err := validator.Validate(t.Context(), unvalidated)
	require.NoError(t, err)
	require.Equal(t, order.PricingMethodPromotion, validated.PricingMethod().Kind())
	require.Equal(t, order.PromotionCode("HALF"), validated.PricingMethod().PromotionCode())
}

func TestOrderValidator_Validate_InvalidOrderID(t *testing.T) {
	catalog := new(MockProductCatalog)
	checker := new(MockAddressChecker)
	validator := services.NewOrderValidator(catalog, checker)

	unvalidated := testUnvalidatedOrder()
	unvalidated.OrderID = ""

	_, err := validator.Validate(t.Context(), unvalidated)

	var validationErr *order.ValidationError
	require.ErrorAs(t, err, &validationErr)
	// No capability is consulted once a local check has failed.
	checker.AssertNumberOfCalls(t, "Check", 0)
	catalog.AssertNumberOfCalls(t, "Exists", 0)
}

func TestOrderValidator_Validate_InvalidVipStatus(t *testing.T) {
	validator := services.NewOrderValidator(allProductsExist(), echoingChecker())

	unvalidated := testUnvalidatedOrder()
	unvalidated.CustomerInfo.VipStatus = "gold"

	_, err := validator.Validate(t.Context(), unvalidated)

	var validationErr *order.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestOrderValidator_Validate_AddressNotFound(t *testing.T) {
	checker := new(MockAddressChecker)
	checker.On("Check", mock.Anything, mock.Anything).
		Return(order.CheckedAddress{}, ports.ErrAddressNotFound).Once()

	validator := services.NewOrderValidator(allProductsExist(), checker)

	_, err := validator.Validate(t.Context(), testUnvalidatedOrder())

	var validationErr *order.ValidationError
	require.ErrorAs(t, err, &validationErr)
	// The billing address is never checked after the shipping check failed.
	checker.AssertNumberOfCalls(t, "Check", 1)
}

func TestOrderValidator_Validate_AddressServiceDown(t *testing.T) {
	remoteErr := order.NewRemoteServiceError(
		order.ServiceInfo{Name: "AddressChecker", Endpoint: "https://addresses.example.com"},
		errors.New("connection refused"))

	checker := new(MockAddressChecker)
	checker.On("Check", mock.Anything, mock.Anything).
		Return(order.CheckedAddress{}, remoteErr).Once()

	validator := services.NewOrderValidator(allProductsExist(), checker)

	_, err := validator.Validate(t.Context(), testUnvalidatedOrder())

	var remote *order.RemoteServiceError
	require.ErrorAs(t, err, &remote)
	var validationErr *order.ValidationError
	require.False(t, errors.As(err, &validationErr))
}

func TestOrderValidator_Validate_UnknownProduct(t *testing.T) {
	catalog := new(MockProductCatalog)
	catalog.On("Exists", mock.Anything, mock.Anything).Return(false, nil)

	validator := services.NewOrderValidator(catalog, echoingChecker())

	_, err := validator.Validate(t.Context(), testUnvalidatedOrder())

	var validationErr *order.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, err.Error(), "product code W1234 does not exist")
}

func TestOrderValidator_Validate_CatalogDown(t *testing.T) {
	remoteErr := order.NewRemoteServiceError(
		order.ServiceInfo{Name: "ProductCatalog", Endpoint: "postgres"},
		errors.New("timeout"))

	catalog := new(MockProductCatalog)
	catalog.On("Exists", mock.Anything, mock.Anything).Return(false, remoteErr)

	validator := services.NewOrderValidator(catalog, echoingChecker())

	_, err := validator.Validate(t.Context(), testUnvalidatedOrder())

	var remote *order.RemoteServiceError
	require.ErrorAs(t, err, &remote)
}

func TestOrderValidator_Validate_FractionalWidgetQuantity(t *testing.T) {
	validator := services.NewOrderValidator(allProductsExist(), echoingChecker())

	unvalidated := testUnvalidatedOrder()
	unvalidated.Lines = []order.UnvalidatedOrderLine{
		{OrderLineID: "line-1", ProductCode: "W1234", Quantity: decimal.NewFromFloat(2.5)},
	}

	_, err := validator.Validate(t.Context(), unvalidated)

	var validationErr *order.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestOrderValidator_Validate_FirstBadLineWins(t *testing.T) {
	catalog := allProductsExist()
	validator := services.NewOrderValidator(catalog, echoingChecker())

	unvalidated := testUnvalidatedOrder()
	unvalidated.Lines = []order.UnvalidatedOrderLine{
		{OrderLineID: "", ProductCode: "W1234", Quantity: decimal.NewFromInt(1)},
		{OrderLineID: "line-2", ProductCode: "G123", Quantity: decimal.NewFromInt(1)},
	}

	_, err := validator.Validate(t.Context(), unvalidated)

	var validationErr *order.ValidationError
	require.ErrorAs(t, err, &validationErr)
	// Validation stopped before the second line touched the catalog.
	catalog.AssertNumberOfCalls(t, "Exists", 0)
}

func TestOrderValidator_Validate_EmptyLines(t *testing.T) {
	validator := services.NewOrderValidator(allProductsExist(), echoingChecker())

	unvalidated := testUnvalidatedOrder()
	unvalidated.Lines = nil

	_, err := validator.Validate(t.Context(), unvalidated)

	var validationErr *order.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, err.Error(), "OrderLines")
}
