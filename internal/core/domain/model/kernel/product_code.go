package kernel

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// ErrProductCodeIsNotConstructed is returned when validating a zero-value ProductCode.
var ErrProductCodeIsNotConstructed = errors.New(
	"ProductCode must be created via NewProductCode, NewWidgetCode, or NewGizmoCode")

var (
	widgetPattern = regexp.MustCompile(`^W\d{4}$`)
	gizmoPattern  = regexp.MustCompile(`^G\d{3}$`)
)

// ProductCodeKind distinguishes the two product families carried by a
// ProductCode. Widgets are sold per unit, gizmos by weight; the quantity
// validation rule for an order line follows the kind of its product code.
type ProductCodeKind int

const (
	// UnknownProductKind is the zero value and never appears on a
	// constructed ProductCode.
	UnknownProductKind ProductCodeKind = iota

	// WidgetKind marks codes of the form "W" followed by four digits.
	WidgetKind

	// GizmoKind marks codes of the form "G" followed by three digits.
	GizmoKind
)

// String returns the human-readable name of the kind.
func (k ProductCodeKind) String() string {
	switch k {
	case WidgetKind:
		return "Widget"
	case GizmoKind:
		return "Gizmo"
	default:
		return "Unknown"
	}
}

// ProductCode is a validated product code of one of two sub-kinds:
// widget codes ("W" + 4 digits) or gizmo codes ("G" + 3 digits).
// Consumers that care about the sub-kind switch on Kind.
type ProductCode struct { //nolint:recvcheck //using for validation
	kind  ProductCodeKind
	value string
	guard guard.ConstructorGuard
}

// NewWidgetCode creates a ProductCode of WidgetKind. Input not matching
// "W" + exactly four digits fails with ValueIsInvalidError naming fieldName.
func NewWidgetCode(fieldName string, raw string) (ProductCode, error) {
	if raw == "" {
		return ProductCode{}, errs.NewValueIsRequiredError(fieldName)
	}
	if !widgetPattern.MatchString(raw) {
		return ProductCode{}, errs.NewValueIsInvalidErrorWithCause(fieldName,
			fmt.Errorf("%q does not match the widget code pattern W9999", raw))
	}

	return ProductCode{
		kind:  WidgetKind,
		value: raw,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NewGizmoCode creates a ProductCode of GizmoKind. Input not matching
// "G" + exactly three digits fails with ValueIsInvalidError naming fieldName.
func NewGizmoCode(fieldName string, raw string) (ProductCode, error) {
	if raw == "" {
		return ProductCode{}, errs.NewValueIsRequiredError(fieldName)
	}
	if !gizmoPattern.MatchString(raw) {
		return ProductCode{}, errs.NewValueIsInvalidErrorWithCause(fieldName,
			fmt.Errorf("%q does not match the gizmo code pattern G999", raw))
	}

	return ProductCode{
		kind:  GizmoKind,
		value: raw,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NewProductCode creates a ProductCode by dispatching on the leading letter:
// "W" codes are validated as widget codes and "G" codes as gizmo codes.
// Any other prefix fails with ValueIsInvalidError naming fieldName.
func NewProductCode(fieldName string, raw string) (ProductCode, error) {
	switch {
	case raw == "":
		return ProductCode{}, errs.NewValueIsRequiredError(fieldName)
	case strings.HasPrefix(raw, "W"):
		return NewWidgetCode(fieldName, raw)
	case strings.HasPrefix(raw, "G"):
		return NewGizmoCode(fieldName, raw)
	default:
		return ProductCode{}, errs.NewValueIsInvalidErrorWithCause(fieldName,
			fmt.Errorf("%q is not a recognized product code format", raw))
	}
}

// Validate checks that the ProductCode was created through a constructor.
func (c ProductCode) Validate() error {
	return c.guard.Validate(ErrProductCodeIsNotConstructed)
}

// Kind returns the sub-kind of the code.
func (c ProductCode) Kind() ProductCodeKind {
	return c.kind
}

// String returns the wrapped code.
func (c ProductCode) String() string {
	return c.value
}

// IsEqual compares two product codes by value.
func (c ProductCode) IsEqual(other ProductCode) bool {
	return c.kind == other.kind && c.value == other.value
}
