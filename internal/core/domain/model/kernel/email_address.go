package kernel

import (
	"errors"
	"regexp"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// ErrEmailAddressIsNotConstructed is returned when validating a zero-value EmailAddress.
var ErrEmailAddressIsNotConstructed = errors.New("EmailAddress must be created via NewEmailAddress")

var emailPattern = regexp.MustCompile(`^.+@.+$`)

// EmailAddress is an email address that matched the ".+@.+" pattern.
// Deliverability is not checked here; the acknowledgment capability owns
// that concern.
type EmailAddress struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewEmailAddress creates an EmailAddress from raw input.
// Empty input fails with ValueIsRequiredError; input not matching the
// pattern fails with ValueIsInvalidError naming fieldName.
func NewEmailAddress(fieldName string, raw string) (EmailAddress, error) {
	e := EmailAddress{
		guard: guard.NewConstructorGuard(),
	}

	if err := e.setValue(fieldName, raw); err != nil {
		return EmailAddress{}, err
	}

	return e, nil
}

// Validate checks that the EmailAddress was created through the constructor.
func (e EmailAddress) Validate() error {
	return e.guard.Validate(ErrEmailAddressIsNotConstructed)
}

// String returns the wrapped address.
func (e EmailAddress) String() string {
	return e.value
}

func (e *EmailAddress) setValue(fieldName string, raw string) error {
	if raw == "" {
		return errs.NewValueIsRequiredError(fieldName)
	}
	if !emailPattern.MatchString(raw) {
		return errs.NewValueIsInvalidError(fieldName)
	}

	e.value = raw
	return nil
}
