package kernel

import (
	"errors"
	"regexp"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// ErrZipCodeIsNotConstructed is returned when validating a zero-value ZipCode.
var ErrZipCodeIsNotConstructed = errors.New("ZipCode must be created via NewZipCode")

var zipPattern = regexp.MustCompile(`^\d{5}$`)

// ZipCode is a US zip code of exactly five digits.
type ZipCode struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewZipCode creates a ZipCode from raw input. Anything other than exactly
// five digits fails with ValueIsInvalidError naming fieldName.
func NewZipCode(fieldName string, raw string) (ZipCode, error) {
	z := ZipCode{
		guard: guard.NewConstructorGuard(),
	}

	if err := z.setValue(fieldName, raw); err != nil {
		return ZipCode{}, err
	}

	return z, nil
}

// Validate checks that the ZipCode was created through the constructor.
func (z ZipCode) Validate() error {
	return z.guard.Validate(ErrZipCodeIsNotConstructed)
}

// String returns the wrapped zip code.
func (z ZipCode) String() string {
	return z.value
}

func (z *ZipCode) setValue(fieldName string, raw string) error {
	if raw == "" {
		return errs.NewValueIsRequiredError(fieldName)
	}
	if !zipPattern.MatchString(raw) {
		return errs.NewValueIsInvalidError(fieldName)
	}

	z.value = raw
	return nil
}
