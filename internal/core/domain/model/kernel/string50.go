package kernel

import (
	"errors"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
	"ordertaking/internal/pkg/result"
)

// String50MaxLength is the maximum number of bytes a String50 may hold.
const String50MaxLength = 50

// ErrString50IsNotConstructed is returned when validating a zero-value String50.
var ErrString50IsNotConstructed = errors.New("String50 must be created via NewString50 or NewOptionalString50")

// String50 is a non-empty string of at most 50 characters. It backs names,
// city lines, and other bounded free-text fields.
//
// The zero value is invalid; construct instances with NewString50 or
// NewOptionalString50.
//
// Example:
//
//	firstName, err := kernel.NewString50("FirstName", raw.FirstName)
//	if err != nil {
//	    // raw.FirstName was empty or too long
//	}
type String50 struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewString50 creates a String50 from raw input.
// The fieldName is used in failure messages so callers can report which
// field of the submission violated the constraint.
//
// Returns:
//   - String50: the validated value
//   - error: ValueIsRequiredError when raw is empty, ValueIsOutOfRangeError
//     when raw exceeds String50MaxLength characters
func NewString50(fieldName string, raw string) (String50, error) {
	s := String50{
		guard: guard.NewConstructorGuard(),
	}

	if err := s.setValue(fieldName, raw); err != nil {
		return String50{}, err
	}

	return s, nil
}

// NewOptionalString50 creates an optional String50. Empty input is not an
// error: it constructs an empty Option. Present input is validated with the
// same rules as NewString50.
func NewOptionalString50(fieldName string, raw string) (result.Option[String50], error) {
	if raw == "" {
		return result.None[String50](), nil
	}

	s, err := NewString50(fieldName, raw)
	if err != nil {
		return result.None[String50](), err
	}

	return result.Some(s), nil
}

// Validate checks that the String50 was created through a constructor.
func (s String50) Validate() error {
	return s.guard.Validate(ErrString50IsNotConstructed)
}

// String returns the wrapped value.
func (s String50) String() string {
	return s.value
}

func (s *String50) setValue(fieldName string, raw string) error {
	if raw == "" {
		return errs.NewValueIsRequiredError(fieldName)
	}
	if len(raw) > String50MaxLength {
		return errs.NewValueIsOutOfRangeError(fieldName, len(raw), 1, String50MaxLength)
	}

	s.value = raw
	return nil
}
