package kernel

import (
	"errors"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// ErrUsStateCodeIsNotConstructed is returned when validating a zero-value UsStateCode.
var ErrUsStateCodeIsNotConstructed = errors.New("UsStateCode must be created via NewUsStateCode")

// validUsStateCodes is the whitelist of two-letter codes for the fifty
// states plus the District of Columbia.
var validUsStateCodes = map[string]struct{}{
	"AZ": {}, "CA": {}, "NV": {}, "OR": {}, "WA": {}, "ID": {}, "UT": {},
	"NM": {}, "CO": {}, "WY": {}, "MT": {}, "ND": {}, "SD": {}, "NE": {},
	"KS": {}, "OK": {}, "TX": {}, "MN": {}, "IA": {}, "MO": {}, "AR": {},
	"LA": {}, "WI": {}, "IL": {}, "MI": {}, "IN": {}, "OH": {}, "KY": {},
	"TN": {}, "MS": {}, "AL": {}, "GA": {}, "FL": {}, "SC": {}, "NC": {},
	"VA": {}, "WV": {}, "MD": {}, "DE": {}, "PA": {}, "NJ": {}, "NY": {},
	"CT": {}, "RI": {}, "MA": {}, "VT": {}, "NH": {}, "ME": {}, "AK": {},
	"HI": {}, "DC": {},
}

// UsStateCode is a two-letter US state code from a fixed whitelist.
// The shipping tier rules key off this value.
type UsStateCode struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewUsStateCode creates a UsStateCode from raw input. Codes outside the
// whitelist fail with ValueIsInvalidError naming fieldName.
func NewUsStateCode(fieldName string, raw string) (UsStateCode, error) {
	s := UsStateCode{
		guard: guard.NewConstructorGuard(),
	}

	if err := s.setValue(fieldName, raw); err != nil {
		return UsStateCode{}, err
	}

	return s, nil
}

// Validate checks that the UsStateCode was created through the constructor.
func (s UsStateCode) Validate() error {
	return s.guard.Validate(ErrUsStateCodeIsNotConstructed)
}

// String returns the wrapped state code.
func (s UsStateCode) String() string {
	return s.value
}

func (s *UsStateCode) setValue(fieldName string, raw string) error {
	if raw == "" {
		return errs.NewValueIsRequiredError(fieldName)
	}
	if _, ok := validUsStateCodes[raw]; !ok {
		return errs.NewValueIsInvalidError(fieldName)
	}

	s.value = raw
	return nil
}
