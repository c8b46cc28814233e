package order

import "fmt"

// PlaceOrderError is the unified error union of the place-order workflow.
// Exactly three kinds exist: *ValidationError, *PricingError, and
// *RemoteServiceError. Callers classify a failed workflow invocation with
// errors.As against the concrete types.
type PlaceOrderError interface {
	error
	isPlaceOrderError()
}

// ValidationError reports that the submission violated a constraint or
// referenced an unknown product or address. The first failing check wins;
// no other validation runs after it.
type ValidationError struct {
	Message string
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NewValidationErrorFrom creates a ValidationError from an underlying
// validation failure, keeping only its message: constraint failures are
// caller errors, not internal faults, so the cause chain ends here.
func NewValidationErrorFrom(err error) *ValidationError {
	return &ValidationError{Message: err.Error()}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("order validation failed: %s", e.Message)
}

func (*ValidationError) isPlaceOrderError() {}

// PricingError reports that a computed line price or billing amount fell
// outside its permitted range.
type PricingError struct {
	Message string
}

// NewPricingError creates a PricingError with the given message.
func NewPricingError(message string) *PricingError {
	return &PricingError{Message: message}
}

// NewPricingErrorFrom creates a PricingError from an underlying range failure.
func NewPricingErrorFrom(err error) *PricingError {
	return &PricingError{Message: err.Error()}
}

func (e *PricingError) Error() string {
	return fmt.Sprintf("order pricing failed: %s", e.Message)
}

func (*PricingError) isPlaceOrderError() {}

// ServiceInfo identifies the external capability that failed.
type ServiceInfo struct {
	Name     string
	Endpoint string
}

// RemoteServiceError reports a transport-level failure of an external
// capability. It is raised by the capability adapters, never synthesized
// by the workflow core.
type RemoteServiceError struct {
	Service ServiceInfo
	Cause   error
}

// NewRemoteServiceError creates a RemoteServiceError for the given service
// and underlying failure.
func NewRemoteServiceError(service ServiceInfo, cause error) *RemoteServiceError {
	return &RemoteServiceError{Service: service, Cause: cause}
}

func (e *RemoteServiceError) Error() string {
	return fmt.Sprintf("remote service %s at %s failed: %s", e.Service.Name, e.Service.Endpoint, e.Cause)
}

func (e *RemoteServiceError) Unwrap() error {
	return e.Cause
}

func (*RemoteServiceError) isPlaceOrderError() {}
