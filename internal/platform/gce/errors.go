package gce

import (
	"errors"
	"fmt"
	"time"
)

// The error taxonomy for terminal failures. All of these propagate to the
// direct caller of a lifecycle operation; none are retried internally.
// Absence of a resource is reported as a nil value, never as an error.

// OperationTimeoutError reports that polling exceeded the configured
// timeout without the operation (or reconciliation read) reaching a
// terminal state.
type OperationTimeoutError struct {
	Target  string
	Timeout time.Duration
}

func (e *OperationTimeoutError) Error() string {
	return fmt.Sprintf("operation did not reach DONE state within %s: %s", e.Timeout, e.Target)
}

// OperationFailedError reports that the provider reached DONE but attached
// an error code. Code and message are surfaced verbatim.
type OperationFailedError struct {
	Target  string
	Code    int64
	Message string
}

func (e *OperationFailedError) Error() string {
	return fmt.Sprintf("operation failed with code %d: %s (%s)", e.Code, e.Message, e.Target)
}

// UnsupportedError reports a capability the provider does not offer. The
// call fails immediately and is never attempted remotely.
type UnsupportedError struct {
	Capability string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s is not supported by GCE", e.Capability)
}

// ValidationError reports a missing or malformed template field. It is
// raised before any remote call is issued.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsOperationTimeout checks if an error is an operation timeout.
func IsOperationTimeout(err error) bool {
	var target *OperationTimeoutError
	return errors.As(err, &target)
}

// IsOperationFailed checks if an error is a provider-reported operation failure.
func IsOperationFailed(err error) bool {
	var target *OperationFailedError
	return errors.As(err, &target)
}

// IsUnsupported checks if an error reports an unsupported capability.
func IsUnsupported(err error) bool {
	var target *UnsupportedError
	return errors.As(err, &target)
}

// IsValidation checks if an error is a template validation failure.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
