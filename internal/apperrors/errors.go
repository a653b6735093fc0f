package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller could not be identified.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the caller is identified but not allowed to act.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates that a concurrent write won; the caller may retry.
var ErrConflict = errors.New("conflicting concurrent update")

// ErrInternal indicates an infrastructure failure (database, network).
var ErrInternal = errors.New("internal error")

// State machine and authorization failures.
var (
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrNotOwner          = fmt.Errorf("%w: actor is not the owner", ErrForbidden)
	ErrInsufficientRole  = fmt.Errorf("%w: actor role lacks the required capability", ErrForbidden)
)

// Purchase order and reception precondition failures.
var (
	ErrExpressionNotApproved = errors.New("need expression is not approved")
	ErrOrderAlreadyExists    = errors.New("an active purchase order already exists for this need expression")
	ErrConformityMismatch    = errors.New("accepted plus rejected quantity must equal received quantity")
	ErrEmptyReception        = errors.New("reception must receive a positive quantity on at least one line")
	ErrOverDelivery          = errors.New("received quantity exceeds remaining quantity")
	ErrOrderCancelled        = errors.New("purchase order is cancelled")
	ErrRegenerationConflict  = errors.New("regeneration conflicts with recorded receptions")
)

// AppError carries an HTTP-ish status code along with the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	if e.Err == nil {
		return ErrInternal
	}
	return e.Err
}

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError reports a missing entity of the given kind.
func NewNotFoundError(kind, id string) error {
	return fmt.Errorf("%w: %s %s", ErrNotFound, kind, id)
}

// NewValidationError reports rejected input.
func NewValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// TransitionError names the current state and the attempted event.
type TransitionError struct {
	Entity    string
	Current   string
	Attempted string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s %s in state %s", ErrInvalidTransition.Error(), e.Attempted, e.Entity, e.Current)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// OverDeliveryError names the offending order line and what is left on it.
type OverDeliveryError struct {
	OrderLineID string
	Requested   int64
	Remaining   int64
}

func (e *OverDeliveryError) Error() string {
	return fmt.Sprintf("%s: line %s requested %d, only %d remaining", ErrOverDelivery.Error(), e.OrderLineID, e.Requested, e.Remaining)
}

func (e *OverDeliveryError) Unwrap() error { return ErrOverDelivery }

// ConformityError names the reception line whose split does not add up.
type ConformityError struct {
	OrderLineID string
	Received    int64
	Accepted    int64
	Rejected    int64
}

func (e *ConformityError) Error() string {
	return fmt.Sprintf("%s: line %s received %d, accepted %d, rejected %d",
		ErrConformityMismatch.Error(), e.OrderLineID, e.Received, e.Accepted, e.Rejected)
}

func (e *ConformityError) Unwrap() error { return ErrConformityMismatch }

// RegenerationConflictError names the order line that cannot be rewritten.
type RegenerationConflictError struct {
	OrderLineID string
	Description string
	Requested   int64
	Received    int64
	Reason      string
}

func (e *RegenerationConflictError) Error() string {
	return fmt.Sprintf("%s: line %s (%s) %s, requested %d, already received %d",
		ErrRegenerationConflict.Error(), e.OrderLineID, e.Description, e.Reason, e.Requested, e.Received)
}

func (e *RegenerationConflictError) Unwrap() error { return ErrRegenerationConflict }
