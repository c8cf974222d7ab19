package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification via errors.Is.
// Each concrete error type below unwraps to exactly one of these.
var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrValueIsRequired    = errors.New("value is required")
	ErrDuplicateKey       = errors.New("duplicate key")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrTransactionAborted = errors.New("transaction aborted")
)

// sanitize removes line breaks from values interpolated into error messages
// so a single log line stays a single log line.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// ObjectNotFoundError indicates that a referenced entity does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value violated its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// DuplicateKeyError indicates a uniqueness violation, e.g. an already used
// product code or a second dispatch order for the same order.
type DuplicateKeyError struct {
	ParamName string
	Value     any
	Cause     error
}

// NewDuplicateKeyError creates a DuplicateKeyError without an underlying cause.
func NewDuplicateKeyError(paramName string, value any) *DuplicateKeyError {
	return &DuplicateKeyError{ParamName: paramName, Value: value}
}

// NewDuplicateKeyErrorWithCause creates a DuplicateKeyError wrapping an underlying cause.
func NewDuplicateKeyErrorWithCause(paramName string, value any, cause error) *DuplicateKeyError {
	return &DuplicateKeyError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *DuplicateKeyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, value is: %s (cause: %s)",
			ErrDuplicateKey, e.ParamName, sanitize(e.Value), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrDuplicateKey, sanitize(e.Value))
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}

// InsufficientStockError indicates that a reservation requested more units
// than the inventory item currently holds.
type InsufficientStockError struct {
	ProductID any
	Requested int
	Cause     error
}

// NewInsufficientStockError creates an InsufficientStockError without an underlying cause.
func NewInsufficientStockError(productID any, requested int) *InsufficientStockError {
	return &InsufficientStockError{ProductID: productID, Requested: requested}
}

// NewInsufficientStockErrorWithCause creates an InsufficientStockError wrapping an underlying cause.
func NewInsufficientStockErrorWithCause(productID any, requested int, cause error) *InsufficientStockError {
	return &InsufficientStockError{ProductID: productID, Requested: requested, Cause: cause}
}

func (e *InsufficientStockError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %d requested for %s (cause: %s)",
			ErrInsufficientStock, e.Requested, sanitize(e.ProductID), e.Cause)
	}
	return fmt.Sprintf("%s: %d requested for %s", ErrInsufficientStock, e.Requested, sanitize(e.ProductID))
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// InvalidTransitionError indicates that a status change is not permitted
// by the entity's transition table.
type InvalidTransitionError struct {
	From  string
	To    string
	Cause error
}

// NewInvalidTransitionError creates an InvalidTransitionError without an underlying cause.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError wrapping an underlying cause.
func NewInvalidTransitionErrorWithCause(from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: from %s to %s (cause: %s)", ErrInvalidTransition, e.From, e.To, e.Cause)
	}
	return fmt.Sprintf("%s: from %s to %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// TransactionAbortedError indicates a storage-layer commit failure, including
// conflicting concurrent writes. The core never retries; that decision
// belongs to the caller.
type TransactionAbortedError struct {
	Operation string
	Cause     error
}

// NewTransactionAbortedError creates a TransactionAbortedError wrapping an underlying cause.
func NewTransactionAbortedError(operation string, cause error) *TransactionAbortedError {
	return &TransactionAbortedError{Operation: operation, Cause: cause}
}

func (e *TransactionAbortedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrTransactionAborted, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrTransactionAborted, e.Operation)
}

func (e *TransactionAbortedError) Unwrap() error {
	return ErrTransactionAborted
}
