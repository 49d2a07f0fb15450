package errors

import "fmt"

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	if ve, ok := err.(*ValidationError); ok {
		return ve, true
	}
	return nil, false
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	if nfe, ok := err.(*NotFoundError); ok {
		return nfe, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}

// PlacementErrorKind classifies why an order placement was rejected.
type PlacementErrorKind string

const (
	// ProductLookupFailed: the catalog call failed and no fallback
	// provided a snapshot.
	ProductLookupFailed PlacementErrorKind = "PRODUCT_LOOKUP_FAILED"
	// CatalogUnavailable: the fallback sentinel snapshot was received.
	CatalogUnavailable PlacementErrorKind = "CATALOG_UNAVAILABLE"
	// InvalidPrice: the snapshot price is absent or not positive.
	InvalidPrice PlacementErrorKind = "INVALID_PRICE"
)

// PlacementError is a user-visible order placement failure. The message
// deliberately carries no transport detail; the underlying cause, if any,
// is logged at the collaborator boundary instead.
type PlacementError struct {
	Kind    PlacementErrorKind
	Message string
}

func (e *PlacementError) Error() string {
	return e.Message
}

func NewPlacementError(kind PlacementErrorKind, message string) *PlacementError {
	return &PlacementError{
		Kind:    kind,
		Message: message,
	}
}

func IsPlacementError(err error) (*PlacementError, bool) {
	if pe, ok := err.(*PlacementError); ok {
		return pe, true
	}
	return nil, false
}
