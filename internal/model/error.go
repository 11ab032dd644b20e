package model

import (
	"errors"
	"strings"
)

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string   `json:"error"`
	Message       string   `json:"message"`
	Fields        []string `json:"fields,omitempty"`
	CorrelationID string   `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeInvalidParameter   = "INVALID_PARAMETER"
	ErrCodeInvalidStatus      = "INVALID_STATUS"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeOrderNotFound      = "ORDER_NOT_FOUND"
	ErrCodeCartItemNotFound   = "CART_ITEM_NOT_FOUND"
	ErrCodeIncompleteShipping = "INCOMPLETE_SHIPPING"
	ErrCodeNoSelection        = "NO_SELECTION"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidStatus      = NewDomainError(ErrCodeInvalidStatus, "Status must be one of Pending, Processing, Shipped, Delivered, Cancelled")
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrOrderNotFound      = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrCartItemNotFound   = NewDomainError(ErrCodeCartItemNotFound, "Item is not in the cart")
	ErrIncompleteShipping = NewDomainError(ErrCodeIncompleteShipping, "All required shipping fields must be filled")
	ErrNoSelection        = NewDomainError(ErrCodeNoSelection, "At least one order must be selected")
)

// FieldsError reports which input fields failed validation. It unwraps to
// its domain error so callers can match on the sentinel.
type FieldsError struct {
	Err    *DomainError
	Fields []string
}

func (e *FieldsError) Error() string {
	return e.Err.Message + ": " + strings.Join(e.Fields, ", ")
}

func (e *FieldsError) Unwrap() error {
	return e.Err
}

// AsDomainError extracts the domain error from err, if any.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
