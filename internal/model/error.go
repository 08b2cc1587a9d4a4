package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Code          string `json:"code,omitempty"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeInvalidPrice     = "INVALID_PRICE"
	ErrCodeInvalidQuantity  = "INVALID_QUANTITY"
	ErrCodeCategoryNotFound = "CATEGORY_NOT_FOUND"
	ErrCodeInvalidRequest   = "INVALID_REQUEST"
	ErrCodeUnauthorised     = "UNAUTHORIZED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// DomainError is a business rule violation that callers may show to users.
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
	ErrInvalidPrice     = NewDomainError(ErrCodeInvalidPrice, "Unit price must be a non-negative number")
	ErrInvalidQuantity  = NewDomainError(ErrCodeInvalidQuantity, "Stock quantity must not be negative")
	ErrCategoryNotFound = NewDomainError(ErrCodeCategoryNotFound, "Category does not exist")
	ErrNilRequest       = NewDomainError(ErrCodeInvalidRequest, "Request is required")
)
