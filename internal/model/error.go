package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeMissingField       = "MISSING_FIELD"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeCorruptSession     = "CORRUPT_SESSION"
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
	ErrMissingField       = NewDomainError(ErrCodeMissingField, "Todos los campos son obligatorios")
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrInvalidCredentials = NewDomainError(ErrCodeInvalidCredentials, "Credenciales incorrectas. Inténtalo de nuevo.")
	ErrCorruptSession     = NewDomainError(ErrCodeCorruptSession, "Stored session data could not be decoded")
)
