package service

import "fmt"

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes. This is the closed set surfaced across the
// service boundary; internal diagnostics stay in logs keyed by the
// request correlation id.
const (
	ErrCodeTagNotFound        = "tag_not_found"
	ErrCodeTagExists          = "tag_exists"
	ErrCodeAccountNotFound    = "account_not_found"
	ErrCodeInsufficientFunds  = "insufficient_funds"
	ErrCodeNoCandidates       = "no_candidates"
	ErrCodeEmailTaken         = "email_taken"
	ErrCodeInvalidCredentials = "invalid_credentials"
	ErrCodeInternalError      = "internal_error"
)
