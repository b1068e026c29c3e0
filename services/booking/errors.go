package booking

import (
	"errors"
	"fmt"
)

// Error codes carried by AdmissionError. Conflicts are business-rule
// rejections and must stay distinguishable from malformed input.
const (
	CodeValidation = "validationError"
	CodeConflict   = "slotConflict"
	CodeNotFound   = "notFound"
)

// AdmissionError is a booking domain error with a machine-readable code.
type AdmissionError struct {
	Code    string
	Message string
}

func (e *AdmissionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &AdmissionError{Code: CodeValidation, Message: msg}
}

func NewConflictError(msg string) error {
	return &AdmissionError{Code: CodeConflict, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &AdmissionError{Code: CodeNotFound, Message: msg}
}

func errorCode(err error) string {
	var ae *AdmissionError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}

// IsValidation reports whether err is a request validation failure.
func IsValidation(err error) bool { return errorCode(err) == CodeValidation }

// IsConflict reports whether err is a slot conflict rejection.
func IsConflict(err error) bool { return errorCode(err) == CodeConflict }

// IsNotFound reports whether err refers to a missing booking.
func IsNotFound(err error) bool { return errorCode(err) == CodeNotFound }
