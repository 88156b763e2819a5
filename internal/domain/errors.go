package domain

import "errors"

var (
	// ErrNotFound is wrapped by lookups that miss a platform or loan.
	ErrNotFound = errors.New("not found")

	ErrPlatformNameRequired = errors.New("platform name is required")
	ErrLoanAmountRequired   = errors.New("loan amount must be a positive number")
)

// IsValidation reports whether err is one of the two user-input checks.
func IsValidation(err error) bool {
	return errors.Is(err, ErrPlatformNameRequired) || errors.Is(err, ErrLoanAmountRequired)
}
