package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidationError reports input that fails a structural or business check.
// Field identifies the offending input when known.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the formatted validation error string.
func (e ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Message
	}

	return fmt.Sprintf("validation failed: %s (%s)", e.Message, e.Field)
}

// NewValidationError creates a validation error with an optional field name.
func NewValidationError(field, message string) error {
	return ValidationError{Field: field, Message: message}
}

// InsufficientFundsError reports a withdraw or transfer whose amount exceeds
// the source account's balance.
type InsufficientFundsError struct {
	AccountID string
	Current   decimal.Decimal
	Requested decimal.Decimal
}

// Missing returns the shortfall: requested minus current balance.
func (e InsufficientFundsError) Missing() decimal.Decimal {
	return e.Requested.Sub(e.Current)
}

// Error returns the formatted insufficient funds error string.
func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf(
		"insufficient funds on account %s: balance %s, requested %s, missing %s",
		e.AccountID, e.Current, e.Requested, e.Missing(),
	)
}

// NotFoundError reports a failed entity lookup. ByName is true when the
// lookup keyed on a human-readable identifier (account number, username)
// rather than the entity ID.
type NotFoundError struct {
	Entity string
	Key    string
	ByName bool
}

// Error returns the formatted not-found error string.
func (e NotFoundError) Error() string {
	if e.ByName {
		return fmt.Sprintf("%s not found with number: %s", e.Entity, e.Key)
	}

	return fmt.Sprintf("%s not found with ID: %s", e.Entity, e.Key)
}
