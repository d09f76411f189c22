package ledger

import (
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountKind classifies an account.
type AccountKind string

const (
	// AccountChecking identifies a day-to-day checking account.
	AccountChecking AccountKind = "CHECKING"
	// AccountSavings identifies a savings account.
	AccountSavings AccountKind = "SAVINGS"
	// AccountBusiness identifies a business account.
	AccountBusiness AccountKind = "BUSINESS"
)

// numberPrefix returns the account-number prefix for the kind.
func (k AccountKind) numberPrefix() string {
	switch k {
	case AccountChecking:
		return "CHK"
	case AccountSavings:
		return "SAV"
	case AccountBusiness:
		return "BUS"
	default:
		return "ACC"
	}
}

// known reports whether the kind is one of the defined account kinds.
func (k AccountKind) known() bool {
	switch k {
	case AccountChecking, AccountSavings, AccountBusiness:
		return true
	default:
		return false
	}
}

// Account is a balance holder owned by a user. The balance is mutated in
// place by transaction strategies and is non-negative at rest.
type Account struct {
	ID        string
	Number    string
	Owner     *User
	Balance   decimal.Decimal
	Kind      AccountKind
	CreatedAt time.Time
}

// IsValid reports whether the account carries the minimum required data and
// a non-negative balance.
func (a *Account) IsValid() bool {
	return a != nil &&
		a.ID != "" &&
		a.Number != "" &&
		a.Owner != nil &&
		a.Kind.known() &&
		!a.Balance.IsNegative()
}

// HasSufficientBalance reports whether the balance covers amount. An amount
// exactly equal to the balance is sufficient; a non-positive amount never is.
func (a *Account) HasSufficientBalance(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount) && amount.IsPositive()
}

// NewAccount validates the input and builds an account with a generated ID
// and account number.
func NewAccount(owner *User, kind AccountKind, initialBalance decimal.Decimal) (*Account, error) {
	return NewAccountWithDetails(uuid.NewString(), generateNumber(kind), owner, kind, initialBalance)
}

// NewAccountWithDetails builds an account from caller-provided identifiers,
// validating the same rules as NewAccount.
func NewAccountWithDetails(id, number string, owner *User, kind AccountKind, initialBalance decimal.Decimal) (*Account, error) {
	if strings.TrimSpace(id) == "" {
		return nil, NewValidationError("id", "account ID must not be empty")
	}

	if strings.TrimSpace(number) == "" {
		return nil, NewValidationError("number", "account number must not be empty")
	}

	if owner == nil {
		return nil, NewValidationError("owner", "account owner must not be nil")
	}

	if !owner.IsValid() {
		return nil, NewValidationError("owner", "account owner is invalid")
	}

	if !kind.known() {
		return nil, NewValidationError("kind", "unknown account kind")
	}

	if initialBalance.IsNegative() {
		return nil, NewValidationError("initialBalance", "initial balance must not be negative")
	}

	account := &Account{
		ID:        strings.TrimSpace(id),
		Number:    strings.TrimSpace(number),
		Owner:     owner,
		Balance:   initialBalance,
		Kind:      kind,
		CreatedAt: time.Now(),
	}

	if !account.IsValid() {
		return nil, NewValidationError("account", "account data is invalid")
	}

	return account, nil
}

// generateNumber derives a kind-prefixed account number with an eight-digit
// numeric suffix.
func generateNumber(kind AccountKind) string {
	id := uuid.New()
	suffix := binary.BigEndian.Uint32(id[:4]) % 100000000

	return fmt.Sprintf("%s-%08d", kind.numberPrefix(), suffix)
}
