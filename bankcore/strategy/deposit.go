package strategy

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerlab/bankcore/bankcore/ledger"
)

// Deposit credits the primary account. The secondary account is ignored and
// no funds check applies.
type Deposit struct{}

// Compile-time assertion: Deposit implements Strategy.
var _ Strategy = Deposit{}

// Execute validates the deposit, credits the primary account, and returns a
// completed transaction.
func (d Deposit) Execute(primary *ledger.Account, amount decimal.Decimal, secondary *ledger.Account) (*ledger.Transaction, error) {
	if !d.Validate(primary, amount, secondary) {
		return nil, ledger.NewValidationError("deposit", "deposit cannot be executed: check the account and amount")
	}

	tx := &ledger.Transaction{
		ID:          uuid.NewString(),
		Kind:        ledger.KindDeposit,
		Amount:      amount,
		To:          primary,
		Timestamp:   time.Now(),
		Description: fmt.Sprintf("Deposit of %s", amount),
		Status:      ledger.StatusPending,
	}

	primary.Balance = primary.Balance.Add(amount)
	tx.Status = ledger.StatusCompleted

	return tx, nil
}

// Validate reports whether the deposit could execute. It never mutates the
// account.
func (Deposit) Validate(primary *ledger.Account, amount decimal.Decimal, _ *ledger.Account) bool {
	if primary == nil || !primary.IsValid() {
		return false
	}

	return amount.IsPositive()
}

// Kind returns the deposit kind tag.
func (Deposit) Kind() ledger.TransactionKind {
	return ledger.KindDeposit
}
