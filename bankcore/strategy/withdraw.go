package strategy

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerlab/bankcore/bankcore/ledger"
)

// Withdraw debits the primary account after a funds check. An amount exactly
// equal to the balance is sufficient.
type Withdraw struct{}

// Compile-time assertion: Withdraw implements Strategy.
var _ Strategy = Withdraw{}

// Execute validates the withdraw, checks funds, debits the primary account,
// and returns a completed transaction.
func (w Withdraw) Execute(primary *ledger.Account, amount decimal.Decimal, secondary *ledger.Account) (*ledger.Transaction, error) {
	if !w.Validate(primary, amount, secondary) {
		return nil, ledger.NewValidationError("withdraw", "withdraw cannot be executed: check the account and amount")
	}

	if !primary.HasSufficientBalance(amount) {
		return nil, ledger.InsufficientFundsError{
			AccountID: primary.ID,
			Current:   primary.Balance,
			Requested: amount,
		}
	}

	tx := &ledger.Transaction{
		ID:          uuid.NewString(),
		Kind:        ledger.KindWithdraw,
		Amount:      amount,
		From:        primary,
		Timestamp:   time.Now(),
		Description: fmt.Sprintf("Withdrawal of %s", amount),
		Status:      ledger.StatusPending,
	}

	primary.Balance = primary.Balance.Sub(amount)
	tx.Status = ledger.StatusCompleted

	return tx, nil
}

// Validate reports whether the withdraw could execute, ignoring the funds
// check. It never mutates the account.
func (Withdraw) Validate(primary *ledger.Account, amount decimal.Decimal, _ *ledger.Account) bool {
	if primary == nil || !primary.IsValid() {
		return false
	}

	return amount.IsPositive()
}

// Kind returns the withdraw kind tag.
func (Withdraw) Kind() ledger.TransactionKind {
	return ledger.KindWithdraw
}
