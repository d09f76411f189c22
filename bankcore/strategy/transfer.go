package strategy

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerlab/bankcore/bankcore/ledger"
)

// Transfer moves value from the primary account to the secondary account.
// The recorded kind tag is fixed at construction and is never inferred from
// the accounts.
type Transfer struct {
	kind ledger.TransactionKind
}

// Compile-time assertion: Transfer implements Strategy.
var _ Strategy = Transfer{}

// NewTransfer builds a transfer strategy tagged with the given kind. A kind
// outside the transfer family falls back to the plain TRANSFER tag.
func NewTransfer(kind ledger.TransactionKind) Transfer {
	if !kind.IsTransfer() {
		kind = ledger.KindTransfer
	}

	return Transfer{kind: kind}
}

// Execute validates the transfer, checks funds on the source, debits the
// primary account, credits the secondary account, and returns a completed
// transaction.
func (t Transfer) Execute(primary *ledger.Account, amount decimal.Decimal, secondary *ledger.Account) (*ledger.Transaction, error) {
	if !t.Validate(primary, amount, secondary) {
		return nil, ledger.NewValidationError("transfer", "transfer cannot be executed: check the accounts and amount")
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
		Kind:        t.kind,
		Amount:      amount,
		From:        primary,
		To:          secondary,
		Timestamp:   time.Now(),
		Description: fmt.Sprintf("Transfer of %s from %s to %s", amount, primary.Number, secondary.Number),
		Status:      ledger.StatusPending,
	}

	primary.Balance = primary.Balance.Sub(amount)
	secondary.Balance = secondary.Balance.Add(amount)
	tx.Status = ledger.StatusCompleted

	return tx, nil
}

// Validate reports whether the transfer could execute, ignoring the funds
// check. It never mutates the accounts.
func (Transfer) Validate(primary *ledger.Account, amount decimal.Decimal, secondary *ledger.Account) bool {
	if primary == nil || secondary == nil {
		return false
	}

	if !primary.IsValid() || !secondary.IsValid() {
		return false
	}

	if !amount.IsPositive() {
		return false
	}

	return primary.ID != secondary.ID
}

// Kind returns the transfer kind tag fixed at construction.
func (t Transfer) Kind() ledger.TransactionKind {
	return t.kind
}
