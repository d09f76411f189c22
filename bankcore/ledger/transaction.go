package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies a balance mutation. The transfer sub-variants
// share mutation logic and differ only in the tag recorded for downstream
// reporting.
type TransactionKind string

const (
	// KindDeposit credits a single destination account.
	KindDeposit TransactionKind = "DEPOSIT"
	// KindWithdraw debits a single source account.
	KindWithdraw TransactionKind = "WITHDRAW"
	// KindTransfer moves value between two accounts.
	KindTransfer TransactionKind = "TRANSFER"
	// KindTransferInternal tags a transfer within the same bank.
	KindTransferInternal TransactionKind = "VIRIN"
	// KindTransferExternal tags a transfer toward another bank.
	KindTransferExternal TransactionKind = "VIREST"
	// KindTransferMulti tags a transfer that is part of a multi-destination batch.
	KindTransferMulti TransactionKind = "VIRMULTA"
)

// IsTransfer reports whether the kind belongs to the transfer family.
func (k TransactionKind) IsTransfer() bool {
	switch k {
	case KindTransfer, KindTransferInternal, KindTransferExternal, KindTransferMulti:
		return true
	default:
		return false
	}
}

// TransactionStatus represents the lifecycle state of a transaction.
//
// A transaction is created PENDING by a strategy and flipped to COMPLETED
// only after the balance mutation succeeds. FAILED and CANCELLED exist for
// collaborators that record rejected intents; the core itself returns an
// error instead of a failed transaction.
type TransactionStatus string

const (
	// StatusPending marks a transaction whose mutation has not been applied yet.
	StatusPending TransactionStatus = "PENDING"
	// StatusCompleted marks a successfully applied transaction.
	StatusCompleted TransactionStatus = "COMPLETED"
	// StatusFailed marks a rejected transaction.
	StatusFailed TransactionStatus = "FAILED"
	// StatusCancelled marks a cancelled transaction.
	StatusCancelled TransactionStatus = "CANCELLED"
)

// Transaction records one balance mutation. From and To are shared
// references into the account store, not copies; their presence depends on
// the kind.
type Transaction struct {
	ID          string
	Kind        TransactionKind
	Amount      decimal.Decimal
	From        *Account
	To          *Account
	Timestamp   time.Time
	Description string
	Status      TransactionStatus
}

// IsValid reports whether the transaction satisfies the kind-dependent
// account shape: deposit carries a destination only, withdraw a source only,
// and every transfer kind carries two distinct accounts.
func (t *Transaction) IsValid() bool {
	if t == nil || t.ID == "" || !t.Amount.IsPositive() {
		return false
	}

	switch {
	case t.Kind == KindDeposit:
		return t.To != nil && t.From == nil
	case t.Kind == KindWithdraw:
		return t.From != nil && t.To == nil
	case t.Kind.IsTransfer():
		return t.From != nil && t.To != nil && t.From.ID != t.To.ID
	default:
		return false
	}
}

// Involves reports whether the account appears as source or destination.
func (t *Transaction) Involves(account *Account) bool {
	if t == nil || account == nil {
		return false
	}

	if t.From != nil && t.From.ID == account.ID {
		return true
	}

	return t.To != nil && t.To.ID == account.ID
}
