package strategy

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerlab/bankcore/bankcore/ledger"
)

// Strategy validates and applies a single kind of balance mutation.
//
// Execute re-validates internally and fails with ledger.ValidationError or
// ledger.InsufficientFundsError rather than trusting a prior Validate call.
// On failure no transaction is returned and the involved balances are left
// untouched.
type Strategy interface {
	Execute(primary *ledger.Account, amount decimal.Decimal, secondary *ledger.Account) (*ledger.Transaction, error)
	Validate(primary *ledger.Account, amount decimal.Decimal, secondary *ledger.Account) bool
	Kind() ledger.TransactionKind
}
