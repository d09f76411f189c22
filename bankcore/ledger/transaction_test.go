package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionKindIsTransfer(t *testing.T) {
	tests := []struct {
		kind       TransactionKind
		isTransfer bool
	}{
		{kind: KindDeposit, isTransfer: false},
		{kind: KindWithdraw, isTransfer: false},
		{kind: KindTransfer, isTransfer: true},
		{kind: KindTransferInternal, isTransfer: true},
		{kind: KindTransferExternal, isTransfer: true},
		{kind: KindTransferMulti, isTransfer: true},
		{kind: TransactionKind("OTHER"), isTransfer: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.isTransfer, tt.kind.IsTransfer())
		})
	}
}

func TestTransactionIsValid(t *testing.T) {
	src := &Account{ID: "a1"}
	dst := &Account{ID: "a2"}
	amount := decimal.NewFromInt(10)

	tests := []struct {
		name  string
		tx    *Transaction
		valid bool
	}{
		{name: "nil transaction", tx: nil, valid: false},
		{name: "deposit with destination", tx: &Transaction{ID: "t1", Kind: KindDeposit, Amount: amount, To: dst}, valid: true},
		{name: "deposit with source", tx: &Transaction{ID: "t1", Kind: KindDeposit, Amount: amount, From: src, To: dst}, valid: false},
		{name: "deposit without destination", tx: &Transaction{ID: "t1", Kind: KindDeposit, Amount: amount}, valid: false},
		{name: "withdraw with source", tx: &Transaction{ID: "t1", Kind: KindWithdraw, Amount: amount, From: src}, valid: true},
		{name: "withdraw with destination", tx: &Transaction{ID: "t1", Kind: KindWithdraw, Amount: amount, From: src, To: dst}, valid: false},
		{name: "transfer with both accounts", tx: &Transaction{ID: "t1", Kind: KindTransfer, Amount: amount, From: src, To: dst}, valid: true},
		{name: "internal transfer with both accounts", tx: &Transaction{ID: "t1", Kind: KindTransferInternal, Amount: amount, From: src, To: dst}, valid: true},
		{name: "transfer to same account", tx: &Transaction{ID: "t1", Kind: KindTransfer, Amount: amount, From: src, To: src}, valid: false},
		{name: "transfer missing destination", tx: &Transaction{ID: "t1", Kind: KindTransfer, Amount: amount, From: src}, valid: false},
		{name: "zero amount", tx: &Transaction{ID: "t1", Kind: KindDeposit, Amount: decimal.Zero, To: dst}, valid: false},
		{name: "missing ID", tx: &Transaction{Kind: KindDeposit, Amount: amount, To: dst}, valid: false},
		{name: "unknown kind", tx: &Transaction{ID: "t1", Kind: TransactionKind("OTHER"), Amount: amount, To: dst}, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.valid, tt.tx.IsValid())
		})
	}
}

func TestTransactionInvolves(t *testing.T) {
	src := &Account{ID: "a1"}
	dst := &Account{ID: "a2"}
	other := &Account{ID: "a3"}

	tx := &Transaction{ID: "t1", Kind: KindTransfer, Amount: decimal.NewFromInt(10), From: src, To: dst}

	assert.True(t, tx.Involves(src))
	assert.True(t, tx.Involves(dst))
	assert.False(t, tx.Involves(other))
	assert.False(t, tx.Involves(nil))

	var nilTx *Transaction

	assert.False(t, nilTx.Involves(src))
}
