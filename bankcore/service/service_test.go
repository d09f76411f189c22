package service

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlab/bankcore/bankcore/ledger"
)

// ---------------------------------------------------------------------------
// Helper functions
// ---------------------------------------------------------------------------

// recordingObserver records the transactions it was notified about.
type recordingObserver struct {
	completed []*ledger.Transaction
	failed    []*ledger.Transaction
	// order, when set, receives this observer's tag on each completion.
	order *[]string
	tag   string
}

func (r *recordingObserver) OnCompleted(tx *ledger.Transaction) {
	r.completed = append(r.completed, tx)

	if r.order != nil {
		*r.order = append(*r.order, r.tag)
	}
}

func (r *recordingObserver) OnFailed(tx *ledger.Transaction, _ error) {
	r.failed = append(r.failed, tx)
}

func testAccount(t *testing.T, balance int64) *ledger.Account {
	t.Helper()

	owner, err := ledger.NewUser("alice", "hash", "alice@example.com")
	require.NoError(t, err)

	account, err := ledger.NewAccount(owner, ledger.AccountChecking, decimal.NewFromInt(balance))
	require.NoError(t, err)

	return account
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// ---------------------------------------------------------------------------
// Observer registry
// ---------------------------------------------------------------------------

func TestAddObserverDedupsAndIgnoresNil(t *testing.T) {
	svc := NewService(nil)
	account := testAccount(t, 1000)
	obs := &recordingObserver{}

	svc.AddObserver(nil)
	svc.AddObserver(obs)
	svc.AddObserver(obs) // silently ignored

	_, err := svc.Deposit(account, dec(10))
	require.NoError(t, err)

	assert.Len(t, obs.completed, 1)
}

func TestObserversNotifiedInRegistrationOrder(t *testing.T) {
	svc := NewService(nil)
	account := testAccount(t, 1000)

	var order []string

	first := &recordingObserver{order: &order, tag: "first"}
	second := &recordingObserver{order: &order, tag: "second"}
	third := &recordingObserver{order: &order, tag: "third"}

	svc.AddObserver(first)
	svc.AddObserver(second)
	svc.AddObserver(third)

	tx, err := svc.Deposit(account, dec(10))
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second", "third"}, order)

	// Every observer saw the same transaction identity.
	assert.Same(t, tx, first.completed[0])
	assert.Same(t, tx, second.completed[0])
	assert.Same(t, tx, third.completed[0])
}

func TestRemoveObserver(t *testing.T) {
	svc := NewService(nil)
	account := testAccount(t, 1000)

	kept := &recordingObserver{}
	removed := &recordingObserver{}

	svc.AddObserver(kept)
	svc.AddObserver(removed)
	svc.RemoveObserver(removed)
	svc.RemoveObserver(&recordingObserver{}) // absent: no-op

	_, err := svc.Deposit(account, dec(10))
	require.NoError(t, err)

	assert.Len(t, kept.completed, 1)
	assert.Empty(t, removed.completed)
}

// ---------------------------------------------------------------------------
// Failure asymmetry: success is broadcast, failure only raised
// ---------------------------------------------------------------------------

func TestFailureIsRaisedNotBroadcast(t *testing.T) {
	svc := NewService(nil)
	account := testAccount(t, 100)
	obs := &recordingObserver{}
	svc.AddObserver(obs)

	tx, err := svc.Withdraw(account, dec(500))
	assert.Nil(t, tx)

	var fundsErr ledger.InsufficientFundsError
	require.True(t, errors.As(err, &fundsErr))

	assert.Empty(t, obs.completed)
	assert.Empty(t, obs.failed)
	assert.Empty(t, svc.AllTransactions())
	assert.True(t, account.Balance.Equal(dec(100)))
}

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

func TestServiceDeposit(t *testing.T) {
	svc := NewService(nil)
	account := testAccount(t, 1000)

	tx, err := svc.Deposit(account, decimal.NewFromFloat(500.0))
	require.NoError(t, err)

	assert.Equal(t, ledger.KindDeposit, tx.Kind)
	assert.Equal(t, ledger.StatusCompleted, tx.Status)
	assert.True(t, tx.Amount.Equal(decimal.NewFromFloat(500.0)))
	assert.True(t, account.Balance.Equal(decimal.NewFromFloat(1500.0)))
}

func TestServiceTransferKinds(t *testing.T) {
	tests := []struct {
		name string
		call func(*Service, *ledger.Account, *ledger.Account, decimal.Decimal) (*ledger.Transaction, error)
		kind ledger.TransactionKind
	}{
		{name: "plain", call: (*Service).Transfer, kind: ledger.KindTransfer},
		{name: "internal", call: (*Service).TransferInternal, kind: ledger.KindTransferInternal},
		{name: "external", call: (*Service).TransferExternal, kind: ledger.KindTransferExternal},
		{name: "multi", call: (*Service).TransferMulti, kind: ledger.KindTransferMulti},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := NewService(nil)
			from := testAccount(t, 1000)
			to := testAccount(t, 500)

			tx, err := tt.call(svc, from, to, dec(300))
			require.NoError(t, err)

			assert.Equal(t, tt.kind, tx.Kind)
			assert.True(t, from.Balance.Equal(dec(700)))
			assert.True(t, to.Balance.Equal(dec(800)))
		})
	}
}

func TestServiceTransferToSameAccount(t *testing.T) {
	svc := NewService(nil)
	account := testAccount(t, 1000)

	tx, err := svc.Transfer(account, account, dec(50))
	assert.Nil(t, tx)

	var vErr ledger.ValidationError
	require.True(t, errors.As(err, &vErr))

	assert.True(t, account.Balance.Equal(dec(1000)))
	assert.Empty(t, svc.AllTransactions())
}

// ---------------------------------------------------------------------------
// History
// ---------------------------------------------------------------------------

func TestTransactionHistoryPerAccount(t *testing.T) {
	svc := NewService(nil)
	account := testAccount(t, 1000)
	other := testAccount(t, 500)

	first, err := svc.Deposit(account, dec(100))
	require.NoError(t, err)

	second, err := svc.Withdraw(account, dec(50))
	require.NoError(t, err)

	_, err = svc.Deposit(other, dec(25))
	require.NoError(t, err)

	history := svc.TransactionHistory(account)
	require.Len(t, history, 2)
	assert.Same(t, first, history[0])
	assert.Same(t, second, history[1])

	assert.Len(t, svc.TransactionHistory(other), 1)
	assert.Empty(t, svc.TransactionHistory(nil))
}

func TestTransactionHistoryIncludesTransfersOnBothSides(t *testing.T) {
	svc := NewService(nil)
	from := testAccount(t, 1000)
	to := testAccount(t, 500)

	tx, err := svc.Transfer(from, to, dec(300))
	require.NoError(t, err)

	require.Len(t, svc.TransactionHistory(from), 1)
	require.Len(t, svc.TransactionHistory(to), 1)
	assert.Same(t, tx, svc.TransactionHistory(from)[0])
}

func TestAllTransactionsReturnsCopy(t *testing.T) {
	svc := NewService(nil)
	account := testAccount(t, 1000)

	_, err := svc.Deposit(account, dec(10))
	require.NoError(t, err)

	all := svc.AllTransactions()
	require.Len(t, all, 1)

	all[0] = nil

	assert.NotNil(t, svc.AllTransactions()[0])
}

func TestTransactionByID(t *testing.T) {
	svc := NewService(nil)
	account := testAccount(t, 1000)

	tx, err := svc.Deposit(account, dec(10))
	require.NoError(t, err)

	found, ok := svc.TransactionByID(tx.ID)
	require.True(t, ok)
	assert.Same(t, tx, found)

	missing, ok := svc.TransactionByID("no-such-id")
	assert.False(t, ok)
	assert.Nil(t, missing)
}

// ---------------------------------------------------------------------------
// End-to-end scenarios
// ---------------------------------------------------------------------------

func TestScenarioDepositThenWithdrawHistoryOrder(t *testing.T) {
	svc := NewService(nil)
	account := testAccount(t, 1000)

	_, err := svc.Deposit(account, dec(200))
	require.NoError(t, err)

	_, err = svc.Withdraw(account, dec(50))
	require.NoError(t, err)

	history := svc.TransactionHistory(account)
	require.Len(t, history, 2)
	assert.Equal(t, ledger.KindDeposit, history[0].Kind)
	assert.Equal(t, ledger.KindWithdraw, history[1].Kind)
}

func TestScenarioInternalTransferTag(t *testing.T) {
	svc := NewService(nil)
	from := testAccount(t, 1000)
	to := testAccount(t, 500)

	tx, err := svc.TransferInternal(from, to, decimal.NewFromFloat(300.0))
	require.NoError(t, err)

	assert.Equal(t, ledger.KindTransferInternal, tx.Kind)
	assert.Equal(t, "VIRIN", string(tx.Kind))
	assert.True(t, from.Balance.Equal(dec(700)))
	assert.True(t, to.Balance.Equal(dec(800)))
}

func TestScenarioInsufficientFundsLeavesStateIntact(t *testing.T) {
	svc := NewService(nil)
	account := testAccount(t, 100)

	before := len(svc.AllTransactions())

	_, err := svc.Withdraw(account, decimal.NewFromFloat(500.0))

	var fundsErr ledger.InsufficientFundsError
	require.True(t, errors.As(err, &fundsErr))
	assert.True(t, fundsErr.Current.Equal(dec(100)))
	assert.True(t, fundsErr.Requested.Equal(dec(500)))
	assert.True(t, fundsErr.Missing().Equal(dec(400)))

	assert.True(t, account.Balance.Equal(dec(100)))
	assert.Len(t, svc.AllTransactions(), before)
}
