package observer

import (
	"github.com/ledgerlab/bankcore/bankcore/ledger"
)

// TransactionObserver receives transaction outcomes.
type TransactionObserver interface {
	// OnCompleted is called after a transaction has been applied and recorded.
	OnCompleted(tx *ledger.Transaction)
	// OnFailed is called with the transaction attempt and the error that
	// rejected it.
	OnFailed(tx *ledger.Transaction, err error)
}
