package service

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ledgerlab/bankcore/bankcore/ledger"
	"github.com/ledgerlab/bankcore/bankcore/observer"
	"github.com/ledgerlab/bankcore/bankcore/strategy"
)

// Service executes transactions: it dispatches to the matching strategy,
// appends successful transactions to its history, and notifies registered
// observers synchronously and in registration order.
//
// The service is single-threaded: one request is processed fully
// (validate, mutate, record, notify) before the call returns.
type Service struct {
	observers []observer.TransactionObserver
	history   []*ledger.Transaction
	logger    *zap.Logger
}

// NewService builds a transaction service. A nil logger disables structured
// output.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{logger: logger}
}

// AddObserver registers o unless it is nil or already registered. Identity
// is reference identity, so re-adding an observer never duplicates
// notifications.
func (s *Service) AddObserver(o observer.TransactionObserver) {
	if o == nil {
		return
	}

	for _, registered := range s.observers {
		if registered == o {
			return
		}
	}

	s.observers = append(s.observers, o)
}

// RemoveObserver unregisters o; absent observers are a no-op.
func (s *Service) RemoveObserver(o observer.TransactionObserver) {
	for i, registered := range s.observers {
		if registered == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// Deposit credits the account and returns the completed transaction.
func (s *Service) Deposit(account *ledger.Account, amount decimal.Decimal) (*ledger.Transaction, error) {
	return s.run(strategy.Deposit{}, account, amount, nil)
}

// Withdraw debits the account and returns the completed transaction.
func (s *Service) Withdraw(account *ledger.Account, amount decimal.Decimal) (*ledger.Transaction, error) {
	return s.run(strategy.Withdraw{}, account, amount, nil)
}

// Transfer moves amount from one account to another and returns the
// completed transaction tagged TRANSFER.
func (s *Service) Transfer(from, to *ledger.Account, amount decimal.Decimal) (*ledger.Transaction, error) {
	return s.run(strategy.NewTransfer(ledger.KindTransfer), from, amount, to)
}

// TransferInternal is a transfer tagged VIRIN (same bank).
func (s *Service) TransferInternal(from, to *ledger.Account, amount decimal.Decimal) (*ledger.Transaction, error) {
	return s.run(strategy.NewTransfer(ledger.KindTransferInternal), from, amount, to)
}

// TransferExternal is a transfer tagged VIREST (another bank).
func (s *Service) TransferExternal(from, to *ledger.Account, amount decimal.Decimal) (*ledger.Transaction, error) {
	return s.run(strategy.NewTransfer(ledger.KindTransferExternal), from, amount, to)
}

// TransferMulti is a transfer tagged VIRMULTA (part of a multi-destination
// batch).
func (s *Service) TransferMulti(from, to *ledger.Account, amount decimal.Decimal) (*ledger.Transaction, error) {
	return s.run(strategy.NewTransfer(ledger.KindTransferMulti), from, amount, to)
}

// run executes one strategy. On success the transaction is recorded and
// broadcast; on failure the error propagates unchanged and neither history
// nor observers see the attempt.
func (s *Service) run(st strategy.Strategy, primary *ledger.Account, amount decimal.Decimal, secondary *ledger.Account) (*ledger.Transaction, error) {
	tx, err := st.Execute(primary, amount, secondary)
	if err != nil {
		return nil, err
	}

	s.history = append(s.history, tx)

	s.logger.Info("transaction completed",
		zap.String("transaction_id", tx.ID),
		zap.String("kind", string(tx.Kind)),
		zap.String("amount", tx.Amount.String()),
	)

	for _, o := range s.observers {
		o.OnCompleted(tx)
	}

	return tx, nil
}

// TransactionHistory returns the recorded transactions where the account is
// source or destination, in recording order. The result is a fresh slice,
// not a live view.
func (s *Service) TransactionHistory(account *ledger.Account) []*ledger.Transaction {
	var out []*ledger.Transaction

	for _, tx := range s.history {
		if tx.Involves(account) {
			out = append(out, tx)
		}
	}

	return out
}

// AllTransactions returns every recorded transaction in recording order.
func (s *Service) AllTransactions() []*ledger.Transaction {
	out := make([]*ledger.Transaction, len(s.history))
	copy(out, s.history)

	return out
}

// TransactionByID looks a transaction up by ID. Absence is reported through
// the boolean, not an error.
func (s *Service) TransactionByID(id string) (*ledger.Transaction, bool) {
	for _, tx := range s.history {
		if tx.ID == id {
			return tx, true
		}
	}

	return nil, false
}
