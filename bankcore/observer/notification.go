package observer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ledgerlab/bankcore/bankcore/ledger"
)

// NotificationCenter delivers per-account message strings for transaction
// outcomes. When email notifications are enabled, each affected account's
// owner additionally receives a simulated send through the structured
// logger; a missing owner or owner email suppresses the send.
type NotificationCenter struct {
	notifications map[string][]string
	emailEnabled  bool
	logger        *zap.Logger
}

// Compile-time assertion: *NotificationCenter implements TransactionObserver.
var _ TransactionObserver = (*NotificationCenter)(nil)

// NewNotificationCenter builds a notification center. A nil logger disables
// the email side channel's output.
func NewNotificationCenter(emailEnabled bool, logger *zap.Logger) *NotificationCenter {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &NotificationCenter{
		notifications: make(map[string][]string),
		emailEnabled:  emailEnabled,
		logger:        logger,
	}
}

// OnCompleted notifies the source account with a debit-style message and the
// destination account with a deposit-style message. Both fire for a transfer.
func (n *NotificationCenter) OnCompleted(tx *ledger.Transaction) {
	if tx == nil {
		return
	}

	if tx.From != nil {
		message := outcomeMessage(tx, true)
		n.add(tx.From, message)
		n.sendEmail(tx.From, message)
	}

	if tx.To != nil {
		message := depositMessage(tx)
		n.add(tx.To, message)
		n.sendEmail(tx.To, message)
	}
}

// OnFailed notifies whichever of source/destination is present, preferring
// the source.
func (n *NotificationCenter) OnFailed(tx *ledger.Transaction, err error) {
	if tx == nil {
		return
	}

	message := outcomeMessage(tx, false)
	if err != nil {
		message += " - error: " + err.Error()
	}

	account := tx.From
	if account == nil {
		account = tx.To
	}

	if account != nil {
		n.add(account, message)
		n.sendEmail(account, message)
	}
}

// Notifications returns a copy of the messages delivered to the account
// number, in delivery order.
func (n *NotificationCenter) Notifications(accountNumber string) []string {
	messages := n.notifications[accountNumber]
	out := make([]string, len(messages))
	copy(out, messages)

	return out
}

// ClearNotifications discards the messages for one account number.
func (n *NotificationCenter) ClearNotifications(accountNumber string) {
	delete(n.notifications, accountNumber)
}

// ClearAll discards every delivered message.
func (n *NotificationCenter) ClearAll() {
	n.notifications = make(map[string][]string)
}

// SetEmailEnabled toggles the simulated email side channel.
func (n *NotificationCenter) SetEmailEnabled(enabled bool) {
	n.emailEnabled = enabled
}

// EmailEnabled reports whether the email side channel is on.
func (n *NotificationCenter) EmailEnabled() bool {
	return n.emailEnabled
}

func (n *NotificationCenter) add(account *ledger.Account, message string) {
	n.notifications[account.Number] = append(n.notifications[account.Number], message)
}

func (n *NotificationCenter) sendEmail(account *ledger.Account, message string) {
	if !n.emailEnabled || account.Owner == nil || account.Owner.Email == "" {
		return
	}

	n.logger.Info("email notification sent",
		zap.String("to", account.Owner.Email),
		zap.String("message", message),
	)
}

// outcomeMessage renders the generic success/failure message for a
// transaction, naming whichever accounts are present.
func outcomeMessage(tx *ledger.Transaction, success bool) string {
	prefix := "Transaction completed: "
	if !success {
		prefix = "Transaction failed: "
	}

	message := fmt.Sprintf("%s%s of %s", prefix, tx.Kind, tx.Amount)

	switch {
	case tx.From != nil && tx.To != nil:
		message += fmt.Sprintf(" from %s to %s", tx.From.Number, tx.To.Number)
	case tx.From != nil:
		message += " from " + tx.From.Number
	case tx.To != nil:
		message += " to " + tx.To.Number
	}

	return fmt.Sprintf("%s - %s", message, tx.Timestamp.Format(timestampLayout))
}

// depositMessage renders the credit-side message for the destination account.
func depositMessage(tx *ledger.Transaction) string {
	return fmt.Sprintf("Deposit received: %s on account %s - %s",
		tx.Amount, tx.To.Number, tx.Timestamp.Format(timestampLayout))
}
