package observer

import (
	"strings"

	"go.uber.org/zap"

	"github.com/ledgerlab/bankcore/bankcore/ledger"
)

// timestampLayout is the audit entry timestamp format.
const timestampLayout = "2006-01-02 15:04:05"

// AuditLog records a human-readable line per transaction event, in event
// order. Each line is also emitted through the structured logger.
type AuditLog struct {
	entries []string
	logger  *zap.Logger
}

// Compile-time assertion: *AuditLog implements TransactionObserver.
var _ TransactionObserver = (*AuditLog)(nil)

// NewAuditLog builds an audit log writing through logger. A nil logger
// disables structured output.
func NewAuditLog(logger *zap.Logger) *AuditLog {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &AuditLog{logger: logger}
}

// OnCompleted appends a COMPLETED entry for the transaction.
func (a *AuditLog) OnCompleted(tx *ledger.Transaction) {
	entry := formatEntry(tx, "COMPLETED")
	a.entries = append(a.entries, entry)
	a.logger.Info("audit", zap.String("entry", entry))
}

// OnFailed appends a FAILED entry carrying the error message.
func (a *AuditLog) OnFailed(tx *ledger.Transaction, err error) {
	entry := formatEntry(tx, "FAILED")
	if err != nil {
		entry += " - Error: " + err.Error()
	}

	a.entries = append(a.entries, entry)
	a.logger.Warn("audit", zap.String("entry", entry))
}

// Entries returns a copy of every recorded entry, in event order.
func (a *AuditLog) Entries() []string {
	out := make([]string, len(a.entries))
	copy(out, a.entries)

	return out
}

// EntriesForAccount returns the entries whose formatted text mentions the
// account number.
func (a *AuditLog) EntriesForAccount(accountNumber string) []string {
	var out []string

	for _, entry := range a.entries {
		if strings.Contains(entry, accountNumber) {
			out = append(out, entry)
		}
	}

	return out
}

// Clear discards every recorded entry.
func (a *AuditLog) Clear() {
	a.entries = nil
}

// Len returns the number of recorded entries.
func (a *AuditLog) Len() int {
	return len(a.entries)
}

// formatEntry renders a transaction event as a single audit line. Optional
// fields are skipped; a nil transaction yields a placeholder line rather
// than failing.
func formatEntry(tx *ledger.Transaction, status string) string {
	if tx == nil {
		return "Transaction <unknown> - Status: " + status
	}

	var sb strings.Builder
	sb.WriteString("[" + tx.Timestamp.Format(timestampLayout) + "] ")
	sb.WriteString("Transaction " + tx.ID + " - ")
	sb.WriteString("Kind: " + string(tx.Kind) + ", ")
	sb.WriteString("Amount: " + tx.Amount.String() + ", ")

	if tx.From != nil {
		sb.WriteString("From: " + tx.From.Number + ", ")
	}

	if tx.To != nil {
		sb.WriteString("To: " + tx.To.Number + ", ")
	}

	sb.WriteString("Status: " + status)

	if tx.Description != "" {
		sb.WriteString(", Description: " + tx.Description)
	}

	return sb.String()
}
