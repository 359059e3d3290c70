// Package models defines the transaction model shared by the parsing engine,
// the categorizer and the output writers.
package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// TransactionType encodes the direction of a transaction. The amount itself
// is always a positive magnitude; direction lives only here.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// MaxDescriptionLength is the upper bound for transaction descriptions.
// Longer strings are truncated during normalization.
const MaxDescriptionLength = 200

// Transaction is one normalized statement row.
type Transaction struct {
	Date        string          `json:"date" csv:"Date" yaml:"date"`
	Description string          `json:"description" csv:"Description" yaml:"description"`
	Amount      decimal.Decimal `json:"amount" csv:"Amount" yaml:"amount"`
	Type        TransactionType `json:"type" csv:"Type" yaml:"type"`
	Category    string          `json:"category" csv:"Category" yaml:"category"`
}

// MarshalJSON emits the amount as a JSON number. API consumers of
// ParseResult expect numeric amounts; decimal's quoted-string default is
// only overridden here, not via the package-level flag, so other decimals
// in the process keep their serialization.
func (t Transaction) MarshalJSON() ([]byte, error) {
	type plain Transaction
	return json.Marshal(struct {
		plain
		Amount json.Number `json:"amount"`
	}{plain(t), json.Number(t.Amount.String())})
}

// IsExpense returns true for outgoing transactions.
func (t Transaction) IsExpense() bool {
	return t.Type == TypeExpense
}

// IsIncome returns true for incoming transactions.
func (t Transaction) IsIncome() bool {
	return t.Type == TypeIncome
}

// SignedAmount returns the amount with its direction applied: negative for
// expenses, positive for income.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.IsExpense() {
		return t.Amount.Neg()
	}
	return t.Amount
}

// ParseResult is the complete outcome of parsing one statement.
// ParsedCount always equals len(Transactions); TotalRowsScanned additionally
// counts rows that were examined but skipped.
type ParseResult struct {
	Transactions     []Transaction `json:"transactions"`
	SourceLabel      string        `json:"sourceLabel"`
	TotalRowsScanned int           `json:"totalRowsScanned"`
	ParsedCount      int           `json:"parsedCount"`
}

// NetAmount sums the signed amounts of all transactions: income minus
// expenses.
func (r ParseResult) NetAmount() decimal.Decimal {
	net := decimal.Zero
	for _, tx := range r.Transactions {
		net = net.Add(tx.SignedAmount())
	}
	return net
}
