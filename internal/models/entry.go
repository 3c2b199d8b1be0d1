package models

import (
	"time"

	"github.com/dmitrijs2005/gophbank/internal/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryKind classifies a statement entry.
type EntryKind string

const (
	EntryKindDeposit    EntryKind = "deposit"
	EntryKindWithdrawal EntryKind = "withdrawal"
)

// label is the statement caption, padded with tabs so amounts line up.
func (k EntryKind) label() string {
	switch k {
	case EntryKindDeposit:
		return "Deposit:\t"
	case EntryKindWithdrawal:
		return "Withdrawal:\t"
	default:
		return string(k) + ":\t"
	}
}

// Entry is one line of the statement.
type Entry struct {
	ID       uuid.UUID       `json:"id"`
	Kind     EntryKind       `json:"kind"`
	Amount   decimal.Decimal `json:"amount"`
	Recorded time.Time       `json:"recorded"`
}

// NewEntry stamps a new entry with a random ID and the current time.
func NewEntry(kind EntryKind, amount decimal.Decimal) Entry {
	return Entry{ID: uuid.New(), Kind: kind, Amount: amount, Recorded: time.Now().UTC()}
}

// Line formats the entry for the statement, e.g. "Deposit:\tR$ 100.00".
func (e Entry) Line(symbol string) string {
	return e.Kind.label() + money.Format(symbol, e.Amount)
}
