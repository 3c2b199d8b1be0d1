// Package ledger implements the session's bookkeeping: a single balance, its
// statement and the withdrawal counter.
//
// Deposit, Withdraw and RenderStatement are pure: they return new values and
// leave their inputs untouched, so every call can be checked in isolation.
// Ledger bundles the session state and applies those functions to it.
package ledger

import (
	"strings"

	"github.com/dmitrijs2005/gophbank/internal/common"
	"github.com/dmitrijs2005/gophbank/internal/models"
	"github.com/dmitrijs2005/gophbank/internal/money"
	"github.com/shopspring/decimal"
)

const (
	// DefaultWithdrawalLimit is the largest amount a single withdrawal may take.
	DefaultWithdrawalLimit = 500
	// DefaultMaxWithdrawals is the number of withdrawals allowed per session.
	DefaultMaxWithdrawals = 3
)

// NoTransactionsMessage is printed instead of entries on an empty statement.
const NoTransactionsMessage = "No transactions were made."

const banner = "=========================================="

// Statement is the ordered list of recorded entries.
type Statement []models.Entry

// Lines formats every entry with the given currency symbol.
func (s Statement) Lines(symbol string) []string {
	lines := make([]string, len(s))
	for i, e := range s {
		lines[i] = e.Line(symbol)
	}
	return lines
}

// appendEntry returns s with e appended, never writing into spare capacity
// shared with the caller's slice.
func appendEntry(s Statement, e models.Entry) Statement {
	return append(s[:len(s):len(s)], e)
}

// Deposit adds amount to balance and records a deposit entry.
// A non-positive amount returns the inputs unchanged with
// common.ErrInvalidAmount.
func Deposit(balance, amount decimal.Decimal, stmt Statement) (decimal.Decimal, Statement, error) {
	if !amount.IsPositive() {
		return balance, stmt, common.ErrInvalidAmount
	}
	return balance.Add(amount), appendEntry(stmt, models.NewEntry(models.EntryKindDeposit, amount)), nil
}

// Withdraw takes amount from balance and records a withdrawal entry.
//
// Rules are checked in order and the first one that fails wins:
//
//  1. amount > balance               common.ErrInsufficientBalance
//  2. amount > limit                 common.ErrLimitExceeded
//  3. withdrawals >= maxWithdrawals  common.ErrWithdrawalCountExceeded
//  4. amount <= 0                    common.ErrInvalidAmount
//
// An amount equal to the balance or to the limit is accepted. On failure the
// inputs are returned unchanged.
func Withdraw(
	balance, amount decimal.Decimal,
	stmt Statement,
	limit decimal.Decimal,
	withdrawals, maxWithdrawals int,
) (decimal.Decimal, Statement, int, error) {
	switch {
	case amount.GreaterThan(balance):
		return balance, stmt, withdrawals, common.ErrInsufficientBalance
	case amount.GreaterThan(limit):
		return balance, stmt, withdrawals, common.ErrLimitExceeded
	case withdrawals >= maxWithdrawals:
		return balance, stmt, withdrawals, common.ErrWithdrawalCountExceeded
	case amount.IsPositive():
		entry := models.NewEntry(models.EntryKindWithdrawal, amount)
		return balance.Sub(amount), appendEntry(stmt, entry), withdrawals + 1, nil
	default:
		return balance, stmt, withdrawals, common.ErrInvalidAmount
	}
}

// RenderStatement formats the statement followed by the current balance.
func RenderStatement(balance decimal.Decimal, stmt Statement, symbol string) string {
	var b strings.Builder

	b.WriteString("\n================ STATEMENT ================\n")
	if len(stmt) == 0 {
		b.WriteString(NoTransactionsMessage)
		b.WriteString("\n")
	} else {
		for _, line := range stmt.Lines(symbol) {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	b.WriteString("\nBalance:\t")
	b.WriteString(money.Format(symbol, balance))
	b.WriteString("\n")
	b.WriteString(banner)
	b.WriteString("\n")

	return b.String()
}

// Ledger is the mutable bookkeeping state of one session. All accounts of
// the session share it.
type Ledger struct {
	Balance        decimal.Decimal
	Statement      Statement
	Withdrawals    int
	Limit          decimal.Decimal
	MaxWithdrawals int
}

// New returns an empty ledger with the given withdrawal rules.
func New(limit decimal.Decimal, maxWithdrawals int) *Ledger {
	return &Ledger{
		Balance:        decimal.Zero,
		Limit:          limit,
		MaxWithdrawals: maxWithdrawals,
	}
}

// NewDefault returns an empty ledger with a 500.00 limit and 3 withdrawals.
func NewDefault() *Ledger {
	return New(decimal.NewFromInt(DefaultWithdrawalLimit), DefaultMaxWithdrawals)
}

// Deposit applies Deposit to the ledger.
func (l *Ledger) Deposit(amount decimal.Decimal) error {
	balance, stmt, err := Deposit(l.Balance, amount, l.Statement)
	if err != nil {
		return err
	}
	l.Balance, l.Statement = balance, stmt
	return nil
}

// Withdraw applies Withdraw to the ledger.
func (l *Ledger) Withdraw(amount decimal.Decimal) error {
	balance, stmt, n, err := Withdraw(l.Balance, amount, l.Statement, l.Limit, l.Withdrawals, l.MaxWithdrawals)
	if err != nil {
		return err
	}
	l.Balance, l.Statement, l.Withdrawals = balance, stmt, n
	return nil
}

// Render formats the ledger's statement and balance.
func (l *Ledger) Render(symbol string) string {
	return RenderStatement(l.Balance, l.Statement, symbol)
}
