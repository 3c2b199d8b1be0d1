package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophbank/internal/common"
	"github.com/dmitrijs2005/gophbank/internal/models"
	"github.com/dmitrijs2005/gophbank/internal/money"
	"github.com/dmitrijs2005/gophbank/internal/registry"
	"github.com/dmitrijs2005/gophbank/internal/validation"
)

// Deposit asks for an amount and credits the session ledger.
func (a *App) Deposit(ctx context.Context) error {
	text, err := a.askValid("Enter the deposit amount: ", validation.IsValidAmount)
	if err != nil {
		return err
	}
	amount, err := money.Parse(text)
	if err == nil {
		err = a.ledger.Deposit(amount)
	}
	return a.report(ctx, "deposit", err, msgDepositOK,
		"amount", text, "balance", a.ledger.Balance.String())
}

// Withdraw asks for an amount and debits the session ledger.
func (a *App) Withdraw(ctx context.Context) error {
	text, err := a.askValid("Enter the withdrawal amount: ", validation.IsValidAmount)
	if err != nil {
		return err
	}
	amount, err := money.Parse(text)
	if err == nil {
		err = a.ledger.Withdraw(amount)
	}
	return a.report(ctx, "withdrawal", err, msgWithdrawOK,
		"amount", text, "balance", a.ledger.Balance.String(), "withdrawals", a.ledger.Withdrawals)
}

// Statement prints every entry and the current balance.
func (a *App) Statement(ctx context.Context) error {
	a.console.Print(a.ledger.Render(a.config.CurrencySymbol))
	a.logger.Debug(ctx, "statement shown", "entries", len(a.ledger.Statement))
	return nil
}

// NewUser registers a customer. The identity number is checked for
// duplicates right after it is entered, before the remaining prompts.
func (a *App) NewUser(ctx context.Context) error {
	identity, err := a.askValid("Enter the identity number (digits only): ", validation.IsValidIdentity)
	if err != nil {
		return err
	}

	_, err = a.registry.FindUser(ctx, identity)
	switch {
	case err == nil:
		return a.report(ctx, "user registration", common.ErrDuplicateIdentity, "")
	case !errors.Is(err, common.ErrUserNotFound):
		return a.report(ctx, "user registration", err, "")
	}

	name, err := a.ask("Enter the full name: ")
	if err != nil {
		return err
	}
	birthDate, err := a.askValid("Enter the birth date (dd-mm-yyyy): ", validation.IsValidDate)
	if err != nil {
		return err
	}
	address, err := a.ask("Enter the address (street, number - district - city/state): ")
	if err != nil {
		return err
	}

	err = a.registry.CreateUser(ctx, models.User{
		Name:      name,
		BirthDate: birthDate,
		Identity:  identity,
		Address:   address,
	})
	return a.report(ctx, "user registration", err, msgUserCreated, "identity", identity)
}

// NewAccount opens the next numbered account for an existing customer.
func (a *App) NewAccount(ctx context.Context) error {
	identity, err := a.askValid("Enter the user's identity number: ", validation.IsValidIdentity)
	if err != nil {
		return err
	}

	acc, err := a.registry.OpenAccount(ctx, identity)
	if err != nil {
		return a.report(ctx, "account opening", err, "", "identity", identity)
	}
	return a.report(ctx, "account opening", nil, msgAccountCreated,
		"identity", identity, "agency", acc.AgencyCode, "number", acc.Number)
}

// ListAccounts prints one block per account in creation order.
func (a *App) ListAccounts(ctx context.Context) error {
	accounts, err := a.registry.Accounts(ctx)
	if err != nil {
		return a.report(ctx, "account listing", err, "")
	}
	for _, block := range registry.ListAccounts(accounts) {
		a.console.Println(block)
	}
	a.logger.Debug(ctx, "accounts listed", "count", len(accounts))
	return nil
}
