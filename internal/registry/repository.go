package registry

import (
	"context"

	"github.com/dmitrijs2005/gophbank/internal/models"
)

// Repository describes storage for users and accounts.
type Repository interface {
	// AddUser stores u. Uniqueness is enforced by the caller.
	AddUser(ctx context.Context, u *models.User) error

	// FindUserByIdentity returns the user with the given identity number or
	// common.ErrUserNotFound.
	FindUserByIdentity(ctx context.Context, identity string) (*models.User, error)

	// Users returns all users in registration order.
	Users(ctx context.Context) ([]*models.User, error)

	// AddAccount stores a.
	AddAccount(ctx context.Context, a *models.Account) error

	// Accounts returns all accounts in creation order.
	Accounts(ctx context.Context) ([]*models.Account, error)

	// AccountCount returns the number of stored accounts.
	AccountCount(ctx context.Context) (int, error)
}
