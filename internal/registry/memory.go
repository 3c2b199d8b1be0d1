package registry

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/gophbank/internal/common"
	"github.com/dmitrijs2005/gophbank/internal/models"
)

// MemoryRepository keeps users and accounts in process memory.
// It is not safe for concurrent use; the console loop is single-threaded.
type MemoryRepository struct {
	users    []*models.User
	accounts []*models.Account
}

// NewMemoryRepository returns an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// AddUser appends u to the stored users.
func (r *MemoryRepository) AddUser(ctx context.Context, u *models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.users = append(r.users, u)
	return nil
}

// FindUserByIdentity returns the first user with the given identity number,
// or common.ErrUserNotFound.
func (r *MemoryRepository) FindUserByIdentity(ctx context.Context, identity string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	i := slices.IndexFunc(r.users, func(u *models.User) bool { return u.Identity == identity })
	if i < 0 {
		return nil, common.ErrUserNotFound
	}
	return r.users[i], nil
}

// Users lists all users in registration order. The slice is a copy.
func (r *MemoryRepository) Users(ctx context.Context) ([]*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.users), nil
}

// AddAccount appends a to the stored accounts.
func (r *MemoryRepository) AddAccount(ctx context.Context, a *models.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.accounts = append(r.accounts, a)
	return nil
}

// Accounts lists all accounts in creation order. The slice is a copy.
func (r *MemoryRepository) Accounts(ctx context.Context) ([]*models.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.accounts), nil
}

// AccountCount returns the number of stored accounts.
func (r *MemoryRepository) AccountCount(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return len(r.accounts), nil
}
