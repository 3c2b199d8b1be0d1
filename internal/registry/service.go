package registry

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophbank/internal/common"
	"github.com/dmitrijs2005/gophbank/internal/models"
)

// StructValidator validates tagged structs (see validation.Validator).
type StructValidator interface {
	Struct(s any) error
}

// Service applies the registration rules on top of a Repository.
type Service struct {
	repo       Repository
	validator  StructValidator
	agencyCode string
}

// NewService returns a Service opening accounts under agencyCode.
// A nil validator skips struct validation.
func NewService(repo Repository, v StructValidator, agencyCode string) *Service {
	return &Service{repo: repo, validator: v, agencyCode: agencyCode}
}

// FindUser returns the user with the given identity number or
// common.ErrUserNotFound.
func (s *Service) FindUser(ctx context.Context, identity string) (*models.User, error) {
	return s.repo.FindUserByIdentity(ctx, identity)
}

// CreateUser registers u. A user with the same identity number yields
// common.ErrDuplicateIdentity and nothing is stored.
func (s *Service) CreateUser(ctx context.Context, u models.User) error {
	_, err := s.repo.FindUserByIdentity(ctx, u.Identity)
	switch {
	case err == nil:
		return common.ErrDuplicateIdentity
	case !errors.Is(err, common.ErrUserNotFound):
		return fmt.Errorf("lookup user: %w", err)
	}

	if s.validator != nil {
		if err := s.validator.Struct(u); err != nil {
			return err
		}
	}

	if err := s.repo.AddUser(ctx, &u); err != nil {
		return fmt.Errorf("store user: %w", err)
	}
	return nil
}

// CreateAccount builds an account numbered number under agencyCode for the
// user with the given identity. The account is not stored.
func (s *Service) CreateAccount(ctx context.Context, agencyCode string, number int, identity string) (*models.Account, error) {
	u, err := s.repo.FindUserByIdentity(ctx, identity)
	if err != nil {
		return nil, err
	}
	return &models.Account{AgencyCode: agencyCode, Number: number, Owner: u}, nil
}

// NextAccountNumber is the number the next opened account will get.
func (s *Service) NextAccountNumber(ctx context.Context) (int, error) {
	n, err := s.repo.AccountCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("count accounts: %w", err)
	}
	return n + 1, nil
}

// OpenAccount creates and stores the next account for the user with the
// given identity. Unknown identities yield common.ErrUserNotFound.
func (s *Service) OpenAccount(ctx context.Context, identity string) (*models.Account, error) {
	number, err := s.NextAccountNumber(ctx)
	if err != nil {
		return nil, err
	}
	acc, err := s.CreateAccount(ctx, s.agencyCode, number, identity)
	if err != nil {
		return nil, err
	}
	if err := s.repo.AddAccount(ctx, acc); err != nil {
		return nil, fmt.Errorf("store account: %w", err)
	}
	return acc, nil
}

// Accounts returns all accounts in creation order.
func (s *Service) Accounts(ctx context.Context) ([]*models.Account, error) {
	return s.repo.Accounts(ctx)
}

// Users returns all users in registration order.
func (s *Service) Users(ctx context.Context) ([]*models.User, error) {
	return s.repo.Users(ctx)
}

var rule = strings.Repeat("=", 100)

// ListAccounts formats one block per account, in the given order.
func ListAccounts(accounts []*models.Account) []string {
	blocks := make([]string, 0, len(accounts))
	for _, a := range accounts {
		var b strings.Builder
		b.WriteString(rule)
		b.WriteString("\nAgency:\t\t")
		b.WriteString(a.AgencyCode)
		b.WriteString("\nAccount:\t")
		b.WriteString(strconv.Itoa(a.Number))
		b.WriteString("\nHolder:\t\t")
		b.WriteString(a.HolderName())
		b.WriteString("\n")
		blocks = append(blocks, b.String())
	}
	return blocks
}
