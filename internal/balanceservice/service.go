// Package balanceservice manages business logic layer of user balances.
package balanceservice

import (
	"context"

	"github.com/go-petr/pocket-ledger/internal/domain"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Repo provides data access layer interface needed by balance service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package balanceservice
type Repo interface {
	Init(ctx context.Context, username, initial string) (domain.Balance, error)
	Get(ctx context.Context, username string) (domain.Balance, error)
	Reconcile(ctx context.Context, username string) (domain.Balance, error)
}

// Service facilitates balance service layer logic.
type Service struct {
	repo Repo
}

// New returns balance service struct to manage balance business logic.
func New(br Repo) *Service {
	return &Service{repo: br}
}

// Initialize sets the starting balance for the user exactly once.
//
// A repeated call fails with domain.ErrBalanceAlreadyInitialized and leaves
// the existing balance untouched.
func (s *Service) Initialize(ctx context.Context, username, initial string) (domain.Balance, error) {
	l := zerolog.Ctx(ctx)

	if username == "" || len(username) > domain.MaxNameLength {
		return domain.Balance{}, domain.ErrInvalidUsername
	}

	amount, err := decimal.NewFromString(initial)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Balance{}, domain.ErrInvalidAmount
	}

	if amount.IsNegative() {
		return domain.Balance{}, domain.ErrNegativeAmount
	}

	return s.repo.Init(ctx, username, amount.String())
}

// Read returns the current balance for the user.
func (s *Service) Read(ctx context.Context, username string) (domain.Balance, error) {
	return s.repo.Get(ctx, username)
}

// Reconcile recomputes the user's balance from the full ledger history and
// repairs any drift, returning the reconciled balance.
func (s *Service) Reconcile(ctx context.Context, username string) (domain.Balance, error) {
	return s.repo.Reconcile(ctx, username)
}
