// Package ledgerservice manages business logic layer of the ledger.
package ledgerservice

import (
	"context"
	"time"

	"github.com/go-petr/pocket-ledger/internal/domain"
	"github.com/go-petr/pocket-ledger/pkg/categorypkg"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Default and maximum number of entries returned by Latest.
const (
	DefaultLatestLimit = 5
	MaxLatestLimit     = 100
)

// TxRepo provides the submission transaction interface needed by the ledger
// service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package ledgerservice
type TxRepo interface {
	Submit(ctx context.Context, arg domain.CreateEntryParams) (domain.SubmitTxResult, error)
}

// EntryRepo provides data access layer interface needed by the ledger service layer.
type EntryRepo interface {
	ListRange(ctx context.Context, username string, from, to time.Time) ([]domain.Entry, error)
	ListLatest(ctx context.Context, username string, limit int32) ([]domain.Entry, error)
}

// Service facilitates ledger service layer logic.
type Service struct {
	txRepo    TxRepo
	entryRepo EntryRepo
}

// New returns ledger service struct to manage ledger business logic.
func New(tr TxRepo, er EntryRepo) *Service {
	return &Service{
		txRepo:    tr,
		entryRepo: er,
	}
}

func validateEntry(ctx context.Context, arg domain.CreateEntryParams) error {
	l := zerolog.Ctx(ctx)

	if arg.Name == "" || len(arg.Name) > domain.MaxNameLength {
		return domain.ErrInvalidName
	}

	amount, err := decimal.NewFromString(arg.Amount)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.ErrInvalidAmount
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.ErrNegativeAmount
	}

	if !categorypkg.IsSupportedKind(arg.Kind) {
		return domain.ErrUnsupportedKind
	}

	if !categorypkg.IsSupportedCategory(arg.Category) {
		return domain.ErrUnsupportedCategory
	}

	if _, err := time.Parse(domain.DateLayout, arg.Date); err != nil {
		l.Info().Err(err).Send()
		return domain.ErrInvalidDate
	}

	return nil
}

// Submit validates the entry and then records it together with its balance
// delta as one atomic operation.
//
// Validation failures leave no partial state; the repository guarantees that
// the entry row and the balance update commit together or not at all.
func (s *Service) Submit(ctx context.Context, arg domain.CreateEntryParams) (domain.SubmitTxResult, error) {
	if err := validateEntry(ctx, arg); err != nil {
		return domain.SubmitTxResult{}, err
	}

	result, err := s.txRepo.Submit(ctx, arg)
	if err != nil {
		return domain.SubmitTxResult{}, err
	}

	return result, nil
}

// QueryRange returns the user's entries with date in [from, to] inclusive,
// ordered by date then id ascending. An empty result is not an error.
func (s *Service) QueryRange(ctx context.Context, username, from, to string) ([]domain.Entry, error) {
	l := zerolog.Ctx(ctx)

	fromDate, err := time.Parse(domain.DateLayout, from)
	if err != nil {
		l.Info().Err(err).Send()
		return nil, domain.ErrInvalidDate
	}

	toDate, err := time.Parse(domain.DateLayout, to)
	if err != nil {
		l.Info().Err(err).Send()
		return nil, domain.ErrInvalidDate
	}

	if fromDate.After(toDate) {
		return nil, domain.ErrInvalidRange
	}

	return s.entryRepo.ListRange(ctx, username, fromDate, toDate)
}

// Latest returns the limit most recently appended entries for the user,
// most recent first. A non-positive limit falls back to the default.
func (s *Service) Latest(ctx context.Context, username string, limit int32) ([]domain.Entry, error) {
	if limit <= 0 {
		limit = DefaultLatestLimit
	}

	if limit > MaxLatestLimit {
		limit = MaxLatestLimit
	}

	return s.entryRepo.ListLatest(ctx, username, limit)
}
