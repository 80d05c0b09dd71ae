// Package ledgerrepo manages the transaction that keeps the ledger and the
// balance consistent.
package ledgerrepo

import (
	"context"
	"database/sql"

	"github.com/go-petr/pocket-ledger/internal/balancerepo"
	"github.com/go-petr/pocket-ledger/internal/domain"
	"github.com/go-petr/pocket-ledger/internal/entryrepo"
	"github.com/go-petr/pocket-ledger/pkg/categorypkg"
	"github.com/go-petr/pocket-ledger/pkg/errorspkg"

	"github.com/rs/zerolog"
)

// RepoPGS facilitates the ledger repository layer logic.
type RepoPGS struct {
	conn *sql.DB
}

// NewRepoPGS returns ledger RepoPGS with connection to start transactions.
func NewRepoPGS(conn *sql.DB) *RepoPGS {
	return &RepoPGS{conn: conn}
}

// Submit appends the entry and applies its signed delta to the user's balance
// within a single database transaction.
//
// Both writes commit together or not at all, so the balance invariant
// current = initial + sum(credits) - sum(debits) holds after every submission.
func (r *RepoPGS) Submit(ctx context.Context, arg domain.CreateEntryParams) (domain.SubmitTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.SubmitTxResult

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	entryRepo := entryrepo.NewRepoPGS(tx)
	balanceRepo := balancerepo.NewRepoPGS(tx)

	result.Entry, err = entryRepo.Create(ctx, arg)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.SubmitTxResult{}, err
	}

	delta := arg.Amount
	if arg.Kind == categorypkg.Debit {
		delta = "-" + arg.Amount
	}

	result.Balance, err = balanceRepo.Add(ctx, delta, arg.Username)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.SubmitTxResult{}, err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return domain.SubmitTxResult{}, errorspkg.ErrInternal
	}

	return result, nil
}
