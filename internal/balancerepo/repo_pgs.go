// Package balancerepo manages repository layer of user balances.
package balancerepo

import (
	"context"
	"database/sql"

	"github.com/go-petr/pocket-ledger/internal/domain"
	"github.com/go-petr/pocket-ledger/pkg/dbpkg"
	"github.com/go-petr/pocket-ledger/pkg/errorspkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates balance repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns balance RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const initQuery = `
INSERT INTO
    balances (username, initial, current)
VALUES
    ($1, $2, $2)
RETURNING username, initial, current, created_at
`

// Init creates the balance row for the user with the given initial value.
//
// A user has exactly one balance row; a repeated call fails and leaves the
// existing row untouched.
func (r *RepoPGS) Init(ctx context.Context, username, initial string) (domain.Balance, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, initQuery, username, initial)

	var b domain.Balance

	err := row.Scan(
		&b.Username,
		&b.Initial,
		&b.Current,
		&b.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "balances_pkey" {
				return b, domain.ErrBalanceAlreadyInitialized
			}
		}

		return b, errorspkg.ErrInternal
	}

	return b, nil
}

const addQuery = `
UPDATE balances
SET current = current + $1
WHERE username = $2
RETURNING username, initial, current, created_at
`

// Add applies the signed amount to the user's current balance and returns
// the changed balance.
//
// The row write takes a row lock, so concurrent calls for the same user are
// serialized by the database.
func (r *RepoPGS) Add(ctx context.Context, amount, username string) (domain.Balance, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, addQuery, amount, username)

	var b domain.Balance

	err := row.Scan(
		&b.Username,
		&b.Initial,
		&b.Current,
		&b.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return b, domain.ErrBalanceNotFound
		}

		return b, errorspkg.ErrInternal
	}

	return b, nil
}

const getQuery = `
SELECT username, initial, current, created_at
FROM balances
WHERE username = $1
`

// Get returns the balance for the given user.
func (r *RepoPGS) Get(ctx context.Context, username string) (domain.Balance, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, username)

	var b domain.Balance

	err := row.Scan(
		&b.Username,
		&b.Initial,
		&b.Current,
		&b.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return b, domain.ErrBalanceNotFound
		}

		return b, errorspkg.ErrInternal
	}

	return b, nil
}

const reconcileQuery = `
UPDATE balances b
SET current = b.initial + COALESCE((
        SELECT SUM(CASE WHEN e.kind = 'Credit' THEN e.amount ELSE -e.amount END)
        FROM entries e
        WHERE e.username = b.username
    ), 0)
WHERE b.username = $1
RETURNING username, initial, current, created_at
`

// Reconcile recomputes the user's current balance from the full ledger sum
// plus the recorded initial value, repairing any drift in one atomic statement.
func (r *RepoPGS) Reconcile(ctx context.Context, username string) (domain.Balance, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, reconcileQuery, username)

	var b domain.Balance

	err := row.Scan(
		&b.Username,
		&b.Initial,
		&b.Current,
		&b.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return b, domain.ErrBalanceNotFound
		}

		return b, errorspkg.ErrInternal
	}

	return b, nil
}
