// Package entryrepo manages repository layer of ledger entries.
package entryrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-petr/pocket-ledger/internal/domain"
	"github.com/go-petr/pocket-ledger/pkg/dbpkg"
	"github.com/go-petr/pocket-ledger/pkg/errorspkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates entry repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns entry RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const createQuery = `
INSERT INTO
    entries (username, name, amount, kind, category, date, note)
VALUES
    ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, username, name, amount, kind, category, date, note, created_at
`

// Create appends the entry to the user's ledger partition and returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateEntryParams) (domain.Entry, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.Username,
		arg.Name,
		arg.Amount,
		arg.Kind,
		arg.Category,
		arg.Date,
		arg.Note,
	)

	var e domain.Entry

	err := row.Scan(
		&e.ID,
		&e.Username,
		&e.Name,
		&e.Amount,
		&e.Kind,
		&e.Category,
		&e.Date,
		&e.Note,
		&e.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "entries_username_fkey":
				return e, domain.ErrBalanceNotFound
			case "entries_amount_check":
				return e, domain.ErrNegativeAmount
			case "entries_name_check":
				return e, domain.ErrInvalidName
			case "entries_kind_check":
				return e, domain.ErrUnsupportedKind
			case "entries_category_check":
				return e, domain.ErrUnsupportedCategory
			}
		}

		return e, errorspkg.ErrInternal
	}

	return e, nil
}

const getQuery = `
SELECT id, username, name, amount, kind, category, date, note, created_at
FROM entries
WHERE id = $1 LIMIT 1
`

// Get returns the entry with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Entry, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var e domain.Entry

	err := row.Scan(
		&e.ID,
		&e.Username,
		&e.Name,
		&e.Amount,
		&e.Kind,
		&e.Category,
		&e.Date,
		&e.Note,
		&e.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return e, domain.ErrEntryNotFound
		}

		return e, errorspkg.ErrInternal
	}

	return e, nil
}

const listRangeQuery = `
SELECT id, username, name, amount, kind, category, date, note, created_at
FROM entries
WHERE username = $1 AND date BETWEEN $2 AND $3
ORDER BY date, id
`

// ListRange returns the user's entries with date in [from, to] inclusive,
// ordered by date then id ascending.
func (r *RepoPGS) ListRange(ctx context.Context, username string, from, to time.Time) ([]domain.Entry, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listRangeQuery, username, from, to)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	return scanEntries(ctx, rows)
}

const listLatestQuery = `
SELECT id, username, name, amount, kind, category, date, note, created_at
FROM entries
WHERE username = $1
ORDER BY id DESC
LIMIT $2
`

// ListLatest returns the limit most recently appended entries for the user,
// most recent first.
func (r *RepoPGS) ListLatest(ctx context.Context, username string, limit int32) ([]domain.Entry, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listLatestQuery, username, limit)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	return scanEntries(ctx, rows)
}

func scanEntries(ctx context.Context, rows *sql.Rows) ([]domain.Entry, error) {
	l := zerolog.Ctx(ctx)

	items := []domain.Entry{}

	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(
			&e.ID,
			&e.Username,
			&e.Name,
			&e.Amount,
			&e.Kind,
			&e.Category,
			&e.Date,
			&e.Note,
			&e.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, e)
	}

	if err := rows.Close(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
