// Package helpers provides seed and fixture helpers for integration tests.
package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/go-petr/pocket-ledger/internal/balancerepo"
	"github.com/go-petr/pocket-ledger/internal/domain"
	"github.com/go-petr/pocket-ledger/internal/entryrepo"
	"github.com/go-petr/pocket-ledger/pkg/dbpkg"
	"github.com/go-petr/pocket-ledger/pkg/randompkg"
)

// SeedBalance creates a balance row for a random user and returns it.
func SeedBalance(t *testing.T, db dbpkg.SQLInterface) domain.Balance {
	t.Helper()

	repo := balancerepo.NewRepoPGS(db)

	balance, err := repo.Init(context.Background(), randompkg.Username(), randompkg.MoneyAmountBetween(100, 1_000))
	if err != nil {
		t.Fatalf("repo.Init returned error: %v", err)
	}

	return balance
}

// SeedEntry appends a random entry dated within January 2024 for the user.
func SeedEntry(t *testing.T, db dbpkg.SQLInterface, username string) domain.Entry {
	t.Helper()

	repo := entryrepo.NewRepoPGS(db)

	entry, err := repo.Create(context.Background(), RandomEntryParams(username))
	if err != nil {
		t.Fatalf("repo.Create returned error: %v", err)
	}

	return entry
}

// RandomEntryParams returns valid random entry input for the user.
func RandomEntryParams(username string) domain.CreateEntryParams {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	return domain.CreateEntryParams{
		Username: username,
		Name:     randompkg.String(10),
		Amount:   randompkg.MoneyAmountBetween(1, 100),
		Kind:     randompkg.Kind(),
		Category: randompkg.Category(),
		Date:     randompkg.DateBetween(from, to).Format(domain.DateLayout),
		Note:     randompkg.String(20),
	}
}

// RandomBalance returns a balance fixture for delivery tests.
func RandomBalance(username string) domain.Balance {
	initial := randompkg.MoneyAmountBetween(100, 1_000)

	return domain.Balance{
		Username:  username,
		Initial:   initial,
		Current:   initial,
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}
}

// RandomEntry returns an entry fixture for delivery tests.
func RandomEntry(id int64, username string) domain.Entry {
	arg := RandomEntryParams(username)
	date, _ := time.Parse(domain.DateLayout, arg.Date)

	return domain.Entry{
		ID:        id,
		Username:  username,
		Name:      arg.Name,
		Amount:    arg.Amount,
		Kind:      arg.Kind,
		Category:  arg.Category,
		Date:      date,
		Note:      arg.Note,
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}
}
