// Package reportservice computes grouped sums over queried ledger entries.
package reportservice

import (
	"context"
	"errors"

	"github.com/go-petr/pocket-ledger/internal/domain"

	"github.com/shopspring/decimal"
)

// ErrUnsupportedDimension indicates a grouping dimension outside the supported set.
var ErrUnsupportedDimension = errors.New("unsupported grouping dimension")

// Dimension selects the entry field that grouped sums are keyed by.
type Dimension string

// Supported grouping dimensions.
const (
	ByDate     Dimension = "date"
	ByKind     Dimension = "kind"
	ByCategory Dimension = "category"
)

// DateKind keys a summed amount for one (date, kind) combination.
type DateKind struct {
	Date string `json:"date"`
	Kind string `json:"kind"`
}

// GroupBy sums entry amounts keyed by the given dimension.
//
// It is a pure function of its input: no I/O, order-independent, and an empty
// input yields an empty mapping. Sums are exact decimal arithmetic.
func GroupBy(entries []domain.Entry, dimension Dimension) (map[string]string, error) {
	switch dimension {
	case ByDate, ByKind, ByCategory:
	default:
		return nil, ErrUnsupportedDimension
	}

	key := func(e domain.Entry) string {
		switch dimension {
		case ByDate:
			return e.Date.Format(domain.DateLayout)
		case ByKind:
			return e.Kind
		default:
			return e.Category
		}
	}

	sums := make(map[string]decimal.Decimal)

	for _, e := range entries {
		amount, err := decimal.NewFromString(e.Amount)
		if err != nil {
			return nil, domain.ErrInvalidAmount
		}

		sums[key(e)] = sums[key(e)].Add(amount)
	}

	out := make(map[string]string, len(sums))
	for k, v := range sums {
		out[k] = v.String()
	}

	return out, nil
}

// GroupByDateAndKind sums entry amounts per (date, kind) combination for
// time-series output.
func GroupByDateAndKind(entries []domain.Entry) (map[DateKind]string, error) {
	sums := make(map[DateKind]decimal.Decimal)

	for _, e := range entries {
		amount, err := decimal.NewFromString(e.Amount)
		if err != nil {
			return nil, domain.ErrInvalidAmount
		}

		k := DateKind{Date: e.Date.Format(domain.DateLayout), Kind: e.Kind}
		sums[k] = sums[k].Add(amount)
	}

	out := make(map[DateKind]string, len(sums))
	for k, v := range sums {
		out[k] = v.String()
	}

	return out, nil
}

// Ledger provides the range query interface needed by the report service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package reportservice
type Ledger interface {
	QueryRange(ctx context.Context, username, from, to string) ([]domain.Entry, error)
}

// Service feeds queried date ranges into the aggregation functions.
type Service struct {
	ledger Ledger
}

// New returns report service struct to manage report aggregation.
func New(ls Ledger) *Service {
	return &Service{ledger: ls}
}

// Report queries the user's entries in [from, to] and sums them by dimension.
func (s *Service) Report(ctx context.Context, username, from, to string, dimension Dimension) (map[string]string, error) {
	entries, err := s.ledger.QueryRange(ctx, username, from, to)
	if err != nil {
		return nil, err
	}

	return GroupBy(entries, dimension)
}

// Series queries the user's entries in [from, to] and sums them per
// (date, kind) combination.
func (s *Service) Series(ctx context.Context, username, from, to string) (map[DateKind]string, error) {
	entries, err := s.ledger.QueryRange(ctx, username, from, to)
	if err != nil {
		return nil, err
	}

	return GroupByDateAndKind(entries)
}
