// Package domain provides definitions of all entities.
package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidName indicates an empty or overlong entry name.
	ErrInvalidName = errors.New("entry name must be between 1 and 50 characters")
	// ErrInvalidAmount indicates an unparseable amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNegativeAmount indicates a zero or negative amount.
	ErrNegativeAmount = errors.New("amount must be positive")
	// ErrUnsupportedKind indicates an entry kind outside the supported set.
	ErrUnsupportedKind = errors.New("unsupported entry kind")
	// ErrUnsupportedCategory indicates an entry category outside the supported set.
	ErrUnsupportedCategory = errors.New("unsupported entry category")
	// ErrInvalidDate indicates an unparseable entry date.
	ErrInvalidDate = errors.New("invalid date, want YYYY-MM-DD")
	// ErrInvalidRange indicates a query range whose start is after its end.
	ErrInvalidRange = errors.New("range start is after range end")
	// ErrEntryNotFound indicates that the entry is not found.
	ErrEntryNotFound = errors.New("entry not found")
)

// DateLayout is the calendar date format used for entry dates.
const DateLayout = "2006-01-02"

// MaxNameLength bounds the entry name field.
const MaxNameLength = 50

// Entry holds one recorded expense or income transaction.
type Entry struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Amount    string    `json:"amount"` // always positive, sign comes from Kind
	Kind      string    `json:"kind"`
	Category  string    `json:"category"`
	Date      time.Time `json:"date"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateEntryParams is the input data to record an entry.
type CreateEntryParams struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Kind     string `json:"kind"`
	Category string `json:"category"`
	Date     string `json:"date"`
	Note     string `json:"note"`
}

// SubmitTxResult is the result of the entry submission transaction.
type SubmitTxResult struct {
	Entry   Entry   `json:"entry"`
	Balance Balance `json:"balance"`
}
