package domain

import (
	"errors"
	"time"
)

var (
	// ErrBalanceNotFound indicates that no balance has been initialized for the user.
	ErrBalanceNotFound = errors.New("balance not initialized")
	// ErrBalanceAlreadyInitialized indicates a repeated initialization attempt.
	ErrBalanceAlreadyInitialized = errors.New("balance already initialized")
	// ErrInvalidUsername indicates an empty or overlong username.
	ErrInvalidUsername = errors.New("username must be between 1 and 50 characters")
)

// Balance holds the derived net funds for one user namespace.
//
// Current must equal Initial plus the signed sum of all entries for the user.
type Balance struct {
	Username  string    `json:"username"`
	Initial   string    `json:"initial"`
	Current   string    `json:"current"`
	CreatedAt time.Time `json:"created_at"`
}
