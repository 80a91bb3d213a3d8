package models

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a customer account holding a cash balance.
// Balances are stored in the smallest currency unit. Only a committed
// purchase mutates a balance, and a balance never goes below zero.
type Account struct {
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CustomerID   string    `db:"customer_id"`
	BalanceCents int64     `db:"balance_cents"`
	ID           uuid.UUID `db:"id"`
}
