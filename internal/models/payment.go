package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment is an append-only ledger entry recording one committed
// purchase. Entries are never mutated or deleted; Date doubles as the
// sort key for history reads (newest first).
type Payment struct {
	Date        time.Time `db:"date"`
	ProductID   string    `db:"product_id"`
	ProductName string    `db:"product_name"`
	Type        string    `db:"type"`
	PriceCents  int64     `db:"price_cents"`
	AccountID   uuid.UUID `db:"account_id"`
}

// IdempotencyKey tracks processed device requests so that network
// retries replay the original response instead of charging twice.
type IdempotencyKey struct {
	CreatedAt      time.Time `db:"created_at"`
	Key            string    `db:"key"`
	RequestPath    string    `db:"request_path"`
	ResponseBody   string    `db:"response_body"`
	ResponseStatus int       `db:"response_status"`
}
