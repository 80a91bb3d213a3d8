package models

import (
	"time"

	"github.com/google/uuid"
)

// Tag is a physical token (RFID fob) bound to exactly one account.
// TagNumber is globally unique. Preference, when set, names a product
// type used to bias selection among a device's candidate set.
type Tag struct {
	CreatedAt  time.Time `db:"created_at"`
	Preference *string   `db:"preference"`
	TagNumber  string    `db:"tag_number"`
	Name       string    `db:"name"`
	AccountID  uuid.UUID `db:"account_id"`
}
