package models

// Product is a catalog entry. The catalog is read-only from this
// service's perspective; Type is the category matched against a tag's
// preference.
type Product struct {
	ProductID  string `db:"product_id"`
	Name       string `db:"name"`
	Type       string `db:"type"`
	PriceCents int64  `db:"price_cents"`
}

// ProductCandidate pairs a product with the dispensing unit (servo)
// that would pour it. Candidates are supplied per-request by a device
// and never persisted; slice order is the caller's stated priority and
// is the tie-break for selection.
type ProductCandidate struct {
	ProductID string `json:"product_id"`
	ServoID   string `json:"servo_id"`
}
