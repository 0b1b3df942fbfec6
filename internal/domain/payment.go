package domain

import "time"

// PaymentRecord is an append-only audit row written when a subscription
// payment is accepted. Never updated or deleted by the core.
type PaymentRecord struct {
	ID         int64     `json:"id"`
	Reference  string    `json:"reference" gorm:"uniqueIndex"`
	PayerEmail string    `json:"payer_email"`
	Amount     string    `json:"amount"`
	PaidAt     time.Time `json:"paid_at"`
}
