package payment

import (
	"context"

	"equiptrack/internal/domain"
)

// UserReader reads the payer's current entitlement
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// PaymentStore commits the entitlement flip and the audit row atomically
type PaymentStore interface {
	RecordEntitlement(ctx context.Context, rec *domain.PaymentRecord) error
}
