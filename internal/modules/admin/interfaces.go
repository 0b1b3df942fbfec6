package admin

import (
	"context"

	"equiptrack/internal/domain"
)

type UserRepository interface {
	ListAll(ctx context.Context) ([]domain.User, error)
	DeleteCascade(ctx context.Context, email string) (bool, error)
}

type LoginLogReader interface {
	ListAll(ctx context.Context) ([]domain.LoginLog, error)
}

type PaymentReader interface {
	ListAll(ctx context.Context) ([]domain.PaymentRecord, error)
}
