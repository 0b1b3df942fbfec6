package auth

import (
	"context"

	"equiptrack/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type LoginLogAppender interface {
	Append(ctx context.Context, l *domain.LoginLog) error
}

type tokenIssuer interface {
	GenerateToken(email, role string) (string, error)
}
