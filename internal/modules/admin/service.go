package admin

import (
	"context"
	"strings"

	"equiptrack/internal/database"
	"equiptrack/internal/domain"
)

type Service struct {
	users    UserRepository
	logs     LoginLogReader
	payments PaymentReader
	guard    *database.Guard
}

func NewService(users UserRepository, logs LoginLogReader, payments PaymentReader, guard *database.Guard) *Service {
	return &Service{
		users:    users,
		logs:     logs,
		payments: payments,
		guard:    guard,
	}
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func (s *Service) ListLoginLogs(ctx context.Context) ([]domain.LoginLog, error) {
	return s.logs.ListAll(ctx)
}

func (s *Service) ListPayments(ctx context.Context) ([]domain.PaymentRecord, error) {
	return s.payments.ListAll(ctx)
}

// DeleteUser removes the account and everything keyed by its email.
// Admins cannot remove themselves.
func (s *Service) DeleteUser(ctx context.Context, email, actorEmail string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == strings.ToLower(strings.TrimSpace(actorEmail)) {
		return ErrSelfDelete
	}

	return s.guard.Do(func() error {
		deleted, err := s.users.DeleteCascade(ctx, email)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrNotFound
		}
		return nil
	})
}
