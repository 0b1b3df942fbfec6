package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"equiptrack/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service contains all business logic for authentication
type Service struct {
	users     UserRepository
	loginLogs LoginLogAppender
	jwt       tokenIssuer
}

type LoginResult struct {
	User  *domain.User
	Token string
}

func NewService(users UserRepository, loginLogs LoginLogAppender, jwt tokenIssuer) *Service {
	return &Service{
		users:     users,
		loginLogs: loginLogs,
		jwt:       jwt,
	}
}

// Register creates a student or teacher account. Admin accounts are
// seeded at initialization through the same user path, never registered.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	role := domain.UserRole(strings.ToLower(strings.TrimSpace(req.Role)))
	if role != domain.RoleStudent && role != domain.RoleTeacher {
		return nil, ErrValidation
	}
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:              email,
		PasswordHash:       string(hash),
		Role:               role,
		SubscriptionActive: false,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// Login verifies the credentials, appends a login audit row and issues a
// JWT carrying the email and role claims.
func (s *Service) Login(ctx context.Context, req LoginRequest, deviceInfo string) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if deviceInfo == "" {
		deviceInfo = "Unknown Device"
	}
	if err := s.loginLogs.Append(ctx, &domain.LoginLog{
		Email:      user.Email,
		LoginTime:  time.Now(),
		DeviceInfo: deviceInfo,
	}); err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateToken(user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, Token: token}, nil
}
