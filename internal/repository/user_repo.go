package repository

import (
	"context"
	"strings"
	"time"

	"equiptrack/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID                 int64     `gorm:"column:id;primaryKey"`
	Email              string    `gorm:"column:email;uniqueIndex"`
	PasswordHash       string    `gorm:"column:password_hash"`
	Role               string    `gorm:"column:role"`
	SubscriptionActive bool      `gorm:"column:subscription_active"`
	CreatedAt          time.Time `gorm:"column:created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	return &domain.User{
		ID:                 m.ID,
		Email:              m.Email,
		PasswordHash:       m.PasswordHash,
		Role:               domain.UserRole(m.Role),
		SubscriptionActive: m.SubscriptionActive,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	return userModel{
		ID:                 u.ID,
		Email:              strings.TrimSpace(strings.ToLower(u.Email)),
		PasswordHash:       u.PasswordHash,
		Role:               string(u.Role),
		SubscriptionActive: u.SubscriptionActive,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&userModel{}).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *UserRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	var ms []userModel
	tx := r.db.WithContext(ctx).Order("id").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.User, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainUser(m))
	}
	return out, nil
}

// DeleteCascade removes the user together with everything keyed by the
// email: login logs, reservations and payment records. All statements
// commit together or not at all. Returns false when no user row matched.
func (r *UserRepository) DeleteCascade(ctx context.Context, email string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var deleted bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", email).Delete(&loginLogModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("requester_email = ?", email).Delete(&reservationModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("payer_email = ?", email).Delete(&paymentRecordModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("email = ?", email).Delete(&userModel{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
