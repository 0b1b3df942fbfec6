package repository

import (
	"context"
	"time"

	"equiptrack/internal/domain"

	"gorm.io/gorm"
)

type LoginLogRepository struct {
	db *gorm.DB
}

func NewLoginLogRepository(db *gorm.DB) *LoginLogRepository {
	return &LoginLogRepository{db: db}
}

type loginLogModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	Email      string    `gorm:"column:email;index"`
	LoginTime  time.Time `gorm:"column:login_time"`
	DeviceInfo string    `gorm:"column:device_info"`
}

func (loginLogModel) TableName() string { return "login_logs" }

func (r *LoginLogRepository) Append(ctx context.Context, l *domain.LoginLog) error {
	m := loginLogModel{
		Email:      l.Email,
		LoginTime:  l.LoginTime,
		DeviceInfo: l.DeviceInfo,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	l.ID = m.ID
	return nil
}

func (r *LoginLogRepository) ListAll(ctx context.Context) ([]domain.LoginLog, error) {
	var ms []loginLogModel
	tx := r.db.WithContext(ctx).Order("id").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.LoginLog, 0, len(ms))
	for _, m := range ms {
		out = append(out, domain.LoginLog{
			ID:         m.ID,
			Email:      m.Email,
			LoginTime:  m.LoginTime,
			DeviceInfo: m.DeviceInfo,
		})
	}
	return out, nil
}
