package repository

import (
	"context"
	"strings"
	"time"

	"equiptrack/internal/domain"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

type paymentRecordModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	Reference  string    `gorm:"column:reference;uniqueIndex"`
	PayerEmail string    `gorm:"column:payer_email;index"`
	Amount     string    `gorm:"column:amount"`
	PaidAt     time.Time `gorm:"column:paid_at"`
}

func (paymentRecordModel) TableName() string { return "payment_records" }

func toDomainPaymentRecord(m paymentRecordModel) *domain.PaymentRecord {
	return &domain.PaymentRecord{
		ID:         m.ID,
		Reference:  m.Reference,
		PayerEmail: m.PayerEmail,
		Amount:     m.Amount,
		PaidAt:     m.PaidAt,
	}
}

// RecordEntitlement flips the payer's subscription flag and appends the
// audit row in one transaction. Either both commit or neither does.
func (r *PaymentRepository) RecordEntitlement(ctx context.Context, rec *domain.PaymentRecord) error {
	email := strings.ToLower(strings.TrimSpace(rec.PayerEmail))

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&userModel{}).
			Where("email = ?", email).
			Update("subscription_active", true).Error; err != nil {
			return err
		}

		m := paymentRecordModel{
			Reference:  rec.Reference,
			PayerEmail: email,
			Amount:     rec.Amount,
			PaidAt:     rec.PaidAt,
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		*rec = *toDomainPaymentRecord(m)
		return nil
	})
}

func (r *PaymentRepository) ListAll(ctx context.Context) ([]domain.PaymentRecord, error) {
	var ms []paymentRecordModel
	tx := r.db.WithContext(ctx).Order("id").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.PaymentRecord, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainPaymentRecord(m))
	}
	return out, nil
}
