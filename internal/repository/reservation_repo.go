package repository

import (
	"context"
	"time"

	"equiptrack/internal/domain"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

type reservationModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	EquipmentID    int64     `gorm:"column:equipment_id;index"`
	RequesterEmail string    `gorm:"column:requester_email;index"`
	SubmittedAt    time.Time `gorm:"column:submitted_at"`
	Priority       int       `gorm:"column:priority"`
}

func (reservationModel) TableName() string { return "reservations" }

func toDomainReservation(m reservationModel) *domain.Reservation {
	return &domain.Reservation{
		ID:             m.ID,
		EquipmentID:    m.EquipmentID,
		RequesterEmail: m.RequesterEmail,
		SubmittedAt:    m.SubmittedAt,
		Priority:       m.Priority,
	}
}

func toReservationModel(r *domain.Reservation) reservationModel {
	return reservationModel{
		ID:             r.ID,
		EquipmentID:    r.EquipmentID,
		RequesterEmail: r.RequesterEmail,
		SubmittedAt:    r.SubmittedAt,
		Priority:       r.Priority,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	m := toReservationModel(res)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*res = *toDomainReservation(m)
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var m reservationModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReservation(m), nil
}

func (r *ReservationRepository) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	var ms []reservationModel
	tx := r.db.WithContext(ctx).Order("id").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReservations(ms), nil
}

func (r *ReservationRepository) ListByEmail(ctx context.Context, email string) ([]domain.Reservation, error) {
	var ms []reservationModel
	tx := r.db.WithContext(ctx).Where("requester_email = ?", email).Order("id").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReservations(ms), nil
}

// ListQueueForEquipment returns the admission queue in winner-first order:
// priority descending, then submission time ascending, then insertion id
// as the deterministic last tie-break.
func (r *ReservationRepository) ListQueueForEquipment(ctx context.Context, equipmentID int64) ([]domain.Reservation, error) {
	var ms []reservationModel
	tx := r.db.WithContext(ctx).
		Where("equipment_id = ?", equipmentID).
		Order("priority DESC").
		Order("submitted_at ASC").
		Order("id ASC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReservations(ms), nil
}

func (r *ReservationRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).Delete(&reservationModel{}, id)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

// DeleteByEquipmentAndEmail clears every reservation the requester holds
// for this equipment unit in one statement.
func (r *ReservationRepository) DeleteByEquipmentAndEmail(ctx context.Context, equipmentID int64, email string) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("equipment_id = ? AND requester_email = ?", equipmentID, email).
		Delete(&reservationModel{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

func toDomainReservations(ms []reservationModel) []domain.Reservation {
	out := make([]domain.Reservation, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainReservation(m))
	}
	return out
}
