package repository

import (
	"context"
	"time"

	"equiptrack/internal/domain"

	"gorm.io/gorm"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

type equipmentModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name"`
	SerialNumber string    `gorm:"column:serial_number;uniqueIndex"`
	Location     string    `gorm:"column:location"`
	Responsible  string    `gorm:"column:responsible"`
	Condition    string    `gorm:"column:condition"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (equipmentModel) TableName() string { return "equipment" }

func toDomainEquipment(m equipmentModel) *domain.Equipment {
	return &domain.Equipment{
		ID:           m.ID,
		Name:         m.Name,
		SerialNumber: m.SerialNumber,
		Location:     m.Location,
		Responsible:  m.Responsible,
		Condition:    domain.ConditionStatus(m.Condition),
		CreatedAt:    m.CreatedAt,
	}
}

func toEquipmentModel(e *domain.Equipment) equipmentModel {
	return equipmentModel{
		ID:           e.ID,
		Name:         e.Name,
		SerialNumber: e.SerialNumber,
		Location:     e.Location,
		Responsible:  e.Responsible,
		Condition:    string(e.Condition),
		CreatedAt:    e.CreatedAt,
	}
}

func (r *EquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	m := toEquipmentModel(e)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*e = *toDomainEquipment(m)
	return nil
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	var m equipmentModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainEquipment(m), nil
}

func (r *EquipmentRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&equipmentModel{}).Where("id = ?", id).Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *EquipmentRepository) ListAll(ctx context.Context) ([]domain.Equipment, error) {
	var ms []equipmentModel
	tx := r.db.WithContext(ctx).Order("id").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Equipment, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainEquipment(m))
	}
	return out, nil
}

func (r *EquipmentRepository) DeleteBySerial(ctx context.Context, serial string) (int64, error) {
	tx := r.db.WithContext(ctx).Where("serial_number = ?", serial).Delete(&equipmentModel{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

func (r *EquipmentRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&equipmentModel{}).Count(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}
