package inventory

import (
	"context"

	"equiptrack/internal/domain"
)

type EquipmentRepository interface {
	Create(ctx context.Context, e *domain.Equipment) error
	ListAll(ctx context.Context) ([]domain.Equipment, error)
	DeleteBySerial(ctx context.Context, serial string) (int64, error)
}
