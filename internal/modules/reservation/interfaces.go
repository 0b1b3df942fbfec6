package reservation

import (
	"context"

	"equiptrack/internal/domain"
)

// ReservationRepository defines the store operations the scheduler needs
type ReservationRepository interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListAll(ctx context.Context) ([]domain.Reservation, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Reservation, error)
	ListQueueForEquipment(ctx context.Context, equipmentID int64) ([]domain.Reservation, error)
	DeleteByID(ctx context.Context, id int64) (int64, error)
	DeleteByEquipmentAndEmail(ctx context.Context, equipmentID int64, email string) (int64, error)
}

// EquipmentReader checks that a reservation references a real equipment unit
type EquipmentReader interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// UserReader supplies the requester's entitlement at creation time
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
