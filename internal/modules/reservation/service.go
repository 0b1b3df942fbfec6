package reservation

import (
	"context"
	"errors"
	"strings"
	"time"

	"equiptrack/internal/database"
	"equiptrack/internal/domain"

	"gorm.io/gorm"
)

// Service is the reservation scheduler: it stamps priorities on new
// reservations and admits one winner per processing cycle. Every
// read-modify-write sequence runs under the shared store guard so that
// concurrent requests always decide from a consistent snapshot.
type Service struct {
	reservations ReservationRepository
	equipment    EquipmentReader
	guard        *database.Guard
}

func NewService(reservations ReservationRepository, equipment EquipmentReader, guard *database.Guard) *Service {
	return &Service{
		reservations: reservations,
		equipment:    equipment,
		guard:        guard,
	}
}

// Create persists a reservation for the given equipment unit. The priority
// is computed here from the authenticated role and entitlement, never taken
// from the request, so a client cannot spoof its own class.
func (s *Service) Create(ctx context.Context, equipmentID int64, requesterEmail string, requesterRole domain.UserRole, requesterEntitled bool) (*domain.Reservation, error) {
	requesterEmail = strings.TrimSpace(requesterEmail)
	if equipmentID <= 0 || requesterEmail == "" || requesterRole == "" {
		return nil, ErrValidation
	}

	var out *domain.Reservation
	err := s.guard.Do(func() error {
		exists, err := s.equipment.ExistsByID(ctx, equipmentID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrEquipmentNotFound
		}

		r := &domain.Reservation{
			EquipmentID:    equipmentID,
			RequesterEmail: requesterEmail,
			SubmittedAt:    time.Now(),
			Priority:       AssignPriority(requesterRole, requesterEntitled),
		}
		if err := s.reservations.Create(ctx, r); err != nil {
			return err
		}
		out = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Cancel removes a reservation. Admins may cancel anything; everyone else
// only their own. The delete is permanent.
func (s *Service) Cancel(ctx context.Context, id int64, requesterEmail string, requesterRole domain.UserRole) error {
	return s.guard.Do(func() error {
		r, err := s.reservations.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if requesterRole != domain.RoleAdmin && r.RequesterEmail != requesterEmail {
			return ErrForbidden
		}

		deleted, err := s.reservations.DeleteByID(ctx, id)
		if err != nil {
			return err
		}
		if deleted == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// List returns all reservations for admins and the caller's own rows for
// anyone else. Display order follows storage order.
func (s *Service) List(ctx context.Context, requesterEmail string, requesterRole domain.UserRole) ([]domain.Reservation, error) {
	if requesterRole == domain.RoleAdmin {
		return s.reservations.ListAll(ctx)
	}
	return s.reservations.ListByEmail(ctx, requesterEmail)
}

// ProcessQueue runs one admission cycle for a single equipment unit. The
// queue is ordered by priority descending, then submission time ascending,
// then insertion id; the head is admitted and the winner's entire backlog
// for this unit is cleared in one statement. Everyone else stays queued.
// An empty queue is a valid terminal outcome, not an error.
func (s *Service) ProcessQueue(ctx context.Context, equipmentID int64) (*AdmissionResult, error) {
	var out *AdmissionResult
	err := s.guard.Do(func() error {
		exists, err := s.equipment.ExistsByID(ctx, equipmentID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrEquipmentNotFound
		}

		queue, err := s.reservations.ListQueueForEquipment(ctx, equipmentID)
		if err != nil {
			return err
		}
		if len(queue) == 0 {
			out = &AdmissionResult{EquipmentID: equipmentID}
			return nil
		}

		winner := queue[0]
		cleared, err := s.reservations.DeleteByEquipmentAndEmail(ctx, equipmentID, winner.RequesterEmail)
		if err != nil {
			return err
		}

		out = &AdmissionResult{
			EquipmentID: equipmentID,
			Admitted:    winner.RequesterEmail,
			Cleared:     cleared,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
