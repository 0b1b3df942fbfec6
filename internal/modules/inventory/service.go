package inventory

import (
	"context"
	"errors"
	"strings"

	"equiptrack/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

type Service struct {
	equipment EquipmentRepository
}

func NewService(equipment EquipmentRepository) *Service {
	return &Service{equipment: equipment}
}

func (s *Service) Create(ctx context.Context, req CreateEquipmentRequest) (*domain.Equipment, error) {
	condition := domain.ConditionStatus(strings.ToLower(strings.TrimSpace(req.Condition)))
	if !condition.Valid() {
		return nil, ErrValidation
	}

	e := &domain.Equipment{
		Name:         strings.TrimSpace(req.Name),
		SerialNumber: strings.TrimSpace(req.SerialNumber),
		Location:     strings.TrimSpace(req.Location),
		Responsible:  strings.TrimSpace(req.Responsible),
		Condition:    condition,
	}
	if e.Name == "" || e.SerialNumber == "" {
		return nil, ErrValidation
	}

	if err := s.equipment.Create(ctx, e); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSerialExists
		}
		return nil, err
	}
	return e, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Equipment, error) {
	return s.equipment.ListAll(ctx)
}

func (s *Service) DeleteBySerial(ctx context.Context, serial string) error {
	serial = strings.TrimSpace(serial)
	if serial == "" {
		return ErrValidation
	}

	deleted, err := s.equipment.DeleteBySerial(ctx, serial)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// sqlite has no typed driver error here
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
