package reservation

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrEquipmentNotFound = errors.New("equipment not found")
	ErrNotFound          = errors.New("reservation not found")
	ErrForbidden         = errors.New("operation not permitted")
)
