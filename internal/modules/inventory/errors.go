package inventory

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrSerialExists = errors.New("serial number already exists")
	ErrNotFound     = errors.New("equipment not found")
)
