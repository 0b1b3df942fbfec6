package payment

import "errors"

var (
	ErrInvalidCard     = errors.New("invalid card number")
	ErrInvalidFormat   = errors.New("invalid expiry format")
	ErrExpiredCard     = errors.New("card expired")
	ErrInvalidCvv      = errors.New("invalid cvv")
	ErrAlreadyEntitled = errors.New("subscription already active")
	ErrForbidden       = errors.New("operation not permitted")
)
