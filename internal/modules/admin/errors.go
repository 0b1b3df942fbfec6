package admin

import "errors"

var (
	ErrNotFound   = errors.New("user not found")
	ErrSelfDelete = errors.New("cannot delete own account")
)
