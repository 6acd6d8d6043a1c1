package domain

import "errors"

var (
	ErrInvalidValue      = errors.New("invalid value")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflicting concurrent update")
)
