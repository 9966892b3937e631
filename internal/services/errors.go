package services

import (
	"errors"

	"estatehub/internal/repositories/interfaces"
)

var (
	ErrNotFound  = interfaces.ErrNotFound
	ErrDuplicate = errors.New("duplicate entry")
)
