package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("token does not belong to the requested user")
)

// NotFoundError reports a missing entity by id. Handlers answer it with 404.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found.", e.Entity, e.ID)
}

func notFound(entity string, id uint) error {
	return &NotFoundError{Entity: entity, ID: id}
}
