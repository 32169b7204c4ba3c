package repository

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrCityNotFound     = errors.New("city not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidSort      = errors.New("invalid sort")
)
