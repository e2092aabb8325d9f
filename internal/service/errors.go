package service

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrNotFound             = errors.New("not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrDrinkNotFound        = errors.New("drink not found")
	ErrSupplementNotFound   = errors.New("supplement not found")
	ErrCreatedDrinkNotFound = errors.New("created drink not found")
	ErrPersistence          = errors.New("persistence failure")
	ErrForbidden            = errors.New("forbidden")
	ErrSearchUnavailable    = errors.New("search is not configured")
)
