package usecase

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateISBN = errors.New("book already exists")
	ErrInvalidValue  = errors.New("value must be an integer from 1 to 5")
)
