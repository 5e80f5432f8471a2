package repository

import "errors"

var (
	// ErrNotFound is returned when a requested movie is not found.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when a movie with the same id is already stored.
	ErrAlreadyExists = errors.New("already exists")
)
