package entity

import "errors"

var (
	// ErrNotFound is returned when an id does not resolve to a stored row.
	ErrNotFound = errors.New("entity not found")
	// ErrInvalidReference is returned when a write points a foreign key
	// at an entity that does not exist.
	ErrInvalidReference = errors.New("referenced entity does not exist")
)
