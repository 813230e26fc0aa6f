package dao

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no row
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateAPIKey is returned when a tenant insert collides on a unique key
	ErrDuplicateAPIKey = errors.New("duplicate api key")
)
