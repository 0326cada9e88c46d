package repository

import "errors"

// Common repository errors
var (
	// ErrTaskNotFound is returned when a task does not exist or does not
	// belong to the requesting user. The two cases are intentionally not
	// distinguished.
	ErrTaskNotFound = errors.New("task not found")
)
