package project

import "errors"

var (
	// ErrProjectNotFound indicates the project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrItemNotFound indicates the batch item doesn't exist.
	ErrItemNotFound = errors.New("batch item not found")
	// ErrInvalidInput indicates invalid input for project operations.
	ErrInvalidInput = errors.New("invalid project input")
	// ErrInvalidTransition indicates an invalid workflow transition.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrArchived indicates the project is archived and immutable.
	ErrArchived = errors.New("project is archived")
)
