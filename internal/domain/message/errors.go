package message

import "errors"

var (
	// ErrMessageNotFound indicates the message doesn't exist.
	ErrMessageNotFound = errors.New("message not found")
	// ErrInvalidInput indicates invalid input for message operations.
	ErrInvalidInput = errors.New("invalid message input")
)
