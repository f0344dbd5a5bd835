package message

import "context"

// Repository defines storage operations for messages.
type Repository interface {
	Create(ctx context.Context, msg *Message) error
	ListUnread(ctx context.Context, recipientID string) ([]*Message, error)
	MarkRead(ctx context.Context, recipientID, id string) error
}
