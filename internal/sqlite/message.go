package sqlite

import (
	"context"
	"fmt"

	"github.com/danielcazi/frameup-connect-creators-sub000/internal/domain/message"
	"github.com/danielcazi/frameup-connect-creators-sub000/internal/repository"
)

// MessageRepository implements repository.MessageRepository for SQLite
type MessageRepository struct {
	db *DB
}

var _ repository.MessageRepository = (*MessageRepository)(nil)

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create inserts a message
func (r *MessageRepository) Create(ctx context.Context, msg *message.Message) error {
	query := `
		INSERT INTO messages (id, project_id, sender_id, sender_name, recipient_id, body, read, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		msg.ID,
		msg.ProjectID,
		msg.SenderID,
		msg.SenderName,
		msg.RecipientID,
		msg.Body,
		msg.Read,
		msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// ListUnread returns a recipient's unread messages, newest first
func (r *MessageRepository) ListUnread(ctx context.Context, recipientID string) ([]*message.Message, error) {
	query := `
		SELECT id, project_id, sender_id, sender_name, recipient_id, body, read, created_at
		FROM messages
		WHERE recipient_id = ? AND read = 0
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, recipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list unread messages: %w", err)
	}
	defer rows.Close()

	var messages []*message.Message
	for rows.Next() {
		var msg message.Message
		if err := rows.Scan(
			&msg.ID,
			&msg.ProjectID,
			&msg.SenderID,
			&msg.SenderName,
			&msg.RecipientID,
			&msg.Body,
			&msg.Read,
			&msg.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, &msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}
	return messages, nil
}

// MarkRead marks one message as read
func (r *MessageRepository) MarkRead(ctx context.Context, recipientID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE messages SET read = 1 WHERE id = ? AND recipient_id = ?`,
		id, recipientID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark message read: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check message update: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
