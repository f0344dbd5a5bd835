package message

import "time"

// Message is one chat message tied to a project. The dashboard only cares
// about unread messages and a short excerpt of the body.
type Message struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	SenderID    string    `json:"sender_id"`
	SenderName  string    `json:"sender_name"`
	RecipientID string    `json:"recipient_id"`
	Body        string    `json:"body"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}
