package project

import "time"

// Status represents the workflow state of a project.
type Status string

const (
	StatusDraft             Status = "draft"
	StatusOpen              Status = "open"
	StatusAssigned          Status = "assigned"
	StatusInProgress        Status = "in_progress"
	StatusInReview          Status = "in_review"
	StatusRevisionRequested Status = "revision_requested"
	StatusCompleted         Status = "completed"
	StatusCancelled         Status = "cancelled"
	StatusArchived          Status = "archived"
)

// ItemStatus represents the state of a single deliverable inside a batch.
type ItemStatus string

const (
	ItemPending           ItemStatus = "pending"
	ItemInProgress        ItemStatus = "in_progress"
	ItemDelivered         ItemStatus = "delivered"
	ItemRevisionRequested ItemStatus = "revision_requested"
	ItemApproved          ItemStatus = "approved"
)

// Project is a unit of work between one creator and, once assigned, one editor.
// A batch project represents several deliverable videos under one order; its
// display status is derived from the items, not from the Status field.
type Project struct {
	ID                string      `json:"id"`
	CreatorID         string      `json:"creator_id"`
	EditorID          *string     `json:"editor_id,omitempty"`
	Title             string      `json:"title"`
	Status            Status      `json:"status"`
	IsBatch           bool        `json:"is_batch"`
	BatchQuantity     int         `json:"batch_quantity"`
	Items             []BatchItem `json:"items,omitempty"`
	BasePriceCents    int64       `json:"base_price_cents"`
	UnreadMessages    int         `json:"unread_messages"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
	DeadlineAt        *time.Time  `json:"deadline_at,omitempty"`
	ReviewRequestedAt *time.Time  `json:"review_requested_at,omitempty"`
	CompletedAt       *time.Time  `json:"completed_at,omitempty"`
}

// BatchItem is one deliverable unit inside a batch project. SequenceOrder is
// unique within the project and defines the reviewer's order.
type BatchItem struct {
	ID            string     `json:"id"`
	ProjectID     string     `json:"project_id"`
	SequenceOrder int        `json:"sequence_order"`
	Status        ItemStatus `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
