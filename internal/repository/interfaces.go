package repository

import (
	"context"

	"github.com/danielcazi/frameup-connect-creators-sub000/internal/domain/message"
	"github.com/danielcazi/frameup-connect-creators-sub000/internal/domain/project"
)

// ProjectRepository manages project and batch item persistence
type ProjectRepository interface {
	Create(ctx context.Context, creatorID string, proj *project.Project) error
	Get(ctx context.Context, creatorID, id string) (*project.Project, error)
	ListByCreator(ctx context.Context, creatorID string) ([]*project.Project, error)
	Update(ctx context.Context, creatorID string, proj *project.Project) error
	GetItem(ctx context.Context, itemID string) (*project.BatchItem, error)
	UpdateItem(ctx context.Context, item *project.BatchItem) error
}

// MessageRepository manages message persistence
type MessageRepository interface {
	Create(ctx context.Context, msg *message.Message) error
	ListUnread(ctx context.Context, recipientID string) ([]*message.Message, error)
	MarkRead(ctx context.Context, recipientID, id string) error
}
