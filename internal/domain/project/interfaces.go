package project

import "context"

// Repository defines storage operations for projects and their batch items.
type Repository interface {
	Create(ctx context.Context, creatorID string, proj *Project) error
	Get(ctx context.Context, creatorID, id string) (*Project, error)
	ListByCreator(ctx context.Context, creatorID string) ([]*Project, error)
	Update(ctx context.Context, creatorID string, proj *Project) error
	GetItem(ctx context.Context, itemID string) (*BatchItem, error)
	UpdateItem(ctx context.Context, item *BatchItem) error
}
