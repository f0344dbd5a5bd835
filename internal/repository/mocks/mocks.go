package mocks

import (
	"context"

	"github.com/danielcazi/frameup-connect-creators-sub000/internal/domain/message"
	"github.com/danielcazi/frameup-connect-creators-sub000/internal/domain/project"
	"github.com/stretchr/testify/mock"
)

// ProjectRepository is a mock for repository.ProjectRepository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Create(ctx context.Context, creatorID string, proj *project.Project) error {
	args := m.Called(ctx, creatorID, proj)
	return args.Error(0)
}

func (m *ProjectRepository) Get(ctx context.Context, creatorID, id string) (*project.Project, error) {
	args := m.Called(ctx, creatorID, id)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) ListByCreator(ctx context.Context, creatorID string) ([]*project.Project, error) {
	args := m.Called(ctx, creatorID)
	if list, ok := args.Get(0).([]*project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Update(ctx context.Context, creatorID string, proj *project.Project) error {
	args := m.Called(ctx, creatorID, proj)
	return args.Error(0)
}

func (m *ProjectRepository) GetItem(ctx context.Context, itemID string) (*project.BatchItem, error) {
	args := m.Called(ctx, itemID)
	if item, ok := args.Get(0).(*project.BatchItem); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) UpdateItem(ctx context.Context, item *project.BatchItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

// MessageRepository is a mock for repository.MessageRepository.
type MessageRepository struct {
	mock.Mock
}

func (m *MessageRepository) Create(ctx context.Context, msg *message.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MessageRepository) ListUnread(ctx context.Context, recipientID string) ([]*message.Message, error) {
	args := m.Called(ctx, recipientID)
	if list, ok := args.Get(0).([]*message.Message); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MessageRepository) MarkRead(ctx context.Context, recipientID, id string) error {
	args := m.Called(ctx, recipientID, id)
	return args.Error(0)
}
