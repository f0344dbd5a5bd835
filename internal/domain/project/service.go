package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	repository "github.com/danielcazi/frameup-connect-creators-sub000/internal/repoerr"
	"github.com/google/uuid"
)

// Service handles project operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	ID             string
	CreatorID      string
	Title          string
	BatchQuantity  int
	BasePriceCents int64
	DeadlineAt     *time.Time
}

// Create opens a new project. A request with BatchQuantity > 1 creates a batch
// project with one pending item per deliverable.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Project, error) {
	if err := ValidateCreateInput(req); err != nil {
		return nil, err
	}

	id := req.ID
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}

	qty := req.BatchQuantity
	if qty < 1 {
		qty = 1
	}

	now := time.Now()
	proj := &Project{
		ID:             id,
		CreatorID:      req.CreatorID,
		Title:          req.Title,
		Status:         StatusOpen,
		IsBatch:        qty > 1,
		BatchQuantity:  qty,
		BasePriceCents: req.BasePriceCents,
		CreatedAt:      now,
		UpdatedAt:      now,
		DeadlineAt:     req.DeadlineAt,
	}

	if proj.IsBatch {
		proj.Items = make([]BatchItem, 0, qty)
		for i := 1; i <= qty; i++ {
			proj.Items = append(proj.Items, BatchItem{
				ID:            uuid.NewString(),
				ProjectID:     id,
				SequenceOrder: i,
				Status:        ItemPending,
				CreatedAt:     now,
				UpdatedAt:     now,
			})
		}
	}

	if err := s.repo.Create(ctx, req.CreatorID, proj); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	return proj, nil
}

// Get fetches a project by ID, including its batch items.
func (s *Service) Get(ctx context.Context, creatorID, id string) (*Project, error) {
	proj, err := s.repo.Get(ctx, creatorID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}

// List returns all projects for a creator, including batch items.
func (s *Service) List(ctx context.Context, creatorID string) ([]*Project, error) {
	return s.repo.ListByCreator(ctx, creatorID)
}

// TransitionRequest defines a project status transition.
type TransitionRequest struct {
	ProjectID string
	To        Status
	EditorID  *string
}

// Transition moves a project to a new status, stamping the workflow timestamps
// the dashboard depends on.
func (s *Service) Transition(ctx context.Context, creatorID string, req TransitionRequest) (*Project, error) {
	proj, err := s.Get(ctx, creatorID, req.ProjectID)
	if err != nil {
		return nil, err
	}

	if err := ValidateTransition(proj.Status, req.To); err != nil {
		return nil, err
	}

	now := time.Now()
	proj.Status = req.To
	proj.UpdatedAt = now
	switch req.To {
	case StatusAssigned:
		proj.EditorID = req.EditorID
	case StatusInReview:
		proj.ReviewRequestedAt = &now
	case StatusCompleted:
		proj.CompletedAt = &now
	}

	if err := s.repo.Update(ctx, creatorID, proj); err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}

	s.logger.Info("project transitioned",
		"project_id", proj.ID,
		"status", proj.Status)

	return proj, nil
}

// TransitionItem moves one batch item to a new status. Items of an archived
// project are immutable.
func (s *Service) TransitionItem(ctx context.Context, creatorID, itemID string, to ItemStatus) (*BatchItem, error) {
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("getting batch item: %w", err)
	}

	proj, err := s.Get(ctx, creatorID, item.ProjectID)
	if err != nil {
		return nil, err
	}
	if proj.Status == StatusArchived {
		return nil, ErrArchived
	}

	if err := ValidateItemTransition(item.Status, to); err != nil {
		return nil, err
	}

	item.Status = to
	item.UpdatedAt = time.Now()
	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("updating batch item: %w", err)
	}

	return item, nil
}
