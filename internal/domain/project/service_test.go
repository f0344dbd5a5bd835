package project_test

import (
	"context"
	"testing"
	"time"

	"github.com/danielcazi/frameup-connect-creators-sub000/internal/domain/project"
	repository "github.com/danielcazi/frameup-connect-creators-sub000/internal/repoerr"
	"github.com/danielcazi/frameup-connect-creators-sub000/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Create", ctx, "creator1", mock.Anything).Return(nil)

	svc := project.NewService(repo, nil)
	proj, err := svc.Create(ctx, project.CreateRequest{
		CreatorID: "creator1",
		Title:     "Channel trailer",
	})
	require.NoError(t, err)
	require.NotEmpty(t, proj.ID)
	require.Equal(t, project.StatusOpen, proj.Status)
	require.False(t, proj.IsBatch)
	require.Equal(t, 1, proj.BatchQuantity)
	require.Empty(t, proj.Items)
}

func TestProjectService_CreateBatch(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Create", ctx, "creator1", mock.Anything).Return(nil)

	svc := project.NewService(repo, nil)
	proj, err := svc.Create(ctx, project.CreateRequest{
		CreatorID:     "creator1",
		Title:         "10 shorts",
		BatchQuantity: 10,
	})
	require.NoError(t, err)
	require.True(t, proj.IsBatch)
	require.Len(t, proj.Items, 10)
	for i, item := range proj.Items {
		require.Equal(t, i+1, item.SequenceOrder)
		require.Equal(t, project.ItemPending, item.Status)
		require.Equal(t, proj.ID, item.ProjectID)
	}
}

func TestProjectService_CreateValidation(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	svc := project.NewService(repo, nil)

	_, err := svc.Create(ctx, project.CreateRequest{CreatorID: "creator1"})
	require.ErrorIs(t, err, project.ErrInvalidInput)

	_, err = svc.Create(ctx, project.CreateRequest{Title: "No creator"})
	require.ErrorIs(t, err, project.ErrInvalidInput)
}

func TestProjectService_GetNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Get", ctx, "creator1", "missing").Return((*project.Project)(nil), repository.ErrNotFound)

	svc := project.NewService(repo, nil)
	_, err := svc.Get(ctx, "creator1", "missing")
	require.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestProjectService_TransitionStampsReviewTime(t *testing.T) {
	ctx := context.Background()

	stored := &project.Project{
		ID:        "p1",
		CreatorID: "creator1",
		Title:     "Edit",
		Status:    project.StatusInProgress,
	}
	repo := &mocks.ProjectRepository{}
	repo.On("Get", ctx, "creator1", "p1").Return(stored, nil)
	repo.On("Update", ctx, "creator1", mock.Anything).Return(nil)

	svc := project.NewService(repo, nil)
	proj, err := svc.Transition(ctx, "creator1", project.TransitionRequest{
		ProjectID: "p1",
		To:        project.StatusInReview,
	})
	require.NoError(t, err)
	require.Equal(t, project.StatusInReview, proj.Status)
	require.NotNil(t, proj.ReviewRequestedAt)
	require.WithinDuration(t, time.Now(), *proj.ReviewRequestedAt, time.Minute)
}

func TestProjectService_TransitionStampsCompletedTime(t *testing.T) {
	ctx := context.Background()

	stored := &project.Project{
		ID:        "p1",
		CreatorID: "creator1",
		Status:    project.StatusInReview,
	}
	repo := &mocks.ProjectRepository{}
	repo.On("Get", ctx, "creator1", "p1").Return(stored, nil)
	repo.On("Update", ctx, "creator1", mock.Anything).Return(nil)

	svc := project.NewService(repo, nil)
	proj, err := svc.Transition(ctx, "creator1", project.TransitionRequest{
		ProjectID: "p1",
		To:        project.StatusCompleted,
	})
	require.NoError(t, err)
	require.NotNil(t, proj.CompletedAt)
}

func TestProjectService_TransitionInvalid(t *testing.T) {
	ctx := context.Background()

	stored := &project.Project{ID: "p1", CreatorID: "creator1", Status: project.StatusOpen}
	repo := &mocks.ProjectRepository{}
	repo.On("Get", ctx, "creator1", "p1").Return(stored, nil)

	svc := project.NewService(repo, nil)
	_, err := svc.Transition(ctx, "creator1", project.TransitionRequest{
		ProjectID: "p1",
		To:        project.StatusCompleted,
	})
	require.ErrorIs(t, err, project.ErrInvalidTransition)
}

func TestProjectService_TransitionItem(t *testing.T) {
	ctx := context.Background()

	item := &project.BatchItem{ID: "i1", ProjectID: "p1", SequenceOrder: 1, Status: project.ItemDelivered}
	stored := &project.Project{ID: "p1", CreatorID: "creator1", Status: project.StatusInProgress, IsBatch: true}

	repo := &mocks.ProjectRepository{}
	repo.On("GetItem", ctx, "i1").Return(item, nil)
	repo.On("Get", ctx, "creator1", "p1").Return(stored, nil)
	repo.On("UpdateItem", ctx, mock.Anything).Return(nil)

	svc := project.NewService(repo, nil)
	updated, err := svc.TransitionItem(ctx, "creator1", "i1", project.ItemApproved)
	require.NoError(t, err)
	require.Equal(t, project.ItemApproved, updated.Status)
}

func TestProjectService_TransitionItemArchivedProject(t *testing.T) {
	ctx := context.Background()

	item := &project.BatchItem{ID: "i1", ProjectID: "p1", Status: project.ItemDelivered}
	stored := &project.Project{ID: "p1", CreatorID: "creator1", Status: project.StatusArchived, IsBatch: true}

	repo := &mocks.ProjectRepository{}
	repo.On("GetItem", ctx, "i1").Return(item, nil)
	repo.On("Get", ctx, "creator1", "p1").Return(stored, nil)

	svc := project.NewService(repo, nil)
	_, err := svc.TransitionItem(ctx, "creator1", "i1", project.ItemApproved)
	require.ErrorIs(t, err, project.ErrArchived)
}

func TestProjectService_TransitionItemInvalid(t *testing.T) {
	ctx := context.Background()

	item := &project.BatchItem{ID: "i1", ProjectID: "p1", Status: project.ItemPending}
	stored := &project.Project{ID: "p1", CreatorID: "creator1", Status: project.StatusInProgress, IsBatch: true}

	repo := &mocks.ProjectRepository{}
	repo.On("GetItem", ctx, "i1").Return(item, nil)
	repo.On("Get", ctx, "creator1", "p1").Return(stored, nil)

	svc := project.NewService(repo, nil)
	_, err := svc.TransitionItem(ctx, "creator1", "i1", project.ItemApproved)
	require.ErrorIs(t, err, project.ErrInvalidTransition)
}
