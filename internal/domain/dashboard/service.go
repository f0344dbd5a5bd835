package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielcazi/frameup-connect-creators-sub000/internal/domain/message"
	"github.com/danielcazi/frameup-connect-creators-sub000/internal/domain/project"
)

// ProjectLister supplies a creator's projects, batch items included.
type ProjectLister interface {
	ListByCreator(ctx context.Context, creatorID string) ([]*project.Project, error)
}

// MessageLister supplies a recipient's unread messages, newest first.
type MessageLister interface {
	ListUnread(ctx context.Context, recipientID string) ([]*message.Message, error)
}

// View is the composed dashboard payload for one render cycle.
type View struct {
	Groups      Groups    `json:"groups"`
	Metrics     Metrics   `json:"metrics"`
	Alerts      []Alert   `json:"alerts"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Service loads a creator's records and runs the derived-state pipeline over
// them. The pipeline itself does no I/O; all fetching happens here.
type Service struct {
	projects ProjectLister
	messages MessageLister
	logger   *slog.Logger
}

// NewService creates a new dashboard service.
func NewService(projects ProjectLister, messages MessageLister, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{projects: projects, messages: messages, logger: logger}
}

// View computes the full dashboard for a creator. now is supplied by the
// caller so repeated renders over the same data are reproducible.
func (s *Service) View(ctx context.Context, creatorID string, now time.Time) (*View, error) {
	projects, err := s.projects.ListByCreator(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	messages, err := s.messages.ListUnread(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("listing unread messages: %w", err)
	}

	// A batch without items aggregates to the documented in_progress
	// fallback, but it usually means the item rows went missing upstream.
	for _, p := range projects {
		if p.IsBatch && len(p.Items) == 0 {
			s.logger.Warn("batch project has no items", "project_id", p.ID)
		}
	}

	return &View{
		Groups:      Group(projects),
		Metrics:     ComputeMetrics(projects),
		Alerts:      BuildAlerts(projects, messages, now),
		GeneratedAt: now,
	}, nil
}

// Alerts computes only the alert feed for a creator.
func (s *Service) Alerts(ctx context.Context, creatorID string, now time.Time) ([]Alert, error) {
	projects, err := s.projects.ListByCreator(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	messages, err := s.messages.ListUnread(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("listing unread messages: %w", err)
	}
	return BuildAlerts(projects, messages, now), nil
}
