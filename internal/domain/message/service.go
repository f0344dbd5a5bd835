package message

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

// Service handles message operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new message service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// SendRequest defines message creation inputs.
type SendRequest struct {
	ProjectID   string
	SenderID    string
	SenderName  string
	RecipientID string
	Body        string
}

// Send records a new unread message on a project.
func (s *Service) Send(ctx context.Context, req SendRequest) (*Message, error) {
	if strings.TrimSpace(req.ProjectID) == "" ||
		strings.TrimSpace(req.SenderID) == "" ||
		strings.TrimSpace(req.RecipientID) == "" ||
		strings.TrimSpace(req.Body) == "" {
		return nil, ErrInvalidInput
	}

	msg := &Message{
		ID:          uuid.NewString(),
		ProjectID:   req.ProjectID,
		SenderID:    req.SenderID,
		SenderName:  req.SenderName,
		RecipientID: req.RecipientID,
		Body:        req.Body,
		Read:        false,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("creating message: %w", err)
	}

	return msg, nil
}

// ListUnread returns a recipient's unread messages, newest first.
func (s *Service) ListUnread(ctx context.Context, recipientID string) ([]*Message, error) {
	return s.repo.ListUnread(ctx, recipientID)
}

// MarkRead marks one message as read.
func (s *Service) MarkRead(ctx context.Context, recipientID, id string) error {
	if err := s.repo.MarkRead(ctx, recipientID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMessageNotFound
		}
		return fmt.Errorf("marking message read: %w", err)
	}
	return nil
}
