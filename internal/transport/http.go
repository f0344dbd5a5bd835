package transport

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/danielcazi/frameup-connect-creators-sub000/internal/domain/dashboard"
	"github.com/danielcazi/frameup-connect-creators-sub000/internal/domain/message"
	"github.com/danielcazi/frameup-connect-creators-sub000/internal/domain/project"
)

// ProjectService defines project operations needed by the HTTP API.
type ProjectService interface {
	Create(ctx context.Context, req project.CreateRequest) (*project.Project, error)
	Get(ctx context.Context, creatorID, id string) (*project.Project, error)
	List(ctx context.Context, creatorID string) ([]*project.Project, error)
	Transition(ctx context.Context, creatorID string, req project.TransitionRequest) (*project.Project, error)
	TransitionItem(ctx context.Context, creatorID, itemID string, to project.ItemStatus) (*project.BatchItem, error)
}

// MessageService defines message operations needed by the HTTP API.
type MessageService interface {
	Send(ctx context.Context, req message.SendRequest) (*message.Message, error)
	ListUnread(ctx context.Context, recipientID string) ([]*message.Message, error)
	MarkRead(ctx context.Context, recipientID, id string) error
}

// DashboardService defines dashboard operations needed by the HTTP API.
type DashboardService interface {
	View(ctx context.Context, creatorID string, now time.Time) (*dashboard.View, error)
	Alerts(ctx context.Context, creatorID string, now time.Time) ([]dashboard.Alert, error)
}

// Server wires HTTP handlers.
type Server struct {
	projects  ProjectService
	messages  MessageService
	dashboard DashboardService
	logger    *slog.Logger
	now       func() time.Time
}

// NewServer creates the HTTP router.
func NewServer(projects ProjectService, messages MessageService, dash DashboardService, logger *slog.Logger) *chi.Mux {
	if logger == nil {
		logger = slog.Default()
	}
	srv := &Server{
		projects:  projects,
		messages:  messages,
		dashboard: dash,
		logger:    logger,
		now:       time.Now,
	}

	r := chi.NewRouter()
	r.Get("/health", srv.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Use(UserMiddleware)

		r.Get("/dashboard", srv.handleDashboard)
		r.Get("/alerts", srv.handleAlerts)

		r.Get("/projects", srv.handleListProjects)
		r.Post("/projects", srv.handleCreateProject)
		r.Get("/projects/{id}", srv.handleGetProject)
		r.Post("/projects/{id}/transition", srv.handleTransitionProject)
		r.Post("/items/{id}/transition", srv.handleTransitionItem)

		r.Get("/messages/unread", srv.handleListUnread)
		r.Post("/messages", srv.handleSendMessage)
		r.Post("/messages/{id}/read", srv.handleMarkRead)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserFromContext(r.Context())
	view, err := s.dashboard.View(r.Context(), userID, s.now())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleAlerts(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserFromContext(r.Context())
	alerts, err := s.dashboard.Alerts(r.Context(), userID, s.now())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"alerts": alerts})
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserFromContext(r.Context())
	projects, err := s.projects.List(r.Context(), userID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"projects": projects})
}

type createProjectRequest struct {
	Title          string     `json:"title"`
	BatchQuantity  int        `json:"batch_quantity"`
	BasePriceCents int64      `json:"base_price_cents"`
	DeadlineAt     *time.Time `json:"deadline_at"`
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserFromContext(r.Context())

	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	proj, err := s.projects.Create(r.Context(), project.CreateRequest{
		CreatorID:      userID,
		Title:          req.Title,
		BatchQuantity:  req.BatchQuantity,
		BasePriceCents: req.BasePriceCents,
		DeadlineAt:     req.DeadlineAt,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, proj)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserFromContext(r.Context())
	proj, err := s.projects.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, proj)
}

type transitionRequest struct {
	To       string  `json:"to"`
	EditorID *string `json:"editor_id"`
}

func (s *Server) handleTransitionProject(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserFromContext(r.Context())

	var req transitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	proj, err := s.projects.Transition(r.Context(), userID, project.TransitionRequest{
		ProjectID: chi.URLParam(r, "id"),
		To:        project.Status(req.To),
		EditorID:  req.EditorID,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, proj)
}

func (s *Server) handleTransitionItem(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserFromContext(r.Context())

	var req transitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	item, err := s.projects.TransitionItem(r.Context(), userID, chi.URLParam(r, "id"), project.ItemStatus(req.To))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleListUnread(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserFromContext(r.Context())
	messages, err := s.messages.ListUnread(r.Context(), userID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"messages": messages})
}

type sendMessageRequest struct {
	ProjectID   string `json:"project_id"`
	SenderName  string `json:"sender_name"`
	RecipientID string `json:"recipient_id"`
	Body        string `json:"body"`
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserFromContext(r.Context())

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	msg, err := s.messages.Send(r.Context(), message.SendRequest{
		ProjectID:   req.ProjectID,
		SenderID:    userID,
		SenderName:  req.SenderName,
		RecipientID: req.RecipientID,
		Body:        req.Body,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, msg)
}

func (s *Server) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserFromContext(r.Context())
	if err := s.messages.MarkRead(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, project.ErrProjectNotFound),
		errors.Is(err, project.ErrItemNotFound),
		errors.Is(err, message.ErrMessageNotFound):
		status = http.StatusNotFound
	case errors.Is(err, project.ErrInvalidInput),
		errors.Is(err, message.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, project.ErrInvalidTransition):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, project.ErrArchived):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
