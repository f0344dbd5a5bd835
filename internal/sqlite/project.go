package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danielcazi/frameup-connect-creators-sub000/internal/domain/project"
	"github.com/danielcazi/frameup-connect-creators-sub000/internal/repository"
)

// ProjectRepository implements repository.ProjectRepository for SQLite
type ProjectRepository struct {
	db *DB
}

var _ repository.ProjectRepository = (*ProjectRepository)(nil)

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a project and its batch items in one transaction
func (r *ProjectRepository) Create(ctx context.Context, creatorID string, proj *project.Project) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO projects (id, creator_id, editor_id, title, status, is_batch,
			batch_quantity, base_price_cents, created_at, updated_at,
			deadline_at, review_requested_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, query,
		proj.ID,
		creatorID,
		proj.EditorID,
		proj.Title,
		proj.Status,
		proj.IsBatch,
		proj.BatchQuantity,
		proj.BasePriceCents,
		proj.CreatedAt,
		proj.UpdatedAt,
		nullableTime(proj.DeadlineAt),
		nullableTime(proj.ReviewRequestedAt),
		nullableTime(proj.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	for _, item := range proj.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO batch_items (id, project_id, sequence_order, status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			item.ID, item.ProjectID, item.SequenceOrder, item.Status, item.CreatedAt, item.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create batch item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit project: %w", err)
	}
	return nil
}

const projectColumns = `
	p.id, p.creator_id, p.editor_id, p.title, p.status, p.is_batch,
	p.batch_quantity, p.base_price_cents, p.created_at, p.updated_at,
	p.deadline_at, p.review_requested_at, p.completed_at,
	COUNT(CASE WHEN m.read = 0 THEN m.id END) AS unread_messages
`

// Get retrieves a project by ID, including its batch items
func (r *ProjectRepository) Get(ctx context.Context, creatorID, id string) (*project.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects p
		LEFT JOIN messages m ON m.project_id = p.id AND m.recipient_id = p.creator_id
		WHERE p.id = ? AND p.creator_id = ?
		GROUP BY p.id
	`

	proj, err := scanProject(r.db.QueryRowContext(ctx, query, id, creatorID))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	items, err := r.listItems(ctx, []string{proj.ID})
	if err != nil {
		return nil, err
	}
	proj.Items = items[proj.ID]

	return proj, nil
}

// ListByCreator returns all projects for a creator, batch items attached,
// ordered by creation time
func (r *ProjectRepository) ListByCreator(ctx context.Context, creatorID string) ([]*project.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects p
		LEFT JOIN messages m ON m.project_id = p.id AND m.recipient_id = p.creator_id
		WHERE p.creator_id = ?
		GROUP BY p.id
		ORDER BY p.created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*project.Project
	ids := make([]string, 0)
	for rows.Next() {
		proj, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, proj)
		ids = append(ids, proj.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}

	if len(ids) > 0 {
		items, err := r.listItems(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, proj := range projects {
			proj.Items = items[proj.ID]
		}
	}

	return projects, nil
}

// Update persists project fields that change after creation
func (r *ProjectRepository) Update(ctx context.Context, creatorID string, proj *project.Project) error {
	query := `
		UPDATE projects
		SET editor_id = ?, title = ?, status = ?, updated_at = ?,
			deadline_at = ?, review_requested_at = ?, completed_at = ?
		WHERE id = ? AND creator_id = ?
	`

	res, err := r.db.ExecContext(ctx, query,
		proj.EditorID,
		proj.Title,
		proj.Status,
		proj.UpdatedAt,
		nullableTime(proj.DeadlineAt),
		nullableTime(proj.ReviewRequestedAt),
		nullableTime(proj.CompletedAt),
		proj.ID,
		creatorID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// GetItem retrieves one batch item by ID
func (r *ProjectRepository) GetItem(ctx context.Context, itemID string) (*project.BatchItem, error) {
	query := `
		SELECT id, project_id, sequence_order, status, created_at, updated_at
		FROM batch_items
		WHERE id = ?
	`

	var item project.BatchItem
	err := r.db.QueryRowContext(ctx, query, itemID).Scan(
		&item.ID,
		&item.ProjectID,
		&item.SequenceOrder,
		&item.Status,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get batch item: %w", err)
	}
	return &item, nil
}

// UpdateItem persists a batch item's status
func (r *ProjectRepository) UpdateItem(ctx context.Context, item *project.BatchItem) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE batch_items SET status = ?, updated_at = ? WHERE id = ?`,
		item.Status, item.UpdatedAt, item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update batch item: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check item update: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// listItems loads batch items for a set of projects, keyed by project ID,
// in reviewer order
func (r *ProjectRepository) listItems(ctx context.Context, projectIDs []string) (map[string][]project.BatchItem, error) {
	query := `
		SELECT id, project_id, sequence_order, status, created_at, updated_at
		FROM batch_items
		WHERE project_id IN (` + placeholders(len(projectIDs)) + `)
		ORDER BY project_id, sequence_order ASC
	`

	args := make([]any, len(projectIDs))
	for i, id := range projectIDs {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list batch items: %w", err)
	}
	defer rows.Close()

	items := make(map[string][]project.BatchItem)
	for rows.Next() {
		var item project.BatchItem
		if err := rows.Scan(
			&item.ID,
			&item.ProjectID,
			&item.SequenceOrder,
			&item.Status,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan batch item: %w", err)
		}
		items[item.ProjectID] = append(items[item.ProjectID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate batch items: %w", err)
	}
	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*project.Project, error) {
	var proj project.Project
	var editorID sql.NullString
	var deadlineAt, reviewAt, completedAt sql.NullTime

	err := row.Scan(
		&proj.ID,
		&proj.CreatorID,
		&editorID,
		&proj.Title,
		&proj.Status,
		&proj.IsBatch,
		&proj.BatchQuantity,
		&proj.BasePriceCents,
		&proj.CreatedAt,
		&proj.UpdatedAt,
		&deadlineAt,
		&reviewAt,
		&completedAt,
		&proj.UnreadMessages,
	)
	if err != nil {
		return nil, err
	}

	if editorID.Valid {
		proj.EditorID = &editorID.String
	}
	proj.DeadlineAt = timePtr(deadlineAt)
	proj.ReviewRequestedAt = timePtr(reviewAt)
	proj.CompletedAt = timePtr(completedAt)

	return &proj, nil
}

func placeholders(n int) string {
	if n == 0 {
		return ""
	}
	s := "?"
	for i := 1; i < n; i++ {
		s += ", ?"
	}
	return s
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
