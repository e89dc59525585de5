package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fundtracker/internal/domain"
)

// ProjectRepositoryPG implements domain.ProjectRepository using PostgreSQL.
type ProjectRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewProjectRepository creates a new project repo.
func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepositoryPG {
	return &ProjectRepositoryPG{pool: pool}
}

const projectColumns = `id, title, description, goal_cents, current_cents, created_at, updated_at`

// Create inserts a new project record.
func (r *ProjectRepositoryPG) Create(ctx context.Context, project *domain.Project) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO projects (id, title, description, goal_cents, current_cents, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7);
`, project.ID, project.Title, project.Description, int64(project.GoalAmount), int64(project.CurrentAmount), project.CreatedAt, project.UpdatedAt)
	if err != nil {
		return &domain.PersistenceError{Op: "project.create", Err: err}
	}
	return nil
}

// GetByID returns a project or domain.ErrNotFound.
func (r *ProjectRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+projectColumns+`
FROM projects
WHERE id = $1;
`, id)
	project, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, &domain.PersistenceError{Op: "project.get", Err: err}
	}
	return project, nil
}

// List returns all projects, newest first.
func (r *ProjectRepositoryPG) List(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+projectColumns+`
FROM projects
ORDER BY created_at DESC;
`)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "project.list", Err: err}
	}
	defer rows.Close()

	var items []domain.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, &domain.PersistenceError{Op: "project.list", Err: err}
		}
		items = append(items, *project)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.PersistenceError{Op: "project.list", Err: err}
	}
	return items, nil
}

// Delete removes a project and reports whether it existed.
func (r *ProjectRepositoryPG) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
DELETE FROM projects
WHERE id = $1;
`, id)
	if err != nil {
		return false, &domain.PersistenceError{Op: "project.delete", Err: err}
	}
	return tag.RowsAffected() > 0, nil
}

// IncrementAmount applies the delta as one atomic read-modify-write on the
// row. Two concurrent donations to the same project both land; the database
// serializes the increments.
func (r *ProjectRepositoryPG) IncrementAmount(ctx context.Context, id string, delta domain.Money) (*domain.Project, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE projects
SET current_cents = current_cents + $2, updated_at = now()
WHERE id = $1
RETURNING `+projectColumns+`;
`, id, int64(delta))
	project, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, &domain.PersistenceError{Op: "project.increment", Err: err}
	}
	return project, nil
}

// ClampToGoal caps an overshot funded total at the goal. The WHERE clause
// makes it a no-op for projects at or under their goal, so reapplying it is
// safe.
func (r *ProjectRepositoryPG) ClampToGoal(ctx context.Context, id string) (*domain.Project, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE projects
SET current_cents = goal_cents, updated_at = now()
WHERE id = $1 AND current_cents > goal_cents
RETURNING `+projectColumns+`;
`, id)
	project, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Nothing to clamp; return the row as it stands.
			return r.GetByID(ctx, id)
		}
		return nil, &domain.PersistenceError{Op: "project.clamp", Err: err}
	}
	return project, nil
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var project domain.Project
	var goalCents, currentCents int64
	if err := row.Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&goalCents,
		&currentCents,
		&project.CreatedAt,
		&project.UpdatedAt,
	); err != nil {
		return nil, err
	}
	project.GoalAmount = domain.Money(goalCents)
	project.CurrentAmount = domain.Money(currentCents)
	return &project, nil
}

var _ domain.ProjectRepository = (*ProjectRepositoryPG)(nil)
