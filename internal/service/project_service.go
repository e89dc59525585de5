package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"fundtracker/internal/domain"
)

// ProjectService owns project reads and the funded-total aggregate. The
// aggregate is a materialized running sum, so every mutation goes through
// ApplyDonation and nothing else writes current_cents.
type ProjectService struct {
	projects domain.ProjectRepository
	logger   zerolog.Logger
}

// NewProjectService constructs the service.
func NewProjectService(projects domain.ProjectRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{projects: projects, logger: logger}
}

// List returns all projects, newest first.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	items, err := s.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return items, nil
}

// Get returns one project or domain.ErrNotFound.
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return project, nil
}

// Create validates and persists a new project. Used by seeding and
// administrative tooling; there is no public create endpoint.
func (s *ProjectService) Create(ctx context.Context, title, description string, goalAmount domain.Money) (*domain.Project, error) {
	project, err := domain.NewProject(title, description, goalAmount)
	if err != nil {
		return nil, err
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	s.logger.Info().
		Str("project_id", project.ID).
		Str("title", project.Title).
		Msg("project created")
	return project, nil
}

// Delete removes a project and reports whether it existed.
func (s *ProjectService) Delete(ctx context.Context, id string) (bool, error) {
	existed, err := s.projects.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	return existed, nil
}

// ApplyDonation adds the amount to the project's funded total. The
// increment is a single atomic operation at the storage layer; the
// over-goal clamp runs as a separate idempotent corrective write, so the
// total can exceed the goal only for the instant between the two.
// Returns domain.ErrNotFound when the project has vanished.
func (s *ProjectService) ApplyDonation(ctx context.Context, projectID string, amount domain.Money) (*domain.Project, error) {
	if amount <= 0 {
		return nil, domain.NewValidationError("amount", "amount must be a positive number greater than 0")
	}

	project, err := s.projects.IncrementAmount(ctx, projectID, amount)
	if err != nil {
		return nil, err
	}

	if project.CurrentAmount > project.GoalAmount {
		overshoot := project.CurrentAmount - project.GoalAmount
		project, err = s.projects.ClampToGoal(ctx, projectID)
		if err != nil {
			return nil, err
		}
		s.logger.Warn().
			Str("project_id", projectID).
			Str("overshoot", overshoot.String()).
			Str("goal_amount", project.GoalAmount.String()).
			Msg("funded total capped at goal amount")
	}

	s.logger.Debug().
		Str("project_id", projectID).
		Str("current_amount", project.CurrentAmount.String()).
		Str("goal_amount", project.GoalAmount.String()).
		Msg("project amount updated")

	return project, nil
}
