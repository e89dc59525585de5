package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"fundtracker/internal/domain"
)

const (
	// DefaultListLimit bounds donation listings when the caller gives none.
	DefaultListLimit = 50
	maxListLimit     = 200
)

// SubmitDonationInput is the request shape for Submit.
type SubmitDonationInput struct {
	ProjectID      string
	Amount         domain.Money
	PaymentGateway string
}

// DonationService is the donation ledger and the workflow around it:
// it validates and appends donation records, and orchestrates the
// project-aggregate update that follows each append.
type DonationService struct {
	donations domain.DonationRepository
	projects  *ProjectService
	logger    zerolog.Logger
}

// NewDonationService constructs the service.
func NewDonationService(donations domain.DonationRepository, projects *ProjectService, logger zerolog.Logger) *DonationService {
	return &DonationService{donations: donations, projects: projects, logger: logger}
}

// Submit runs the full donation workflow: validate the input, resolve the
// project, append the donation, then apply the amount to the project's
// funded total. Validation and unknown-project failures happen before any
// write. When the aggregate update fails after the donation was persisted
// there is no automatic compensation; the failure is logged with both ids
// and surfaced, while the donation stays on the ledger.
func (s *DonationService) Submit(ctx context.Context, input SubmitDonationInput) (*domain.Donation, *domain.Project, error) {
	donation, err := domain.NewDonation(input.ProjectID, input.Amount, input.PaymentGateway)
	if err != nil {
		return nil, nil, err
	}

	if _, err := s.projects.Get(ctx, donation.ProjectID); err != nil {
		return nil, nil, err
	}

	if err := s.donations.Insert(ctx, donation); err != nil {
		return nil, nil, fmt.Errorf("append donation: %w", err)
	}

	s.logger.Info().
		Str("donation_id", donation.ID).
		Str("project_id", donation.ProjectID).
		Str("amount", donation.Amount.String()).
		Str("payment_gateway", donation.PaymentGateway).
		Msg("donation recorded")

	// The donation is on the ledger now; a client disconnect must not
	// leave it unreflected in the aggregate.
	project, err := s.projects.ApplyDonation(context.WithoutCancel(ctx), donation.ProjectID, donation.Amount)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("donation_id", donation.ID).
			Str("project_id", donation.ProjectID).
			Msg("aggregate update failed after donation was persisted")
		return nil, nil, fmt.Errorf("update project amount: %w", err)
	}

	return donation, project, nil
}

// ListByProject returns a project's donations, newest first. Returns
// domain.ErrNotFound for an unknown project.
func (s *DonationService) ListByProject(ctx context.Context, projectID string) ([]domain.Donation, error) {
	if _, err := s.projects.Get(ctx, projectID); err != nil {
		return nil, err
	}
	items, err := s.donations.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	return items, nil
}

// List returns donations across all projects, plus the limit and offset
// actually applied: non-positive limits fall back to DefaultListLimit,
// oversized limits are capped, negative offsets are treated as zero.
func (s *DonationService) List(ctx context.Context, limit, offset int) ([]domain.Donation, int, int, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	items, err := s.donations.List(ctx, limit, offset)
	if err != nil {
		return nil, limit, offset, fmt.Errorf("list donations: %w", err)
	}
	return items, limit, offset, nil
}

// Delete removes a donation record and reports whether it existed. The
// project aggregate is intentionally untouched: deletion is an
// administrative capability, not a refund path.
func (s *DonationService) Delete(ctx context.Context, id string) (bool, error) {
	existed, err := s.donations.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete donation: %w", err)
	}
	if existed {
		s.logger.Info().Str("donation_id", id).Msg("donation deleted")
	}
	return existed, nil
}

// Stats aggregates count, sum and mean over all donations. An empty
// ledger yields zeros.
func (s *DonationService) Stats(ctx context.Context) (*domain.DonationStats, error) {
	stats, err := s.donations.Aggregate(ctx)
	if err != nil {
		return nil, fmt.Errorf("aggregate donations: %w", err)
	}
	return stats, nil
}
