package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"fundtracker/internal/domain"
	"fundtracker/internal/service"
)

type sampleProject struct {
	title       string
	description string
	goalAmount  domain.Money
}

type sampleDonation struct {
	projectIndex   int
	amount         domain.Money
	paymentGateway string
}

var sampleProjects = []sampleProject{
	{
		title:       "Clean Water Initiative",
		description: "Providing clean drinking water to rural communities in Africa",
		goalAmount:  10000_00,
	},
	{
		title:       "Education for All",
		description: "Building schools and providing educational materials for underserved communities",
		goalAmount:  25000_00,
	},
	{
		title:       "Wildlife Conservation",
		description: "Protecting endangered species and their habitats",
		goalAmount:  15000_00,
	},
}

var sampleDonations = []sampleDonation{
	{projectIndex: 0, amount: 1000_00, paymentGateway: "PayPal"},
	{projectIndex: 0, amount: 1500_00, paymentGateway: "Stripe"},
	{projectIndex: 1, amount: 5000_00, paymentGateway: "PayPal"},
	{projectIndex: 1, amount: 3750_00, paymentGateway: "Bank Transfer"},
	{projectIndex: 2, amount: 5200_00, paymentGateway: "Stripe"},
}

// Run populates an empty database with sample projects and donations.
// Donations go through the regular submission workflow so the project
// aggregates end up consistent. A database that already has projects is
// left untouched.
func Run(ctx context.Context, projects *service.ProjectService, donations *service.DonationService, logger zerolog.Logger) error {
	existing, err := projects.List(ctx)
	if err != nil {
		return fmt.Errorf("check existing projects: %w", err)
	}
	if len(existing) > 0 {
		logger.Info().Int("projects", len(existing)).Msg("database already contains data, skipping seeding")
		return nil
	}

	created := make([]*domain.Project, 0, len(sampleProjects))
	for _, sample := range sampleProjects {
		project, err := projects.Create(ctx, sample.title, sample.description, sample.goalAmount)
		if err != nil {
			return fmt.Errorf("create project %q: %w", sample.title, err)
		}
		created = append(created, project)
	}

	for _, sample := range sampleDonations {
		project := created[sample.projectIndex]
		if _, _, err := donations.Submit(ctx, service.SubmitDonationInput{
			ProjectID:      project.ID,
			Amount:         sample.amount,
			PaymentGateway: sample.paymentGateway,
		}); err != nil {
			return fmt.Errorf("seed donation for %q: %w", project.Title, err)
		}
	}

	stats, err := donations.Stats(ctx)
	if err != nil {
		return fmt.Errorf("read final stats: %w", err)
	}
	logger.Info().
		Int("projects", len(created)).
		Int64("donations", stats.TotalDonations).
		Str("total_amount", stats.TotalAmount.String()).
		Msg("database seeding completed")

	return nil
}
