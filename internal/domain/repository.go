package domain

import "context"

// DonationStats aggregates the donation set.
type DonationStats struct {
	TotalDonations  int64 `json:"totalDonations"`
	TotalAmount     Money `json:"totalAmount"`
	AverageDonation Money `json:"averageDonation"`
}

// ProjectRepository defines persistence for projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *Project) error
	GetByID(ctx context.Context, id string) (*Project, error)
	List(ctx context.Context) ([]Project, error)
	Delete(ctx context.Context, id string) (bool, error)

	// IncrementAmount applies delta to the project's funded total in a
	// single atomic read-modify-write and returns the updated row.
	// Returns ErrNotFound when the project does not exist.
	IncrementAmount(ctx context.Context, id string, delta Money) (*Project, error)

	// ClampToGoal reduces an overshot funded total back to the goal.
	// Idempotent: a project at or under its goal is returned unchanged.
	ClampToGoal(ctx context.Context, id string) (*Project, error)
}

// DonationRepository defines persistence for donation records.
type DonationRepository interface {
	Insert(ctx context.Context, donation *Donation) error
	ListByProject(ctx context.Context, projectID string) ([]Donation, error)
	List(ctx context.Context, limit, offset int) ([]Donation, error)
	Delete(ctx context.Context, id string) (bool, error)
	Aggregate(ctx context.Context) (*DonationStats, error)
}
