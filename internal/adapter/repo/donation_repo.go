package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fundtracker/internal/domain"
)

// DonationRepositoryPG implements domain.DonationRepository using PostgreSQL.
type DonationRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(pool *pgxpool.Pool) *DonationRepositoryPG {
	return &DonationRepositoryPG{pool: pool}
}

// Insert persists a new donation record.
func (r *DonationRepositoryPG) Insert(ctx context.Context, donation *domain.Donation) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO donations (id, project_id, amount_cents, payment_gateway, created_at)
VALUES ($1, $2, $3, $4, $5);
`, donation.ID, donation.ProjectID, int64(donation.Amount), donation.PaymentGateway, donation.CreatedAt)
	if err != nil {
		return &domain.PersistenceError{Op: "donation.insert", Err: err}
	}
	return nil
}

// ListByProject returns a project's donations, newest first.
func (r *DonationRepositoryPG) ListByProject(ctx context.Context, projectID string) ([]domain.Donation, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, project_id, amount_cents, payment_gateway, created_at
FROM donations
WHERE project_id = $1
ORDER BY created_at DESC;
`, projectID)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "donation.list_by_project", Err: err}
	}
	return collectDonations(rows, "donation.list_by_project")
}

// List returns donations across all projects with limit/offset pagination.
func (r *DonationRepositoryPG) List(ctx context.Context, limit, offset int) ([]domain.Donation, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, project_id, amount_cents, payment_gateway, created_at
FROM donations
ORDER BY created_at DESC
LIMIT $1 OFFSET $2;
`, limit, offset)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "donation.list", Err: err}
	}
	return collectDonations(rows, "donation.list")
}

// Delete removes a donation and reports whether it existed.
func (r *DonationRepositoryPG) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
DELETE FROM donations
WHERE id = $1;
`, id)
	if err != nil {
		return false, &domain.PersistenceError{Op: "donation.delete", Err: err}
	}
	return tag.RowsAffected() > 0, nil
}

// Aggregate computes count, sum and mean over all completed donations in
// one round trip. An empty table yields zeros.
func (r *DonationRepositoryPG) Aggregate(ctx context.Context) (*domain.DonationStats, error) {
	row := r.pool.QueryRow(ctx, `
SELECT
    COUNT(*),
    COALESCE(SUM(amount_cents), 0)::bigint,
    COALESCE(ROUND(AVG(amount_cents)), 0)::bigint
FROM donations;
`)
	var count, sum, avg int64
	if err := row.Scan(&count, &sum, &avg); err != nil {
		return nil, &domain.PersistenceError{Op: "donation.aggregate", Err: err}
	}
	return &domain.DonationStats{
		TotalDonations:  count,
		TotalAmount:     domain.Money(sum),
		AverageDonation: domain.Money(avg),
	}, nil
}

func collectDonations(rows pgx.Rows, op string) ([]domain.Donation, error) {
	defer rows.Close()

	var items []domain.Donation
	for rows.Next() {
		var donation domain.Donation
		var amountCents int64
		if err := rows.Scan(&donation.ID, &donation.ProjectID, &amountCents, &donation.PaymentGateway, &donation.CreatedAt); err != nil {
			return nil, &domain.PersistenceError{Op: op, Err: err}
		}
		donation.Amount = domain.Money(amountCents)
		items = append(items, donation)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.PersistenceError{Op: op, Err: err}
	}
	return items, nil
}

var _ domain.DonationRepository = (*DonationRepositoryPG)(nil)
