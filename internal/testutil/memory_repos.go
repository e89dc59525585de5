// Package testutil provides in-memory Entity Store implementations for
// tests. The increment and clamp operations are atomic under a mutex,
// mirroring the single-round-trip semantics of the SQL implementations.
package testutil

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"fundtracker/internal/domain"
)

// MemoryProjectRepo is an in-memory domain.ProjectRepository.
type MemoryProjectRepo struct {
	mu       sync.Mutex
	order    []string
	projects map[string]*domain.Project

	// FailIncrement makes IncrementAmount fail, for partial-failure tests.
	FailIncrement bool

	// HonorContext makes IncrementAmount fail when its context is
	// already done, mirroring a store that checks deadlines.
	HonorContext bool
}

// NewMemoryProjectRepo constructs an empty repo.
func NewMemoryProjectRepo() *MemoryProjectRepo {
	return &MemoryProjectRepo{projects: make(map[string]*domain.Project)}
}

func (r *MemoryProjectRepo) Create(_ context.Context, project *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *project
	r.projects[project.ID] = &cp
	r.order = append(r.order, project.ID)
	return nil
}

func (r *MemoryProjectRepo) GetByID(_ context.Context, id string) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	project, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *project
	return &cp, nil
}

func (r *MemoryProjectRepo) List(_ context.Context) ([]domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]domain.Project, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		if project, ok := r.projects[r.order[i]]; ok {
			items = append(items, *project)
		}
	}
	return items, nil
}

func (r *MemoryProjectRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[id]; !ok {
		return false, nil
	}
	delete(r.projects, id)
	return true, nil
}

func (r *MemoryProjectRepo) IncrementAmount(ctx context.Context, id string, delta domain.Money) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailIncrement {
		return nil, &domain.PersistenceError{Op: "project.increment", Err: errors.New("store unavailable")}
	}
	if r.HonorContext {
		if err := ctx.Err(); err != nil {
			return nil, &domain.PersistenceError{Op: "project.increment", Err: err}
		}
	}
	project, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	project.CurrentAmount += delta
	project.UpdatedAt = time.Now().UTC()
	cp := *project
	return &cp, nil
}

func (r *MemoryProjectRepo) ClampToGoal(_ context.Context, id string) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	project, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if project.CurrentAmount > project.GoalAmount {
		project.CurrentAmount = project.GoalAmount
		project.UpdatedAt = time.Now().UTC()
	}
	cp := *project
	return &cp, nil
}

var _ domain.ProjectRepository = (*MemoryProjectRepo)(nil)

// MemoryDonationRepo is an in-memory domain.DonationRepository.
type MemoryDonationRepo struct {
	mu        sync.Mutex
	donations []domain.Donation

	// FailInsert makes Insert fail, for ledger failure tests.
	FailInsert bool
}

// NewMemoryDonationRepo constructs an empty repo.
func NewMemoryDonationRepo() *MemoryDonationRepo {
	return &MemoryDonationRepo{}
}

func (r *MemoryDonationRepo) Insert(_ context.Context, donation *domain.Donation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailInsert {
		return &domain.PersistenceError{Op: "donation.insert", Err: errors.New("store unavailable")}
	}
	r.donations = append(r.donations, *donation)
	return nil
}

func (r *MemoryDonationRepo) ListByProject(_ context.Context, projectID string) ([]domain.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []domain.Donation
	for i := len(r.donations) - 1; i >= 0; i-- {
		if r.donations[i].ProjectID == projectID {
			items = append(items, r.donations[i])
		}
	}
	return items, nil
}

func (r *MemoryDonationRepo) List(_ context.Context, limit, offset int) ([]domain.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []domain.Donation
	skipped := 0
	for i := len(r.donations) - 1; i >= 0; i-- {
		if skipped < offset {
			skipped++
			continue
		}
		if len(items) >= limit {
			break
		}
		items = append(items, r.donations[i])
	}
	return items, nil
}

func (r *MemoryDonationRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, donation := range r.donations {
		if donation.ID == id {
			r.donations = append(r.donations[:i], r.donations[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryDonationRepo) Aggregate(_ context.Context) (*domain.DonationStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := &domain.DonationStats{}
	if len(r.donations) == 0 {
		return stats, nil
	}
	var sum int64
	for _, donation := range r.donations {
		sum += int64(donation.Amount)
	}
	stats.TotalDonations = int64(len(r.donations))
	stats.TotalAmount = domain.Money(sum)
	stats.AverageDonation = domain.Money(int64(math.Round(float64(sum) / float64(len(r.donations)))))
	return stats, nil
}

// Count reports the number of stored donations.
func (r *MemoryDonationRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.donations)
}

var _ domain.DonationRepository = (*MemoryDonationRepo)(nil)
