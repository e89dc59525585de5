package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"fundtracker/internal/domain"
)

func TestApplyDonationIncrementsAndTouchesUpdatedAt(t *testing.T) {
	f := newFixture()
	project := f.createProject(t, 10000_00)

	updated, err := f.projSvc.ApplyDonation(context.Background(), project.ID, 2500_00)
	if err != nil {
		t.Fatalf("ApplyDonation returned error: %v", err)
	}
	if updated.CurrentAmount != 2500_00 {
		t.Fatalf("currentAmount = %d, want 250000", updated.CurrentAmount)
	}
	if updated.UpdatedAt.Before(project.UpdatedAt) {
		t.Fatalf("updatedAt not refreshed")
	}
}

func TestApplyDonationInvariantNeverExceedsGoal(t *testing.T) {
	f := newFixture()
	project := f.createProject(t, 10000_00)

	amounts := []domain.Money{4000_00, 4000_00, 4000_00}
	for _, amount := range amounts {
		updated, err := f.projSvc.ApplyDonation(context.Background(), project.ID, amount)
		if err != nil {
			t.Fatalf("ApplyDonation returned error: %v", err)
		}
		if updated.CurrentAmount < 0 || updated.CurrentAmount > updated.GoalAmount {
			t.Fatalf("invariant violated: current=%d goal=%d", updated.CurrentAmount, updated.GoalAmount)
		}
	}

	final, err := f.projSvc.Get(context.Background(), project.ID)
	if err != nil {
		t.Fatalf("get project: %v", err)
	}
	if final.CurrentAmount != final.GoalAmount {
		t.Fatalf("currentAmount = %d, want exactly goal %d", final.CurrentAmount, final.GoalAmount)
	}
}

func TestApplyDonationUnknownProject(t *testing.T) {
	f := newFixture()

	_, err := f.projSvc.ApplyDonation(context.Background(), uuid.NewString(), 100_00)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestApplyDonationRejectsNonPositiveAmount(t *testing.T) {
	f := newFixture()
	project := f.createProject(t, 10000_00)

	for _, amount := range []domain.Money{0, -100} {
		_, err := f.projSvc.ApplyDonation(context.Background(), project.ID, amount)
		var vErr *domain.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("amount %d: expected ValidationError, got %v", amount, err)
		}
	}
}

func TestProjectCreateAndList(t *testing.T) {
	f := newFixture()

	first := f.createProject(t, 10000_00)
	second, err := f.projSvc.Create(context.Background(), "Education for All", "Building schools", 25000_00)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	items, err := f.projSvc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("list length = %d, want 2", len(items))
	}
	// Newest first.
	if items[0].ID != second.ID || items[1].ID != first.ID {
		t.Fatalf("unexpected order: %s, %s", items[0].ID, items[1].ID)
	}
}

func TestProjectDelete(t *testing.T) {
	f := newFixture()
	project := f.createProject(t, 10000_00)

	existed, err := f.projSvc.Delete(context.Background(), project.ID)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if !existed {
		t.Fatalf("expected delete to report existence")
	}

	if _, err := f.projSvc.Get(context.Background(), project.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
