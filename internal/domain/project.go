package domain

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	maxTitleLength       = 100
	maxDescriptionLength = 500
)

// Project is a fundraising campaign with a fixed goal. CurrentAmount is
// the materialized running sum of its donations; it is mutated only
// through ProjectRepository.IncrementAmount and ClampToGoal.
type Project struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	GoalAmount    Money     `json:"goalAmount"`
	CurrentAmount Money     `json:"currentAmount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NewProject validates the input and returns a project with a fresh id
// and a zero funded amount.
func NewProject(title, description string, goalAmount Money) (*Project, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if title == "" {
		return nil, NewValidationError("title", "title is required")
	}
	if len(title) > maxTitleLength {
		return nil, NewValidationError("title", "title cannot be more than 100 characters")
	}
	if description == "" {
		return nil, NewValidationError("description", "description is required")
	}
	if len(description) > maxDescriptionLength {
		return nil, NewValidationError("description", "description cannot be more than 500 characters")
	}
	if goalAmount <= 0 {
		return nil, NewValidationError("goalAmount", "goal amount must be greater than 0")
	}

	now := time.Now().UTC()
	return &Project{
		ID:            uuid.NewString(),
		Title:         title,
		Description:   description,
		GoalAmount:    goalAmount,
		CurrentAmount: 0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// ProgressPercentage reports funding progress as a rounded percentage.
func (p *Project) ProgressPercentage() int {
	if p.GoalAmount <= 0 {
		return 0
	}
	return int(math.Round(float64(p.CurrentAmount) / float64(p.GoalAmount) * 100))
}

// MarshalJSON adds the derived progressPercentage field.
func (p *Project) MarshalJSON() ([]byte, error) {
	type alias Project
	return json.Marshal(struct {
		*alias
		ProgressPercentage int `json:"progressPercentage"`
	}{
		alias:              (*alias)(p),
		ProgressPercentage: p.ProgressPercentage(),
	})
}
