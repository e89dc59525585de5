package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultPaymentGateway is recorded when the donor does not name one.
	// The label carries no behavior; no gateway is invoked.
	DefaultPaymentGateway = "Direct"

	maxPaymentGatewayLength = 50
)

// Donation is an immutable record of a contribution to a project.
type Donation struct {
	ID             string    `json:"id"`
	ProjectID      string    `json:"projectId"`
	Amount         Money     `json:"amount"`
	PaymentGateway string    `json:"paymentGateway"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NewDonation validates the input and returns a donation with a fresh id
// and a server-assigned creation timestamp.
func NewDonation(projectID string, amount Money, paymentGateway string) (*Donation, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, NewValidationError("projectId", "projectId is required")
	}
	if _, err := uuid.Parse(projectID); err != nil {
		return nil, NewValidationError("projectId", "projectId must be a valid UUID")
	}
	if amount <= 0 {
		return nil, NewValidationError("amount", "amount must be a positive number greater than 0")
	}

	paymentGateway = strings.TrimSpace(paymentGateway)
	if paymentGateway == "" {
		paymentGateway = DefaultPaymentGateway
	}
	if len(paymentGateway) > maxPaymentGatewayLength {
		return nil, NewValidationError("paymentGateway", "paymentGateway must be less than 50 characters")
	}

	return &Donation{
		ID:             uuid.NewString(),
		ProjectID:      projectID,
		Amount:         amount,
		PaymentGateway: paymentGateway,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

// MarshalJSON adds the derived formattedAmount field.
func (d *Donation) MarshalJSON() ([]byte, error) {
	type alias Donation
	return json.Marshal(struct {
		*alias
		FormattedAmount string `json:"formattedAmount"`
	}{
		alias:           (*alias)(d),
		FormattedAmount: d.Amount.Formatted(),
	})
}
