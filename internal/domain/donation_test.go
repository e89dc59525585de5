package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewDonationValidation(t *testing.T) {
	projectID := uuid.NewString()

	tests := []struct {
		name      string
		projectID string
		amount    Money
		gateway   string
		wantField string
	}{
		{name: "valid", projectID: projectID, amount: 100_00, gateway: "PayPal"},
		{name: "missing project id", projectID: "", amount: 100_00, wantField: "projectId"},
		{name: "malformed project id", projectID: "not-a-uuid", amount: 100_00, wantField: "projectId"},
		{name: "zero amount", projectID: projectID, amount: 0, wantField: "amount"},
		{name: "negative amount", projectID: projectID, amount: -100, wantField: "amount"},
		{name: "gateway too long", projectID: projectID, amount: 100_00, gateway: strings.Repeat("x", 51), wantField: "paymentGateway"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			donation, err := NewDonation(tc.projectID, tc.amount, tc.gateway)
			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("NewDonation returned error: %v", err)
				}
				if donation.ID == "" {
					t.Fatalf("expected generated id")
				}
				if donation.CreatedAt.IsZero() {
					t.Fatalf("expected creation timestamp")
				}
				return
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Field != tc.wantField {
				t.Fatalf("Field = %q, want %q", vErr.Field, tc.wantField)
			}
		})
	}
}

func TestNewDonationDefaultsGateway(t *testing.T) {
	donation, err := NewDonation(uuid.NewString(), 100_00, "  ")
	if err != nil {
		t.Fatalf("NewDonation returned error: %v", err)
	}
	if donation.PaymentGateway != DefaultPaymentGateway {
		t.Fatalf("PaymentGateway = %q, want %q", donation.PaymentGateway, DefaultPaymentGateway)
	}
}

func TestDonationJSONIncludesFormattedAmount(t *testing.T) {
	donation, err := NewDonation(uuid.NewString(), 2500_00, "Stripe")
	if err != nil {
		t.Fatalf("NewDonation returned error: %v", err)
	}

	out, err := json.Marshal(donation)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["amount"] != float64(2500) {
		t.Fatalf("amount = %v, want 2500", decoded["amount"])
	}
	if decoded["formattedAmount"] != "$2,500.00" {
		t.Fatalf("formattedAmount = %v, want $2,500.00", decoded["formattedAmount"])
	}
	if decoded["paymentGateway"] != "Stripe" {
		t.Fatalf("paymentGateway = %v, want Stripe", decoded["paymentGateway"])
	}
}
