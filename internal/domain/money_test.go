package domain

import (
	"encoding/json"
	"math"
	"testing"
)

func TestMoneyFromFloat(t *testing.T) {
	tests := []struct {
		name    string
		units   float64
		want    Money
		wantErr bool
	}{
		{name: "whole units", units: 100, want: 100_00},
		{name: "two decimals", units: 99.95, want: 99_95},
		{name: "single cent", units: 0.01, want: 1},
		{name: "zero", units: 0, want: 0},
		{name: "three decimals rejected", units: 10.555, wantErr: true},
		{name: "nan rejected", units: math.NaN(), wantErr: true},
		{name: "infinity rejected", units: math.Inf(1), wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MoneyFromFloat(tc.units)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("MoneyFromFloat(%v) expected error, got %v", tc.units, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("MoneyFromFloat(%v) returned error: %v", tc.units, err)
			}
			if got != tc.want {
				t.Fatalf("MoneyFromFloat(%v) = %d, want %d", tc.units, got, tc.want)
			}
		})
	}
}

func TestMoneyString(t *testing.T) {
	tests := []struct {
		amount Money
		want   string
	}{
		{amount: 2600_00, want: "2600"},
		{amount: 99_90, want: "99.90"},
		{amount: 5, want: "0.05"},
		{amount: 0, want: "0"},
		{amount: -1_05, want: "-1.05"},
		{amount: -5, want: "-0.05"},
	}

	for _, tc := range tests {
		if got := tc.amount.String(); got != tc.want {
			t.Errorf("Money(%d).String() = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	out, err := json.Marshal(Money(7500_00))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "7500" {
		t.Fatalf("marshal = %s, want 7500", out)
	}

	var m Money
	if err := json.Unmarshal([]byte("99.95"), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m != 99_95 {
		t.Fatalf("unmarshal = %d, want 9995", m)
	}

	if err := json.Unmarshal([]byte(`"not a number"`), &m); err == nil {
		t.Fatalf("expected error for non-numeric amount")
	}
	if err := json.Unmarshal([]byte("10.555"), &m); err == nil {
		t.Fatalf("expected error for sub-cent amount")
	}
}

func TestMoneyFormatted(t *testing.T) {
	if got := Money(2500_00).Formatted(); got != "$2,500.00" {
		t.Fatalf("Formatted() = %q, want %q", got, "$2,500.00")
	}
	if got := Money(99_90).Formatted(); got != "$99.90" {
		t.Fatalf("Formatted() = %q, want %q", got, "$99.90")
	}
}
