package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fundtracker/internal/domain"
	"fundtracker/internal/middleware"
	"fundtracker/internal/service"
)

type donationRequest struct {
	ProjectID      string      `json:"projectId"`
	Amount         json.Number `json:"amount"`
	PaymentGateway string      `json:"paymentGateway"`
}

// DonationsCreate handles the donation submission path: validate, submit
// through the workflow, and return the donation with the post-update
// project snapshot.
func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	var req donationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		a.respondError(w, r, err)
		return
	}

	donation, project, err := a.Donations.Submit(r.Context(), service.SubmitDonationInput{
		ProjectID:      req.ProjectID,
		Amount:         amount,
		PaymentGateway: req.PaymentGateway,
	})
	if err != nil {
		a.respondError(w, r, err)
		return
	}

	evt := a.Logger.Info().
		Str("donation_id", donation.ID).
		Str("project_id", project.ID).
		Str("amount", donation.Amount.String())
	if country := middleware.CountryFromContext(r.Context()); country != "" {
		evt = evt.Str("country", country)
	}
	evt.Msg("donation accepted")

	a.json(w, http.StatusCreated, map[string]any{
		"donation": donation,
		"project":  project,
	})
}

// DonationsList returns donations across all projects with pagination.
func (a *App) DonationsList(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", service.DefaultListLimit)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		a.respondError(w, r, err)
		return
	}

	donations, limit, offset, err := a.Donations.List(r.Context(), limit, offset)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	if donations == nil {
		donations = []domain.Donation{}
	}
	a.json(w, http.StatusOK, map[string]any{
		"data":   donations,
		"count":  len(donations),
		"limit":  limit,
		"offset": offset,
	})
}

// DonationsDelete removes a donation record.
func (a *App) DonationsDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existed, err := a.Donations.Delete(r.Context(), id)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	if !existed {
		a.error(w, http.StatusNotFound, "not_found", "resource not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseAmount(raw json.Number) (domain.Money, error) {
	if raw == "" {
		return 0, domain.NewValidationError("amount", "amount is required")
	}
	units, err := raw.Float64()
	if err != nil {
		return 0, domain.NewValidationError("amount", "amount must be a number")
	}
	amount, err := domain.MoneyFromFloat(units)
	if err != nil {
		return 0, domain.NewValidationError("amount", err.Error())
	}
	return amount, nil
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, name+" must be an integer")
	}
	return v, nil
}
