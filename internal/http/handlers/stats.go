package handlers

import "net/http"

// DonationsStats returns count, sum and mean over the donation set.
func (a *App) DonationsStats(w http.ResponseWriter, r *http.Request) {
	stats, err := a.Donations.Stats(r.Context())
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"data": stats})
}
