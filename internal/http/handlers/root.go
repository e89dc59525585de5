package handlers

import "net/http"

// Root is the welcome document listing the public endpoints.
func (a *App) Root(w http.ResponseWriter, r *http.Request) {
	prefix := "/api/" + a.Version
	a.json(w, http.StatusOK, map[string]any{
		"message": "Welcome to the Donation Tracker API",
		"version": a.Version,
		"endpoints": map[string]string{
			"health":    "/health",
			"projects":  prefix + "/projects",
			"donate":    prefix + "/donate",
			"donations": prefix + "/donations",
			"stats":     prefix + "/donations/stats",
		},
	})
}

// NotFound is the JSON 404 for unknown routes.
func (a *App) NotFound(w http.ResponseWriter, r *http.Request) {
	a.Logger.Warn().Str("path", r.URL.Path).Str("method", r.Method).Msg("route not found")
	a.error(w, http.StatusNotFound, "not_found", "route not found")
}
