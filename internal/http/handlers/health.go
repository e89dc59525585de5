package handlers

import (
	"context"
	"net/http"
	"time"
)

// Health reports service and database status. Returns 503 when the
// database does not answer a ping.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "connected"
	code := http.StatusOK
	if a.DB == nil {
		dbStatus = "unconfigured"
		code = http.StatusServiceUnavailable
	} else if err := a.DB.Ping(ctx); err != nil {
		a.Logger.Error().Err(err).Msg("health check database ping failed")
		dbStatus = "disconnected"
		code = http.StatusServiceUnavailable
	}

	status := "OK"
	if code != http.StatusOK {
		status = "ERROR"
	}

	a.json(w, code, map[string]any{
		"status":      status,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"uptime":      time.Since(a.startedAt).Seconds(),
		"environment": a.Env,
		"database":    dbStatus,
		"version":     a.Version,
	})
}
