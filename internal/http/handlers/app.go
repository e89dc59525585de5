package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"fundtracker/internal/domain"
	"fundtracker/internal/service"
)

// DBPinger is the slice of the connection pool the health check needs.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// App bundles the handler dependencies.
type App struct {
	Projects  *service.ProjectService
	Donations *service.DonationService
	DB        DBPinger
	Logger    zerolog.Logger
	Env       string
	Version   string

	startedAt time.Time
}

// NewApp creates the handler container.
func NewApp(projects *service.ProjectService, donations *service.DonationService, db DBPinger, logger zerolog.Logger, env, version string) *App {
	return &App{
		Projects:  projects,
		Donations: donations,
		DB:        db,
		Logger:    logger,
		Env:       env,
		Version:   version,
		startedAt: time.Now(),
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, map[string]any{"error": errCode, "message": message})
}

// respondError classifies a service error into the HTTP taxonomy.
// Validation and not-found resolve here; everything else is a logged 500
// that leaks no internals outside development.
func (a *App) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		a.json(w, http.StatusBadRequest, map[string]any{
			"error":   "bad_request",
			"message": "Validation failed",
			"fields":  map[string]string{vErr.Field: vErr.Message},
		})
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		a.error(w, http.StatusNotFound, "not_found", "resource not found")
		return
	}

	a.Logger.Error().
		Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("request failed")

	message := "internal server error"
	if a.Env == "development" {
		message = err.Error()
	}
	a.error(w, http.StatusInternalServerError, "internal", message)
}
