package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"fundtracker/internal/http/handlers"
	"fundtracker/internal/infra"
	"fundtracker/internal/middleware"
)

// RouterDeps carries the router's collaborators beyond the handlers.
type RouterDeps struct {
	Config        *infra.Config
	Logger        infra.Logger
	RateCounter   middleware.Counter
	CountryLookup middleware.CountryLookup
}

// NewRouter assembles the HTTP surface: global middleware, health and
// welcome routes, and the versioned API. The rate limiter guards only the
// donation submission path.
func NewRouter(app *handlers.App, deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Country(deps.CountryLookup),
		middleware.Logger(deps.Logger),
		middleware.SecureHeaders,
		middleware.CORS(deps.Config.CORSOrigins),
	)

	r.Get("/health", app.Health)
	r.Get("/", app.Root)

	limiter := middleware.RateLimit(
		int64(deps.Config.RateLimitMax),
		deps.Config.RateLimitWindow,
		deps.RateCounter,
		deps.Logger,
	)

	r.Route("/api/"+deps.Config.APIVersion, func(r chi.Router) {
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", app.ProjectsList)
			r.Get("/{id}", app.ProjectsGet)
			r.Get("/{id}/donations", app.ProjectDonationsList)
		})

		r.With(limiter).Post("/donate", app.DonationsCreate)

		r.Route("/donations", func(r chi.Router) {
			r.Get("/", app.DonationsList)
			r.Get("/stats", app.DonationsStats)
			r.Delete("/{id}", app.DonationsDelete)
		})
	})

	r.NotFound(app.NotFound)

	return r
}
