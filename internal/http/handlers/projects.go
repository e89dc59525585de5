package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"fundtracker/internal/domain"
)

// ProjectsList returns all projects, newest first.
func (a *App) ProjectsList(w http.ResponseWriter, r *http.Request) {
	projects, err := a.Projects.List(r.Context())
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	a.json(w, http.StatusOK, map[string]any{"data": projects, "count": len(projects)})
}

// ProjectsGet returns one project by id.
func (a *App) ProjectsGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	project, err := a.Projects.Get(r.Context(), id)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"data": project})
}

// ProjectDonationsList returns a project's donations, newest first.
func (a *App) ProjectDonationsList(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	donations, err := a.Donations.ListByProject(r.Context(), id)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	if donations == nil {
		donations = []domain.Donation{}
	}
	a.json(w, http.StatusOK, map[string]any{"data": donations, "count": len(donations)})
}
