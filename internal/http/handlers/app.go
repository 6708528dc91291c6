// Package handlers exposes the brand generation workflow over HTTP.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"server/internal/infra"
	"server/internal/middleware"
	"server/internal/service"
	"server/internal/storage"
)

// App bundles the dependencies every handler needs.
type App struct {
	Config   *infra.Config
	Logger   zerolog.Logger
	Brand    *service.BrandService
	Users    *storage.UserStore
	Projects *storage.ProjectStore
	Assets   *storage.FileStore
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, kind, msg string) {
	a.json(w, code, map[string]string{"error": kind, "message": msg})
}

// currentUser returns the authenticated account email. It is empty only when
// a route was wired outside the auth group by mistake.
func (a *App) currentUser(r *http.Request) string {
	return middleware.UserFromContext(r.Context())
}

func (a *App) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return false
	}
	return true
}
