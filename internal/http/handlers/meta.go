package handlers

import (
	"net/http"

	"server/internal/domain"
)

// Languages lists the supported content languages.
func (a *App) Languages(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"languages": domain.Languages})
}

// LogoTypes lists the supported logo compositions.
func (a *App) LogoTypes(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"logo_types": domain.LogoTypes})
}
