package handlers

import (
	"net/http"

	"server/internal/domain"
	"server/internal/service"
)

type paletteRequest struct {
	Industry string `json:"industry,omitempty"`
	Style    string `json:"style,omitempty"`
}

// GeneratePalette returns five hex colors in the requested style. When the
// model output is unusable the static style palette is served instead, so
// this endpoint only fails before a name is selected.
func (a *App) GeneratePalette(w http.ResponseWriter, r *http.Request) {
	var req paletteRequest
	if !a.decode(w, r, &req) {
		return
	}
	colors, err := a.Brand.GeneratePalette(r.Context(), a.currentUser(r), service.PaletteRequest{
		Industry: req.Industry,
		Style:    req.Style,
	})
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"colors": colors})
}

type setColorRequest struct {
	Index int    `json:"index"`
	Color string `json:"color"`
}

// SetColor replaces one palette entry with a hand-picked color.
func (a *App) SetColor(w http.ResponseWriter, r *http.Request) {
	var req setColorRequest
	if !a.decode(w, r, &req) {
		return
	}
	if err := a.Brand.SetColor(a.currentUser(r), req.Index, req.Color); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	a.json(w, http.StatusOK, map[string]any{"colors": a.Brand.PaletteColors(a.currentUser(r))})
}

// PaletteStyles lists the available styles and their descriptions.
func (a *App) PaletteStyles(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"styles": domain.PaletteStyles})
}

type suggestFontsRequest struct {
	Industry string `json:"industry"`
}

// SuggestFonts recommends a font pairing for the industry and stores it.
func (a *App) SuggestFonts(w http.ResponseWriter, r *http.Request) {
	var req suggestFontsRequest
	if !a.decode(w, r, &req) {
		return
	}
	pairing := a.Brand.SuggestFonts(a.currentUser(r), req.Industry)
	a.json(w, http.StatusOK, map[string]any{"fonts": pairing})
}

// SetFonts stores an explicit pairing chosen from the catalog.
func (a *App) SetFonts(w http.ResponseWriter, r *http.Request) {
	var pairing domain.FontPairing
	if !a.decode(w, r, &pairing) {
		return
	}
	if err := a.Brand.SetFonts(a.currentUser(r), pairing); err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"fonts": pairing})
}

// FontCatalog lists the curated font families per role.
func (a *App) FontCatalog(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"catalog": domain.FontCatalog})
}
