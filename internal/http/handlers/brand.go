package handlers

import (
	"errors"
	"net/http"

	"server/internal/domain"
	"server/internal/middleware"
	"server/internal/service"
)

type namesRequest struct {
	BusinessDescription string `json:"business_description"`
	Industry            string `json:"industry"`
	Language            string `json:"language,omitempty"`
	Count               int    `json:"count,omitempty"`
}

// GenerateNames produces a fresh list of candidate brand names. Any previous
// name selection is cleared.
func (a *App) GenerateNames(w http.ResponseWriter, r *http.Request) {
	var req namesRequest
	if !a.decode(w, r, &req) {
		return
	}
	names, err := a.Brand.GenerateNames(r.Context(), a.currentUser(r), service.NamesRequest{
		BusinessDescription: req.BusinessDescription,
		Industry:            req.Industry,
		Language:            a.requestLanguage(r, req.Language),
		Count:               req.Count,
	})
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"names": names})
}

type selectNameRequest struct {
	Name string `json:"name"`
}

// SelectName commits to one of the generated candidates.
func (a *App) SelectName(w http.ResponseWriter, r *http.Request) {
	var req selectNameRequest
	if !a.decode(w, r, &req) {
		return
	}
	selected, err := a.Brand.SelectName(a.currentUser(r), req.Name)
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]string{"selected_name": selected})
}

type taglinesRequest struct {
	BusinessDescription string `json:"business_description"`
	Language            string `json:"language,omitempty"`
	Count               int    `json:"count,omitempty"`
}

func (a *App) GenerateTaglines(w http.ResponseWriter, r *http.Request) {
	var req taglinesRequest
	if !a.decode(w, r, &req) {
		return
	}
	taglines, err := a.Brand.GenerateTaglines(r.Context(), a.currentUser(r), service.TaglinesRequest{
		BusinessDescription: req.BusinessDescription,
		Language:            a.requestLanguage(r, req.Language),
		Count:               req.Count,
	})
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"taglines": taglines})
}

type storyRequest struct {
	BusinessDescription string `json:"business_description"`
	Industry            string `json:"industry"`
	Language            string `json:"language,omitempty"`
}

func (a *App) GenerateStory(w http.ResponseWriter, r *http.Request) {
	var req storyRequest
	if !a.decode(w, r, &req) {
		return
	}
	story, err := a.Brand.GenerateStory(r.Context(), a.currentUser(r), service.StoryRequest{
		BusinessDescription: req.BusinessDescription,
		Industry:            req.Industry,
		Language:            a.requestLanguage(r, req.Language),
	})
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"story": story})
}

// UpdateStory stores hand-edited story sections.
func (a *App) UpdateStory(w http.ResponseWriter, r *http.Request) {
	var story domain.StoryContent
	if !a.decode(w, r, &story) {
		return
	}
	a.Brand.UpdateStory(a.currentUser(r), story)
	a.json(w, http.StatusOK, map[string]any{"story": story})
}

type marketingRequest struct {
	BusinessDescription string `json:"business_description"`
	Language            string `json:"language,omitempty"`
}

func (a *App) GenerateMarketing(w http.ResponseWriter, r *http.Request) {
	var req marketingRequest
	if !a.decode(w, r, &req) {
		return
	}
	content, err := a.Brand.GenerateMarketing(r.Context(), a.currentUser(r), service.MarketingRequest{
		BusinessDescription: req.BusinessDescription,
		Language:            a.requestLanguage(r, req.Language),
	})
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"marketing": content})
}

// GetBrand returns the current session workspace.
func (a *App) GetBrand(w http.ResponseWriter, r *http.Request) {
	brand, style, language := a.Brand.Workspace(a.currentUser(r))
	a.json(w, http.StatusOK, map[string]any{
		"brand":         brand,
		"palette_style": style,
		"language":      language,
	})
}

// ResetBrand discards the session workspace.
func (a *App) ResetBrand(w http.ResponseWriter, r *http.Request) {
	a.Brand.Reset(a.currentUser(r))
	a.json(w, http.StatusOK, map[string]string{"status": "reset"})
}

// requestLanguage prefers the explicit body value, then the locale resolved
// by the language middleware.
func (a *App) requestLanguage(r *http.Request, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return middleware.LanguageFromContext(r.Context())
}

// domainError translates service errors into the flat error envelope.
func (a *App) domainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrDescriptionRequired),
		errors.Is(err, domain.ErrIndustryRequired),
		errors.Is(err, domain.ErrNameRequired),
		errors.Is(err, domain.ErrUnknownName),
		errors.Is(err, domain.ErrFontNotInCatalog):
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, domain.ErrNameNotSelected), errors.Is(err, domain.ErrNoLogoPrompt):
		a.error(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		a.error(w, http.StatusUnauthorized, "unauthorized", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrProviderFailure):
		a.error(w, http.StatusBadGateway, "provider_failure", "generation backend unavailable")
	default:
		a.error(w, http.StatusInternalServerError, "internal", "unexpected error")
	}
}
