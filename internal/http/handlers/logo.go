package handlers

import (
	"net/http"
	"strconv"

	"server/internal/imaging"
	"server/internal/service"
)

const previewMaxDim = 256

type logoRequest struct {
	Industry string `json:"industry"`
	LogoType string `json:"logo_type"`
}

// GenerateLogo composes an image prompt from the brand workspace and renders
// a logo.
func (a *App) GenerateLogo(w http.ResponseWriter, r *http.Request) {
	var req logoRequest
	if !a.decode(w, r, &req) {
		return
	}
	logo, err := a.Brand.GenerateLogo(r.Context(), a.currentUser(r), service.LogoRequest{
		Industry: req.Industry,
		LogoType: req.LogoType,
	})
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.storeLogoAsset(r, logo.Data, logo.MIME)
	a.json(w, http.StatusOK, map[string]any{
		"prompt": logo.Prompt,
		"mime":   logo.MIME,
		"width":  logo.Width,
		"height": logo.Height,
	})
}

// RegenerateLogo re-renders the stored prompt with a fresh seed.
func (a *App) RegenerateLogo(w http.ResponseWriter, r *http.Request) {
	logo, err := a.Brand.RegenerateLogo(r.Context(), a.currentUser(r))
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.storeLogoAsset(r, logo.Data, logo.MIME)
	a.json(w, http.StatusOK, map[string]any{"prompt": logo.Prompt, "mime": logo.MIME})
}

type customizeLogoRequest struct {
	IconStyle string `json:"icon_style,omitempty"`
	Layout    string `json:"layout,omitempty"`
}

// CustomizeLogo re-renders with style qualifiers appended to the prompt.
func (a *App) CustomizeLogo(w http.ResponseWriter, r *http.Request) {
	var req customizeLogoRequest
	if !a.decode(w, r, &req) {
		return
	}
	logo, err := a.Brand.CustomizeLogo(r.Context(), a.currentUser(r), service.CustomizeRequest{
		IconStyle: req.IconStyle,
		Layout:    req.Layout,
	})
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.storeLogoAsset(r, logo.Data, logo.MIME)
	a.json(w, http.StatusOK, map[string]any{"prompt": logo.Prompt, "mime": logo.MIME})
}

// GetLogo streams the current logo image.
func (a *App) GetLogo(w http.ResponseWriter, r *http.Request) {
	logo := a.Brand.CurrentLogo(a.currentUser(r))
	if logo == nil || len(logo.Data) == 0 {
		a.error(w, http.StatusNotFound, "not_found", "no logo generated yet")
		return
	}
	w.Header().Set("Content-Type", logo.MIME)
	w.Header().Set("Content-Length", strconv.Itoa(len(logo.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(logo.Data)
}

// GetLogoPreview streams a downscaled PNG of the current logo for thumbnail
// use.
func (a *App) GetLogoPreview(w http.ResponseWriter, r *http.Request) {
	logo := a.Brand.CurrentLogo(a.currentUser(r))
	if logo == nil || len(logo.Data) == 0 {
		a.error(w, http.StatusNotFound, "not_found", "no logo generated yet")
		return
	}
	preview, err := imaging.PNGPreview(logo.Data, previewMaxDim)
	if err != nil {
		a.Logger.Warn().Err(err).Msg("logo preview failed")
		a.error(w, http.StatusInternalServerError, "internal", "preview unavailable")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(preview)
}

// storeLogoAsset keeps a copy of each rendered logo on disk. Failures are
// logged and ignored; the image in the session is authoritative.
func (a *App) storeLogoAsset(r *http.Request, data []byte, mime string) {
	if a.Assets == nil || len(data) == 0 {
		return
	}
	ext := ".png"
	if mime == "image/jpeg" {
		ext = ".jpg"
	}
	key := "logos/" + storageKeyForUser(a.currentUser(r)) + ext
	if _, err := a.Assets.Write(r.Context(), key, data); err != nil {
		a.Logger.Warn().Err(err).Str("key", key).Msg("logo asset write failed")
	}
}

func storageKeyForUser(email string) string {
	out := make([]rune, 0, len(email))
	for _, r := range email {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '.':
			out = append(out, r)
		case r == '@':
			out = append(out, '_')
		}
	}
	return string(out)
}
