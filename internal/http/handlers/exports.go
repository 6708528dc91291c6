package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"server/internal/export"
)

// ExportJSON downloads the brand data as JSON.
func (a *App) ExportJSON(w http.ResponseWriter, r *http.Request) {
	snap := a.Brand.Snapshot(a.currentUser(r), a.currentUser(r))
	data, err := export.JSON(snap)
	if err != nil {
		a.Logger.Error().Err(err).Msg("json export failed")
		a.error(w, http.StatusInternalServerError, "internal", "export failed")
		return
	}
	serveDownload(w, data, "application/json", export.FileBase(snap)+"_data.json")
}

// ExportText downloads the marketing copy as plain text.
func (a *App) ExportText(w http.ResponseWriter, r *http.Request) {
	snap := a.Brand.Snapshot(a.currentUser(r), a.currentUser(r))
	serveDownload(w, []byte(export.Text(snap)), "text/plain; charset=utf-8", export.FileBase(snap)+"_copy.txt")
}

// ExportPDF downloads the PDF brand kit.
func (a *App) ExportPDF(w http.ResponseWriter, r *http.Request) {
	user := a.currentUser(r)
	snap := a.Brand.Snapshot(user, user)
	var logoPNG []byte
	if logo := a.Brand.CurrentLogo(user); logo != nil && logo.MIME == "image/png" {
		logoPNG = logo.Data
	}
	data, err := export.PDF(snap, logoPNG)
	if err != nil {
		a.Logger.Error().Err(err).Msg("pdf export failed")
		a.error(w, http.StatusInternalServerError, "internal", "export failed")
		return
	}
	serveDownload(w, data, export.PDFContentType(), export.FileBase(snap)+"_brandkit.pdf")
}

// ExportBundle downloads the zip archive with every export format plus the
// logo image.
func (a *App) ExportBundle(w http.ResponseWriter, r *http.Request) {
	user := a.currentUser(r)
	snap := a.Brand.Snapshot(user, user)
	data, err := export.Bundle(snap, a.Brand.CurrentLogo(user))
	if err != nil {
		a.Logger.Error().Err(err).Msg("bundle export failed")
		a.error(w, http.StatusInternalServerError, "internal", "export failed")
		return
	}
	serveDownload(w, data, "application/zip", export.FileBase(snap)+"_brandkit.zip")
}

type saveProjectRequest struct {
	ProjectName string `json:"project_name,omitempty"`
}

// SaveProject persists the current workspace snapshot under the account.
func (a *App) SaveProject(w http.ResponseWriter, r *http.Request) {
	var req saveProjectRequest
	if !a.decode(w, r, &req) {
		return
	}
	user := a.currentUser(r)
	rec, err := a.Projects.Save(user, req.ProjectName, a.Brand.Snapshot(user, user))
	if err != nil {
		a.Logger.Error().Err(err).Msg("project save failed")
		a.error(w, http.StatusInternalServerError, "internal", "save failed")
		return
	}
	if err := a.Users.AttachProject(user, rec.ID); err != nil {
		a.Logger.Warn().Err(err).Msg("attach project to account failed")
	}
	a.json(w, http.StatusOK, map[string]any{
		"id":           rec.ID,
		"project_name": rec.ProjectName,
		"saved_at":     rec.SavedAt,
	})
}

// ListProjects returns the account's saved projects, newest first.
func (a *App) ListProjects(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"projects": a.Projects.ListByOwner(a.currentUser(r))})
}

// GetProject returns one saved project.
func (a *App) GetProject(w http.ResponseWriter, r *http.Request) {
	rec, err := a.Projects.Get(a.currentUser(r), chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, rec)
}

// DeleteProject removes one saved project.
func (a *App) DeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := a.Projects.Delete(a.currentUser(r), chi.URLParam(r, "id")); err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func serveDownload(w http.ResponseWriter, data []byte, contentType, filename string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
