package handlers

import (
	"net/http"
)

// AnalyzeStory scores the sentiment of the session's brand story.
func (a *App) AnalyzeStory(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"sentiment": a.Brand.AnalyzeStory(a.currentUser(r))})
}

type analyzeTextRequest struct {
	Text string `json:"text"`
}

// AnalyzeText scores arbitrary copy.
func (a *App) AnalyzeText(w http.ResponseWriter, r *http.Request) {
	var req analyzeTextRequest
	if !a.decode(w, r, &req) {
		return
	}
	a.json(w, http.StatusOK, map[string]any{"sentiment": a.Brand.AnalyzeText(req.Text)})
}

type rewriteRequest struct {
	Text       string `json:"text"`
	TargetTone string `json:"target_tone"`
}

// RewriteForTone rewrites copy toward a target tone.
func (a *App) RewriteForTone(w http.ResponseWriter, r *http.Request) {
	var req rewriteRequest
	if !a.decode(w, r, &req) {
		return
	}
	text, err := a.Brand.RewriteForTone(r.Context(), a.currentUser(r), req.Text, req.TargetTone)
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]string{"text": text})
}

type summarizeRequest struct {
	Text string `json:"text"`
}

// Summarize condenses copy into a short summary.
func (a *App) Summarize(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if !a.decode(w, r, &req) {
		return
	}
	text, err := a.Brand.SummarizeText(r.Context(), a.currentUser(r), req.Text)
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]string{"summary": text})
}

type consultRequest struct {
	Message string `json:"message"`
}

// Consult runs one consultant chat turn.
func (a *App) Consult(w http.ResponseWriter, r *http.Request) {
	var req consultRequest
	if !a.decode(w, r, &req) {
		return
	}
	reply, err := a.Brand.Consult(r.Context(), a.currentUser(r), req.Message)
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]string{"reply": reply})
}

// ConsultHistory returns the recorded conversation.
func (a *App) ConsultHistory(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"messages": a.Brand.ChatHistory(a.currentUser(r))})
}
