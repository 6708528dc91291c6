package handlers

import (
	"errors"
	"net/http"

	"server/internal/middleware"
	"server/internal/storage"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// Signup registers an account and returns a session token so a new user can
// start generating immediately.
func (a *App) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "email and password required")
		return
	}
	if err := a.Users.Signup(req.Email, req.Password); err != nil {
		if errors.Is(err, storage.ErrEmailTaken) {
			a.error(w, http.StatusConflict, "conflict", "email already registered")
			return
		}
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	a.issueToken(w, r, req.Email)
}

// Login verifies credentials and returns a session token.
func (a *App) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !a.decode(w, r, &req) {
		return
	}
	email, err := a.Users.Authenticate(req.Email, req.Password)
	if err != nil {
		a.error(w, http.StatusUnauthorized, "unauthorized", "invalid credentials")
		return
	}
	a.issueToken(w, r, email)
}

func (a *App) issueToken(w http.ResponseWriter, r *http.Request, email string) {
	locale := middleware.LocaleFromContext(r.Context())
	token, err := middleware.SignJWT(a.Config.JWTSecret, middleware.NewClaims(email, locale, a.Config.TokenTTL))
	if err != nil {
		a.Logger.Error().Err(err).Msg("sign jwt failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to sign token")
		return
	}
	a.json(w, http.StatusOK, tokenResponse{Token: token, Email: storage.NormalizeEmail(email)})
}
