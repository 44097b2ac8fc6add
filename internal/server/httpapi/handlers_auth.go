package httpapi

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/pandax-i/healthhub/internal/common"
)

func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	user, err := a.users.Register(ctx, req.Email, req.Password)
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{"id": user.ID, "email": user.Email})
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	token, err := a.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

// handleOAuthStart sends the browser to the identity provider.
func (a *API) handleOAuthStart(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, a.oauth.AuthCodeURL(), http.StatusFound)
}

// handleOAuthCallback redeems the authorization code and hands the session
// token to the front end as a query parameter on the callback page.
func (a *API) handleOAuthCallback(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	token, err := a.oauth.Complete(ctx, r.URL.Query().Get("code"))
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			respondError(w, http.StatusBadRequest, "missing authorization code")
			return
		}
		a.logger.Error(r.Context(), "oauth login failed", "error", err)
		respondError(w, http.StatusInternalServerError, "login failed")
		return
	}

	http.Redirect(w, r, a.frontendCallbackURL+"?token="+url.QueryEscape(token), http.StatusFound)
}

func (a *API) handleMe(w http.ResponseWriter, r *http.Request) {
	id := identityFromContext(r.Context())

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	profile, err := a.users.Profile(ctx, id.UserID)
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

func (a *API) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	id := identityFromContext(r.Context())

	var req struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	if err := a.users.ChangePassword(ctx, id.UserID, req.OldPassword, req.NewPassword); err != nil {
		a.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}
