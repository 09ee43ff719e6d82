package handlers

import (
	"net/http"
	"time"

	"github.com/pribylovaa/bank-backoffice/internal/apperr"
	"github.com/pribylovaa/bank-backoffice/internal/http/middleware"
	"github.com/pribylovaa/bank-backoffice/internal/models"
	"github.com/pribylovaa/bank-backoffice/internal/service"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type signupResponse struct {
	UserID string `json:"user_id"`
}

type tokenResponse struct {
	Token     string `json:"token"`
	JTI       string `json:"jti"`
	ExpiresIn int64  `json:"expires_in"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var in credentialsRequest
	if err := decodeStrict(r, &in); err != nil {
		writeError(w, r, errInvalidBody)
		return
	}

	id, err := h.Auth.Signup(r.Context(), in.Username, in.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, signupResponse{UserID: id.String()})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var in credentialsRequest
	if err := decodeStrict(r, &in); err != nil {
		writeError(w, r, errInvalidBody)
		return
	}

	pair, err := h.Auth.Login(r.Context(), in.Username, in.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.setRefreshCookie(w, pair)
	writeJSON(w, http.StatusOK, toTokenResponse(pair))
}

// Refresh ротирует refresh-cookie. При отказе cookie удаляется, кроме
// случая недоступного хранилища: там токен может быть ещё действителен.
func (h *Handlers) Refresh(w http.ResponseWriter, r *http.Request) {
	pair, err := h.Auth.Refresh(r.Context(), h.refreshCookie(r))
	if err != nil {
		if e, ok := apperr.From(err); ok && e.Kind == apperr.KindUnauthenticated {
			h.clearRefreshCookie(w)
		}
		writeError(w, r, err)
		return
	}

	h.setRefreshCookie(w, pair)
	writeJSON(w, http.StatusOK, toTokenResponse(pair))
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	err := h.Auth.Logout(r.Context(), middleware.BearerToken(r), h.refreshCookie(r))
	h.clearRefreshCookie(w)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, r, service.ErrMissingToken)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func toTokenResponse(p *models.TokenPair) tokenResponse {
	return tokenResponse{
		Token:     p.AccessToken,
		JTI:       p.AccessJTI,
		ExpiresIn: int64(p.AccessExpiresIn / time.Second),
	}
}

func (h *Handlers) refreshCookie(r *http.Request) string {
	c, err := r.Cookie(h.Cookie.Name)
	if err != nil {
		return ""
	}
	return c.Value
}

func (h *Handlers) setRefreshCookie(w http.ResponseWriter, p *models.TokenPair) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.Cookie.Name,
		Value:    p.RefreshToken,
		Path:     h.cookiePath(),
		Expires:  p.RefreshExpiresAt,
		HttpOnly: true,
		Secure:   h.Cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handlers) clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.Cookie.Name,
		Value:    "",
		Path:     h.cookiePath(),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handlers) cookiePath() string {
	if h.Cookie.Path == "" {
		return "/"
	}
	return h.Cookie.Path
}
