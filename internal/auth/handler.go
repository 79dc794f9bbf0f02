package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/mywebsite/privatemedia/internal/response"
)

// SessionCookie is the cookie carrying the opaque session token.
const SessionCookie = "media_session"

// SessionStore is the subset of the session store the auth endpoints need.
type SessionStore interface {
	Create(ctx context.Context, role Role, ttl time.Duration) (string, error)
	Delete(ctx context.Context, token string) error
}

// Handler holds HTTP handlers for the authenticate and logout endpoints.
type Handler struct {
	svc      *Service
	sessions SessionStore
	ttl      time.Duration
	secure   bool
}

// NewHandler creates a new auth Handler. secure controls the cookie's Secure flag.
func NewHandler(svc *Service, sessions SessionStore, ttl time.Duration, secure bool) *Handler {
	return &Handler{svc: svc, sessions: sessions, ttl: ttl, secure: secure}
}

type passwordRequest struct {
	Password string `json:"password"`
}

type roleResponse struct {
	Role string `json:"role" example:"ADMIN"`
}

// Authenticate godoc
//
//	@Summary		Authenticate
//	@Description	Check the shared-secret password and start a session. Returns the resulting role (ADMIN or USER). No hint is given about which password was wrong.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		passwordRequest	true	"Password"
//	@Success		200		{object}	roleResponse
//	@Failure		400		{object}	response.Envelope
//	@Failure		401		{object}	response.Envelope
//	@Router			/authenticate [post]
func (h *Handler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req passwordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	role, ok := h.svc.Authenticate(req.Password)
	if !ok {
		response.Unauthorized(w, "invalid credentials")
		return
	}

	token, err := h.sessions.Create(r.Context(), role, h.ttl)
	if err != nil {
		response.InternalError(w)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	response.JSON(w, http.StatusOK, roleResponse{Role: string(role)})
}

// Logout godoc
//
//	@Summary		Logout
//	@Description	Destroy the current session. Idempotent: a second call on an already-empty session still returns 200.
//	@Tags			auth
//	@Success		200
//	@Router			/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		if err := h.sessions.Delete(r.Context(), c.Value); err != nil {
			log.Printf("auth: delete session: %v", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusOK)
}
