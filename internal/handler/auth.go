package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/aartijoshi3010-cyber/MentalHealth/internal/apperror"
	"github.com/aartijoshi3010-cyber/MentalHealth/internal/auth"
	"github.com/aartijoshi3010-cyber/MentalHealth/internal/service"
	"github.com/aartijoshi3010-cyber/MentalHealth/internal/session"
)

// AuthHandler manages signup, login, logout, and the current-user lookup.
//
// Login creates a server-side session and hands the browser a signed token
// for it in an HttpOnly cookie; logout deletes the session so the cookie is
// useless immediately, not just after the token expires.
type AuthHandler struct {
	accounts *service.AccountService
	tokens   *auth.TokenService
	sessions *session.Manager
	logger   *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(
	accounts *service.AccountService,
	tokens *auth.TokenService,
	sessions *session.Manager,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		tokens:   tokens,
		sessions: sessions,
		logger:   logger,
	}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleSignup registers a new account.
//
// HTTP: POST /api/auth/signup
// Body: {"name":"Asha","email":"asha@example.com","password":"..."}
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.InvalidInput("body", "invalid JSON body"))
		return
	}

	user, err := h.accounts.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// HandleLogin authenticates and starts a session.
//
// HTTP: POST /api/auth/login
//
// The cookie is HttpOnly (scripts can't read it) and SameSite=Lax. Secure
// should be enabled behind HTTPS; left off for local development.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.InvalidInput("body", "invalid JSON body"))
		return
	}

	user, err := h.accounts.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	sess := h.sessions.Start(user.ID)
	tokenStr, err := h.tokens.Generate(sess.ID, sess.ExpiresAt.Sub(sess.CreatedAt))
	if err != nil {
		h.logger.Error("login: token generation failed", slog.String("error", err.Error()))
		h.sessions.End(sess.ID)
		writeError(w, apperror.Storage("issuing session token", err))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    tokenStr,
		Path:     "/",
		MaxAge:   int(sess.ExpiresAt.Sub(sess.CreatedAt).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, user)
}

// HandleLogout ends the current session, if any.
//
// HTTP: POST /api/auth/logout
//
// Always responds 200: logging out with no live session is a no-op, never
// an error. POST rather than GET because it changes state.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if sessionID, ok := auth.SessionIDFromRequest(r, h.tokens, h.sessions); ok {
		h.sessions.End(sessionID)
		h.logger.Info("session ended", slog.String("sessionID", sessionID))
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// HandleMe returns the authenticated user's profile.
//
// HTTP: GET /api/me (RequireSession)
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		// Unreachable on a RequireSession route, but be safe.
		writeError(w, apperror.Unauthenticated())
		return
	}

	user, err := h.accounts.GetUserByID(r.Context(), userID)
	if err != nil {
		h.logger.Error("me: user lookup failed", slog.String("userID", userID))
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
