package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/aartijoshi3010-cyber/MentalHealth/internal/session"
)

// errNoSession is returned when a token verifies but its session is gone
// (ended, expired, or lost to a restart).
var errNoSession = errors.New("auth: no live session")

// contextKey is unexported so only this package can write the userID value
// into a request context.
type contextKey string

const userIDKey contextKey = "userID"

// CookieName is the session cookie set on login and cleared on logout.
const CookieName = "session"

// RequireSession enforces authentication on protected routes.
//
// It reads the session cookie, verifies the token signature, and looks the
// session up in the manager. Both checks must pass: a well-signed token whose
// session has been ended (logout, expiry, process restart) is rejected the
// same way as a missing or forged one. On success the owning user's ID is
// stored in the request context for handlers to read.
func RequireSession(tokens *TokenService, sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := resolveUser(r, tokens, sessions)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthenticated","message":"sign in to continue"}`))
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext retrieves the authenticated user's ID from the request
// context. Returns ("", false) for anonymous requests.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// SessionIDFromRequest returns the live session ID carried by the request's
// cookie, if any. Used by the logout handler to end the right session.
func SessionIDFromRequest(r *http.Request, tokens *TokenService, sessions *session.Manager) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", false
	}
	sessionID, err := tokens.Validate(cookie.Value)
	if err != nil {
		return "", false
	}
	if _, ok := sessions.Get(sessionID); !ok {
		return "", false
	}
	return sessionID, true
}

// resolveUser maps a request to the user ID of its live session.
func resolveUser(r *http.Request, tokens *TokenService, sessions *session.Manager) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", err
	}

	sessionID, err := tokens.Validate(cookie.Value)
	if err != nil {
		return "", err
	}

	s, ok := sessions.Get(sessionID)
	if !ok {
		return "", errNoSession
	}

	return s.UserID, nil
}
