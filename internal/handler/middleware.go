package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/pmendys/course-match/internal/service"
)

type contextKey string

const sessionContextKey contextKey = "session"

const sessionCookieName = "session_token"

// SessionIDFromContext extracts the session id from the request
// context. Returns empty if the middleware did not run.
func SessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionContextKey).(string)
	return id
}

// WithSession ensures every request carries a live session. It reads
// the signed session cookie and, when the cookie is missing, invalid,
// or points at a session this process no longer knows, mints a fresh
// entry-screen session and sets a new cookie. The cookie carries only
// the opaque session id; this is session plumbing, not authentication.
func WithSession(sessions *service.Orchestrator, signer *service.TokenSigner, cookieSecure bool, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := sessionFromRequest(r, sessions, signer)
		if !ok {
			id, _ = sessions.Start()
			token, err := signer.Sign(id)
			if err != nil {
				slog.Error("sign session token", "error", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				Secure:   cookieSecure,
				SameSite: http.SameSiteLaxMode,
				MaxAge:   86400, // 24 hours
			})
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionFromRequest(r *http.Request, sessions *service.Orchestrator, signer *service.TokenSigner) (string, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return "", false
	}
	id, err := signer.Validate(cookie.Value)
	if err != nil {
		return "", false
	}
	if _, err := sessions.Current(id); err != nil {
		return "", false
	}
	return id, true
}

// SecurityHeaders sets baseline security headers on every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
