package utils

import (
	"context"
	"net/http"

	"unalon_server/services"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "unalon_session"

type contextKey string

const userIDKey contextKey = "userID"

// RequireSession resolves the session cookie and stores the logged-in
// user's id in the request context. Requests without a valid, unexpired
// session are rejected with 401.
func RequireSession(sessions *services.SessionService, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil {
			JSONError(w, http.StatusUnauthorized, services.KindUnauthorized, "Unauthorized")
			return
		}

		session, ok := sessions.Get(cookie.Value)
		if !ok {
			JSONError(w, http.StatusUnauthorized, services.KindUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, session.UserID)
		next(w, r.WithContext(ctx))
	}
}

// UserIDFromContext returns the user id stashed by RequireSession.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

// SetSessionCookie attaches a session token to the response.
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(services.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie on the client.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
