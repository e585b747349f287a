package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"myticket-storefront/internal/models"

	"github.com/gorilla/sessions"
)

type contextKey string

const (
	// UserContextKey is the context key for the authenticated user
	UserContextKey contextKey = "user"

	// SessionName is the cookie session used across the storefront
	SessionName = "session"
)

// Session value keys
const (
	sessionKeyUserID    = "user_id"
	sessionKeyUserEmail = "user_email"
	sessionKeyToken     = "id_token"
	sessionKeyExpiresAt = "expires_at"
)

// AuthMiddleware gates the selection/checkout flow behind the persisted
// identity session
type AuthMiddleware struct {
	store sessions.Store
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(store sessions.Store) *AuthMiddleware {
	return &AuthMiddleware{store: store}
}

// LoadUser loads the current user from the session and adds it to the
// request context. Requests without a valid session continue
// unauthenticated; RequireAuth decides what that means per route.
func (m *AuthMiddleware) LoadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.store.Get(r, SessionName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		userID, _ := session.Values[sessionKeyUserID].(string)
		token, _ := session.Values[sessionKeyToken].(string)
		if userID == "" || token == "" {
			next.ServeHTTP(w, r)
			return
		}

		if expiresAt, ok := session.Values[sessionKeyExpiresAt].(int64); ok && expiresAt > 0 {
			if time.Now().Unix() >= expiresAt {
				// Session expired, clear it
				ClearAuthSession(session)
				session.Save(r, w)
				next.ServeHTTP(w, r)
				return
			}
		}

		email, _ := session.Values[sessionKeyUserEmail].(string)
		user := &models.User{ID: userID, Email: email}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth ensures the user is authenticated before entering the
// selection/checkout flow, redirecting to the login entry point
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := GetUserFromContext(r.Context())
		if user == nil {
			if acceptsJSON(r) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"authentication required","login_url":"/auth/login"}`))
				return
			}
			http.Redirect(w, r, "/auth/login?redirect="+r.URL.Path, http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetUserFromContext returns the authenticated user, or nil
func GetUserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(UserContextKey).(*models.User)
	return user
}

// SaveAuthSession writes the identity state into the session
func SaveAuthSession(session *sessions.Session, auth *models.AuthSession) {
	session.Values[sessionKeyUserID] = auth.User.ID
	session.Values[sessionKeyUserEmail] = auth.User.Email
	session.Values[sessionKeyToken] = auth.Token
	session.Values[sessionKeyExpiresAt] = auth.ExpiresAt
}

// ClearAuthSession removes the identity state from the session
func ClearAuthSession(session *sessions.Session) {
	delete(session.Values, sessionKeyUserID)
	delete(session.Values, sessionKeyUserEmail)
	delete(session.Values, sessionKeyToken)
	delete(session.Values, sessionKeyExpiresAt)
}

func acceptsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return accept == "" || accept == "*/*" || strings.Contains(accept, "application/json")
}
