package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"

	"whatshouldweeat/internal/service"
)

type contextKey string

const (
	SessionIDKey contextKey = "sessionId"
	ClientIDKey  contextKey = "clientId"
)

// SessionMiddleware validates quiz session tokens
type SessionMiddleware struct {
	tokenSvc *service.TokenService
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(tokenSvc *service.TokenService) *SessionMiddleware {
	return &SessionMiddleware{tokenSvc: tokenSvc}
}

// RequireSession validates the session JWT from the Authorization
// header (or the token query param for WebSocket upgrades) and puts the
// session id on the request context
func (m *SessionMiddleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			token = r.URL.Query().Get("token")
		}
		if token == "" {
			http.Error(w, `{"error":"missing session token"}`, http.StatusUnauthorized)
			return
		}

		claims, err := m.tokenSvc.ValidateSessionToken(token)
		if err != nil {
			http.Error(w, `{"error":"invalid or expired session token"}`, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), SessionIDKey, claims.SessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionID extracts the session id from context
func GetSessionID(ctx context.Context) string {
	if v := ctx.Value(SessionIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// ClientID identifies the caller for usage counting and rate limiting:
// the X-Client-ID header when the frontend supplies one, otherwise the
// remote IP.
func ClientID(r *http.Request) string {
	if id := r.Header.Get("X-Client-ID"); id != "" {
		return id
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
