package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/dancextreme/backend/internal/auth"
	"github.com/dancextreme/backend/internal/service"
)

type contextKey string

// emailKey holds the verified email of the caller in the request context.
const emailKey contextKey = "authEmail"

// EmailFromContext returns the verified caller email, if any.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailKey).(string)
	return email, ok
}

// AuthMiddleware verifies bearer tokens and enforces role requirements.
type AuthMiddleware struct {
	secret []byte
	users  *service.UserService
}

// NewAuthMiddleware constructs an AuthMiddleware.
func NewAuthMiddleware(secret []byte, users *service.UserService) *AuthMiddleware {
	return &AuthMiddleware{secret: secret, users: users}
}

// RequireAuth extracts and verifies the Authorization bearer token. A
// missing credential is 401; a credential that fails signature or expiry
// checks is 403. The verified email is attached to the request context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeError(w, http.StatusUnauthorized, "authorization required")
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			writeError(w, http.StatusUnauthorized, "authorization required")
			return
		}

		email, err := auth.EmailFromToken(tokenString, m.secret)
		if err != nil {
			writeError(w, http.StatusForbidden, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), emailKey, strings.ToLower(email))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole checks the caller's stored role before allowing the request
// through. The guard fails closed: an absent user record is a 403, the same
// as a role mismatch. The check is deliberately not atomic with the guarded
// operation; a role change in between is an accepted race.
func (m *AuthMiddleware) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, ok := EmailFromContext(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "authorization required")
				return
			}

			hasRole, err := m.users.HasRole(r.Context(), email, role)
			if err != nil {
				writeError(w, http.StatusInternalServerError, "role check failed")
				return
			}
			if !hasRole {
				writeError(w, http.StatusForbidden, "insufficient role")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
