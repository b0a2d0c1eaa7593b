package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/taskdeck/taskdeck-go/internal/crypto"
	"github.com/taskdeck/taskdeck-go/internal/model"
)

type contextKey string

const identityKey contextKey = "identity"

// JWTAuth returns middleware that validates a Bearer token from the
// Authorization header and attaches the decoded identity to the request
// context. Expired and invalid tokens are rejected with distinct
// messages; any other verification failure is an internal error.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "No token provided")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeJSONError(w, http.StatusUnauthorized, "No token provided")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				switch {
				case errors.Is(err, crypto.ErrTokenExpired):
					writeJSONError(w, http.StatusUnauthorized, "Token expired")
				case errors.Is(err, crypto.ErrTokenInvalid):
					writeJSONError(w, http.StatusUnauthorized, "Invalid token")
				default:
					writeJSONError(w, http.StatusInternalServerError, "Authentication error")
				}
				return
			}

			ident := model.Identity{
				UserID: claims.UserID,
				Email:  claims.Email,
				Role:   claims.Role,
			}
			ctx := context.WithValue(r.Context(), identityKey, ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects any request whose authenticated identity is not
// an admin. It composes after JWTAuth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := IdentityFromContext(r.Context())
		if !ok {
			writeJSONError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		if ident.Role != model.RoleAdmin {
			writeJSONError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// IdentityFromContext extracts the authenticated identity from the
// request context.
func IdentityFromContext(ctx context.Context) (model.Identity, bool) {
	ident, ok := ctx.Value(identityKey).(model.Identity)
	return ident, ok
}

// WithIdentity returns a context carrying the given identity. Intended
// for tests and in-process calls that bypass the HTTP gate.
func WithIdentity(ctx context.Context, ident model.Identity) context.Context {
	return context.WithValue(ctx, identityKey, ident)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"success": false, "message": msg})
}
