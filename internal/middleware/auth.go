package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/bhushansable/Gurukrupa-Mess/internal/auth"
	"github.com/bhushansable/Gurukrupa-Mess/internal/enum"
	"github.com/bhushansable/Gurukrupa-Mess/internal/memstore"
)

type contextKey string

const userKey contextKey = "user"

// UserLookup resolves the token subject to a stored account.
// Satisfied by *memstore.Store.
type UserLookup interface {
	UserByID(ctx context.Context, id string) (memstore.User, error)
}

// Authenticate validates the bearer token and loads its user into the
// request context.
func Authenticate(jwtSecret string, users UserLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeDetail(w, http.StatusForbidden, "Not authenticated")
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				writeDetail(w, http.StatusForbidden, "Invalid authentication credentials")
				return
			}

			claims, err := auth.ValidateToken(jwtSecret, parts[1])
			if err != nil {
				writeDetail(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			user, err := users.UserByID(r.Context(), claims.UserID())
			if err != nil {
				writeDetail(w, http.StatusUnauthorized, "User not found")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, &user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects users without the admin role.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := UserFromContext(r.Context())
		if user == nil {
			writeDetail(w, http.StatusForbidden, "Not authenticated")
			return
		}
		if user.Role != enum.UserRoleAdmin {
			writeDetail(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserFromContext returns the authenticated user, or nil.
func UserFromContext(ctx context.Context) *memstore.User {
	user, _ := ctx.Value(userKey).(*memstore.User)
	return user
}

// WithUser stores user in ctx the way Authenticate does.
func WithUser(ctx context.Context, user *memstore.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"detail": detail}); err != nil {
		log.Printf("ERROR: failed to encode JSON response: %v", err)
	}
}
