package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bhushansable/Gurukrupa-Mess/internal/api"
	"github.com/bhushansable/Gurukrupa-Mess/internal/auth"
	"github.com/bhushansable/Gurukrupa-Mess/internal/memstore"
	"github.com/bhushansable/Gurukrupa-Mess/internal/middleware"
)

const testSecret = "test-secret"

type mockUsers map[string]memstore.User

func (m mockUsers) UserByID(_ context.Context, id string) (memstore.User, error) {
	u, ok := m[id]
	if !ok {
		return memstore.User{}, memstore.ErrNotFound
	}
	return u, nil
}

var users = mockUsers{
	"u-admin":    {User: api.User{ID: "u-admin", Name: "Admin", Role: "admin"}},
	"u-customer": {User: api.User{ID: "u-customer", Name: "Rahul", Role: "customer"}},
}

func serve(t *testing.T, h http.Handler, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func detail(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body["detail"]
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_ValidToken(t *testing.T) {
	token, _ := auth.GenerateToken(testSecret, "u-customer", "customer")

	handler := middleware.Authenticate(testSecret, users)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := middleware.UserFromContext(r.Context())
		if user == nil {
			t.Fatal("expected user in context")
		}
		if user.Name != "Rahul" {
			t.Errorf("user: got %q, want Rahul", user.Name)
		}
		w.WriteHeader(http.StatusOK)
	}))

	rr := serve(t, handler, token)
	if rr.Code != http.StatusOK {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestAuthenticate_MissingToken(t *testing.T) {
	rr := serve(t, middleware.Authenticate(testSecret, users)(okHandler()), "")
	if rr.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusForbidden)
	}
	if got := detail(t, rr); got != "Not authenticated" {
		t.Errorf("detail: got %q", got)
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	rr := serve(t, middleware.Authenticate(testSecret, users)(okHandler()), "invalid-token")
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusUnauthorized)
	}
	if got := detail(t, rr); got != "Invalid token" {
		t.Errorf("detail: got %q", got)
	}
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	token, _ := auth.GenerateToken(testSecret, "u-deleted", "customer")
	rr := serve(t, middleware.Authenticate(testSecret, users)(okHandler()), token)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusUnauthorized)
	}
	if got := detail(t, rr); got != "User not found" {
		t.Errorf("detail: got %q", got)
	}
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name   string
		userID string
		want   int
	}{
		{"admin", "u-admin", http.StatusOK},
		{"customer", "u-customer", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, _ := auth.GenerateToken(testSecret, tt.userID, "")
			h := middleware.Authenticate(testSecret, users)(middleware.RequireAdmin(okHandler()))
			rr := serve(t, h, token)
			if rr.Code != tt.want {
				t.Fatalf("status: got %d, want %d", rr.Code, tt.want)
			}
			if tt.want == http.StatusForbidden {
				if got := detail(t, rr); got != "Admin access required" {
					t.Errorf("detail: got %q", got)
				}
			}
		})
	}
}
