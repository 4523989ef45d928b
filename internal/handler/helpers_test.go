package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/bhushansable/Gurukrupa-Mess/internal/auth"
	"github.com/bhushansable/Gurukrupa-Mess/internal/handler"
	"github.com/bhushansable/Gurukrupa-Mess/internal/memstore"
	mw "github.com/bhushansable/Gurukrupa-Mess/internal/middleware"
)

const testSecret = "test-secret"

func TestMain(m *testing.M) {
	memstore.HashCost = bcrypt.MinCost
	os.Exit(m.Run())
}

// --- Helpers ---

func newSeededStore(t *testing.T) *memstore.Store {
	t.Helper()
	store := memstore.New().WithClock(func() time.Time {
		return time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	})
	if _, err := store.Seed(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return store
}

func setupRouter(store *memstore.Store) *chi.Mux {
	authHandler := handler.NewAuthHandler(store, testSecret)
	menuHandler := handler.NewMenuHandler(store)
	planHandler := handler.NewPlanHandler(store)
	orderHandler := handler.NewOrderHandler(store)
	subscriptionHandler := handler.NewSubscriptionHandler(store)
	adminHandler := handler.NewAdminHandler(store, store)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		authHandler.RegisterRoutes(r)
		menuHandler.RegisterRoutes(r)
		planHandler.RegisterRoutes(r)
		adminHandler.RegisterRoutes(r)
		r.Group(func(r chi.Router) {
			r.Use(mw.Authenticate(testSecret, store))
			authHandler.RegisterSessionRoutes(r)
			orderHandler.RegisterRoutes(r)
			subscriptionHandler.RegisterRoutes(r)
			adminHandler.RegisterSessionRoutes(r)
			r.Group(func(r chi.Router) {
				r.Use(mw.RequireAdmin)
				menuHandler.RegisterAdminRoutes(r)
				planHandler.RegisterAdminRoutes(r)
				orderHandler.RegisterAdminRoutes(r)
				subscriptionHandler.RegisterAdminRoutes(r)
				adminHandler.RegisterAdminRoutes(r)
			})
		})
	})
	return r
}

func tokenFor(t *testing.T, store *memstore.Store, email string) string {
	t.Helper()
	u, err := store.UserByEmail(context.Background(), email)
	if err != nil {
		t.Fatalf("user %s: %v", email, err)
	}
	token, err := auth.GenerateToken(testSecret, u.ID, u.Role)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return token
}

func doRequest(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func decodeListResponse(t *testing.T, rr *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var resp []map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func expectStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, want, rr.Body.String())
	}
}

func expectDetail(t *testing.T, rr *httptest.ResponseRecorder, status int, detail string) {
	t.Helper()
	expectStatus(t, rr, status)
	resp := decodeResponse(t, rr)
	if resp["detail"] != detail {
		t.Errorf("detail: got %v, want %q", resp["detail"], detail)
	}
}
