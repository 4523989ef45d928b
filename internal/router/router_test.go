package router_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/bhushansable/Gurukrupa-Mess/internal/api"
	"github.com/bhushansable/Gurukrupa-Mess/internal/config"
	"github.com/bhushansable/Gurukrupa-Mess/internal/memstore"
	"github.com/bhushansable/Gurukrupa-Mess/internal/router"
	"github.com/bhushansable/Gurukrupa-Mess/internal/session"
	"github.com/bhushansable/Gurukrupa-Mess/internal/storage"
)

func TestMain(m *testing.M) {
	memstore.HashCost = bcrypt.MinCost
	os.Exit(m.Run())
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	store := memstore.New()
	if _, err := store.Seed(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	srv := httptest.NewServer(router.New(&config.Config{JWTSecret: "test-secret"}, store))
	t.Cleanup(srv.Close)
	return srv
}

func expectAPIError(t *testing.T, err error, status int, detail string) {
	t.Helper()
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *api.Error, got %v", err)
	}
	if apiErr.StatusCode != status || apiErr.Detail != detail {
		t.Errorf("expected %d %q, got %d %q", status, detail, apiErr.StatusCode, apiErr.Detail)
	}
}

func TestHealth(t *testing.T) {
	srv := newServer(t)
	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := newServer(t)
	req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/api/orders", nil)
	req.Header.Set("Origin", "http://localhost:8081")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	defer resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected allow-origin *, got %q", got)
	}
}

func TestProtectedRoutesWithoutToken(t *testing.T) {
	client := api.New(newServer(t).URL)
	_, err := client.MyOrders(context.Background())
	expectAPIError(t, err, http.StatusForbidden, "Not authenticated")
}

func TestSessionAgainstRouter(t *testing.T) {
	ctx := context.Background()
	srv := newServer(t)
	kv := storage.NewMemory()

	client := api.New(srv.URL)
	sess := session.New(client, kv)
	if _, err := sess.Login(ctx, memstore.CustomerEmail, memstore.CustomerPassword); err != nil {
		t.Fatalf("login: %v", err)
	}

	orders, err := client.MyOrders(ctx)
	if err != nil {
		t.Fatalf("my orders: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 seeded orders, got %d", len(orders))
	}
	if orders[0].Status != "preparing" {
		t.Errorf("expected newest order first, got status %q", orders[0].Status)
	}

	_, err = client.AllOrders(ctx, "")
	expectAPIError(t, err, http.StatusForbidden, "Admin access required")

	// A fresh process picks the stored token back up.
	restored := session.New(api.New(srv.URL), kv)
	if err := restored.Restore(ctx); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if u := restored.User(); u == nil || u.Email != memstore.CustomerEmail {
		t.Fatalf("expected restored customer session, got %+v", u)
	}
}
