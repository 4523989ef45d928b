package handler_test

import (
	"net/http"
	"testing"

	"github.com/bhushansable/Gurukrupa-Mess/internal/auth"
	"github.com/bhushansable/Gurukrupa-Mess/internal/memstore"
)

// --- Register tests ---

func TestRegister_CreatesCustomer(t *testing.T) {
	store := newSeededStore(t)
	router := setupRouter(store)

	rr := doRequest(t, router, "POST", "/api/auth/register", "", map[string]string{
		"name": "Asha Kulkarni", "email": "asha@test.com", "phone": "9000000000", "password": "secret",
	})
	expectStatus(t, rr, http.StatusOK)

	resp := decodeResponse(t, rr)
	token, _ := resp["token"].(string)
	claims, err := auth.ValidateToken(testSecret, token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Role != "customer" {
		t.Errorf("role claim: got %q, want customer", claims.Role)
	}
	user := resp["user"].(map[string]interface{})
	if user["role"] != "customer" || user["language_pref"] != "en" {
		t.Errorf("user: %v", user)
	}
	if _, leaked := user["PasswordHash"]; leaked {
		t.Error("password hash leaked into response")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	router := setupRouter(newSeededStore(t))

	rr := doRequest(t, router, "POST", "/api/auth/register", "", map[string]string{
		"name": "Rahul", "email": memstore.CustomerEmail, "phone": "1", "password": "x",
	})
	expectDetail(t, rr, http.StatusBadRequest, "Email already registered")
}

func TestRegister_MissingField(t *testing.T) {
	router := setupRouter(newSeededStore(t))

	rr := doRequest(t, router, "POST", "/api/auth/register", "", map[string]string{
		"name": "Asha", "email": "asha@test.com", "password": "x",
	})
	expectDetail(t, rr, http.StatusUnprocessableEntity, "phone is required")
}

// --- Login tests ---

func TestLogin_ValidCredentials(t *testing.T) {
	router := setupRouter(newSeededStore(t))

	rr := doRequest(t, router, "POST", "/api/auth/login", "", map[string]string{
		"email": memstore.AdminEmail, "password": memstore.AdminPassword,
	})
	expectStatus(t, rr, http.StatusOK)
	resp := decodeResponse(t, rr)
	if resp["token"] == "" {
		t.Error("expected token")
	}
	if resp["user"].(map[string]interface{})["role"] != "admin" {
		t.Errorf("user: %v", resp["user"])
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	router := setupRouter(newSeededStore(t))

	rr := doRequest(t, router, "POST", "/api/auth/login", "", map[string]string{
		"email": memstore.AdminEmail, "password": "nope",
	})
	expectDetail(t, rr, http.StatusUnauthorized, "Invalid credentials")
}

func TestLogin_UnknownEmail(t *testing.T) {
	router := setupRouter(newSeededStore(t))

	rr := doRequest(t, router, "POST", "/api/auth/login", "", map[string]string{
		"email": "ghost@test.com", "password": "x",
	})
	expectDetail(t, rr, http.StatusUnauthorized, "Invalid credentials")
}

// --- Profile tests ---

func TestMe(t *testing.T) {
	store := newSeededStore(t)
	router := setupRouter(store)

	rr := doRequest(t, router, "GET", "/api/auth/me", tokenFor(t, store, memstore.CustomerEmail), nil)
	expectStatus(t, rr, http.StatusOK)
	if resp := decodeResponse(t, rr); resp["email"] != memstore.CustomerEmail {
		t.Errorf("email: got %v", resp["email"])
	}
}

func TestMe_InvalidToken(t *testing.T) {
	router := setupRouter(newSeededStore(t))
	rr := doRequest(t, router, "GET", "/api/auth/me", "garbage", nil)
	expectDetail(t, rr, http.StatusUnauthorized, "Invalid token")
}

func TestUpdateProfile_Partial(t *testing.T) {
	store := newSeededStore(t)
	router := setupRouter(store)
	token := tokenFor(t, store, memstore.CustomerEmail)

	rr := doRequest(t, router, "PUT", "/api/auth/profile", token, map[string]string{"language_pref": "mr"})
	expectStatus(t, rr, http.StatusOK)

	resp := decodeResponse(t, rr)
	if resp["language_pref"] != "mr" {
		t.Errorf("language_pref: got %v, want mr", resp["language_pref"])
	}
	if resp["name"] != "Rahul Patil" {
		t.Errorf("name changed: %v", resp["name"])
	}
}

func TestUpdateProfile_InvalidLanguage(t *testing.T) {
	store := newSeededStore(t)
	router := setupRouter(store)

	rr := doRequest(t, router, "PUT", "/api/auth/profile", tokenFor(t, store, memstore.CustomerEmail), map[string]string{"language_pref": "fr"})
	expectStatus(t, rr, http.StatusUnprocessableEntity)
}
