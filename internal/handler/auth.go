package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/bhushansable/Gurukrupa-Mess/internal/api"
	"github.com/bhushansable/Gurukrupa-Mess/internal/auth"
	"github.com/bhushansable/Gurukrupa-Mess/internal/enum"
	"github.com/bhushansable/Gurukrupa-Mess/internal/memstore"
	mw "github.com/bhushansable/Gurukrupa-Mess/internal/middleware"
)

// AuthStore defines the store methods needed by auth handlers.
// Satisfied by *memstore.Store; narrow interface for testability.
type AuthStore interface {
	CreateUser(ctx context.Context, u memstore.User) (memstore.User, error)
	UserByEmail(ctx context.Context, email string) (memstore.User, error)
	UpdateUser(ctx context.Context, id string, p api.ProfileUpdate) (memstore.User, error)
}

// AuthHandler handles registration, login and the current user's profile.
type AuthHandler struct {
	store     AuthStore
	jwtSecret string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(store AuthStore, jwtSecret string) *AuthHandler {
	return &AuthHandler{store: store, jwtSecret: jwtSecret}
}

// RegisterRoutes registers the public auth endpoints.
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)
}

// RegisterSessionRoutes registers endpoints that need an authenticated user.
func (h *AuthHandler) RegisterSessionRoutes(r chi.Router) {
	r.Get("/auth/me", h.Me)
	r.Put("/auth/profile", h.UpdateProfile)
}

// --- Handlers ---

// Register creates a customer account and signs it in.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	hashed, err := memstore.HashPassword(req.Password)
	if err != nil {
		log.Printf("ERROR: %v", err)
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user, err := h.store.CreateUser(r.Context(), memstore.User{
		User: api.User{
			Name:    strings.TrimSpace(req.Name),
			Email:   strings.TrimSpace(req.Email),
			Phone:   strings.TrimSpace(req.Phone),
			Address: req.Address,
			Role:    enum.UserRoleCustomer,
		},
		PasswordHash: hashed,
	})
	if err != nil {
		if errors.Is(err, memstore.ErrEmailTaken) {
			writeDetail(w, http.StatusBadRequest, "Email already registered")
			return
		}
		writeStoreError(w, err, "User not found")
		return
	}

	h.respondWithToken(w, user)
}

// Login checks email and password.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.store.UserByEmail(r.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, memstore.ErrNotFound) {
			writeDetail(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		writeStoreError(w, err, "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		writeDetail(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	h.respondWithToken(w, user)
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := mw.UserFromContext(r.Context())
	writeJSON(w, http.StatusOK, userOf(*user))
}

// UpdateProfile applies a partial update to the authenticated user.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req api.ProfileUpdate
	if !decodeBody(w, r, &req) {
		return
	}

	user := mw.UserFromContext(r.Context())
	updated, err := h.store.UpdateUser(r.Context(), user.ID, req)
	if err != nil {
		writeStoreError(w, err, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, userOf(updated))
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, user memstore.User) {
	token, err := auth.GenerateToken(h.jwtSecret, user.ID, user.Role)
	if err != nil {
		log.Printf("ERROR: generate token: %v", err)
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, api.AuthResponse{Token: token, User: userOf(user)})
}
