package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/bhushansable/Gurukrupa-Mess/internal/api"
	mw "github.com/bhushansable/Gurukrupa-Mess/internal/middleware"
)

// SubscriptionStore defines the store methods needed by subscription handlers.
// Satisfied by *memstore.Store; narrow interface for testability.
type SubscriptionStore interface {
	PlanByID(ctx context.Context, id string) (api.Plan, error)
	CreateSubscription(ctx context.Context, user api.User, plan api.Plan) (api.Subscription, error)
	Subscriptions(ctx context.Context, userID string) ([]api.Subscription, error)
}

// SubscriptionHandler handles plan subscriptions.
type SubscriptionHandler struct {
	store SubscriptionStore
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(store SubscriptionStore) *SubscriptionHandler {
	return &SubscriptionHandler{store: store}
}

// RegisterRoutes registers customer subscription endpoints. Mount behind Authenticate.
func (h *SubscriptionHandler) RegisterRoutes(r chi.Router) {
	r.Post("/subscriptions", h.Create)
	r.Get("/subscriptions", h.ListMine)
}

// RegisterAdminRoutes mounts the full subscription list. Mount behind RequireAdmin.
func (h *SubscriptionHandler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/subscriptions/all", h.ListAll)
}

// --- Request / Response types ---

type createSubscriptionRequest struct {
	PlanID string `json:"plan_id"`
}

// --- Handlers ---

func (h *SubscriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSubscriptionRequest
	if err := decodeRaw(r, &req); err != nil || strings.TrimSpace(req.PlanID) == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "plan_id is required")
		return
	}

	plan, err := h.store.PlanByID(r.Context(), req.PlanID)
	if err != nil {
		writeStoreError(w, err, "Plan not found")
		return
	}

	user := mw.UserFromContext(r.Context())
	sub, err := h.store.CreateSubscription(r.Context(), userOf(*user), plan)
	if err != nil {
		writeStoreError(w, err, "Plan not found")
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

func (h *SubscriptionHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	user := mw.UserFromContext(r.Context())
	subs, err := h.store.Subscriptions(r.Context(), user.ID)
	if err != nil {
		writeStoreError(w, err, "Subscription not found")
		return
	}
	writeJSON(w, http.StatusOK, subs)
}

func (h *SubscriptionHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	subs, err := h.store.Subscriptions(r.Context(), "")
	if err != nil {
		writeStoreError(w, err, "Subscription not found")
		return
	}
	writeJSON(w, http.StatusOK, subs)
}
