package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bhushansable/Gurukrupa-Mess/internal/api"
)

// PlanStore defines the store methods needed by plan handlers.
// Satisfied by *memstore.Store; narrow interface for testability.
type PlanStore interface {
	Plans(ctx context.Context) ([]api.Plan, error)
	CreatePlan(ctx context.Context, in api.PlanInput) (api.Plan, error)
	UpdatePlan(ctx context.Context, id string, p api.PlanPatch) (api.Plan, error)
}

// PlanHandler handles subscription plan endpoints.
type PlanHandler struct {
	store PlanStore
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(store PlanStore) *PlanHandler {
	return &PlanHandler{store: store}
}

func (h *PlanHandler) RegisterRoutes(r chi.Router) {
	r.Get("/plans", h.List)
}

// RegisterAdminRoutes registers plan management. Mount behind RequireAdmin.
func (h *PlanHandler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/plans", h.Create)
	r.Put("/plans/{id}", h.Update)
}

// --- Handlers ---

// List returns the active plans.
func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	plans, err := h.store.Plans(r.Context())
	if err != nil {
		writeStoreError(w, err, "Plan not found")
		return
	}
	writeJSON(w, http.StatusOK, plans)
}

func (h *PlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req api.PlanInput
	if !decodeBody(w, r, &req) {
		return
	}
	plan, err := h.store.CreatePlan(r.Context(), req)
	if err != nil {
		writeStoreError(w, err, "Plan not found")
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// Update applies a partial update; fields absent from the body are kept.
func (h *PlanHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req api.PlanPatch
	if err := decodeRaw(r, &req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if req == (api.PlanPatch{}) {
		writeDetail(w, http.StatusBadRequest, "No fields to update")
		return
	}
	if err := req.Validate(); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	plan, err := h.store.UpdatePlan(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeStoreError(w, err, "Plan not found")
		return
	}
	writeJSON(w, http.StatusOK, plan)
}
