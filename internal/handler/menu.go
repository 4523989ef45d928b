package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/bhushansable/Gurukrupa-Mess/internal/api"
	"github.com/bhushansable/Gurukrupa-Mess/internal/enum"
)

// MenuStore defines the store methods needed by menu handlers.
// Satisfied by *memstore.Store; narrow interface for testability.
type MenuStore interface {
	MenuItems(ctx context.Context, day string) ([]api.MenuItem, error)
	WeeklyMenu(ctx context.Context) (api.WeeklyMenu, error)
	CreateMenuItem(ctx context.Context, in api.MenuItemInput) (api.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id string, p api.MenuItemPatch) (api.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id string) error
}

// MenuHandler handles menu browsing and admin menu CRUD.
type MenuHandler struct {
	store MenuStore
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(store MenuStore) *MenuHandler {
	return &MenuHandler{store: store}
}

// RegisterRoutes registers the public menu endpoints.
func (h *MenuHandler) RegisterRoutes(r chi.Router) {
	r.Get("/menu", h.List)
	r.Get("/menu/weekly", h.Weekly)
}

// RegisterAdminRoutes registers menu CRUD. Mount behind RequireAdmin.
func (h *MenuHandler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/menu", h.Create)
	r.Put("/menu/{id}", h.Update)
	r.Delete("/menu/{id}", h.Delete)
}

// --- Handlers ---

// List returns available items, optionally for one day plus the daily items.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	day := strings.ToLower(r.URL.Query().Get("day"))
	if day != "" && !enum.IsValidDay(day) {
		writeDetail(w, http.StatusUnprocessableEntity, "day must be daily or a weekday")
		return
	}
	items, err := h.store.MenuItems(r.Context(), day)
	if err != nil {
		writeStoreError(w, err, "Menu item not found")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Weekly returns monday..sunday mapped to that day's items.
func (h *MenuHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	weekly, err := h.store.WeeklyMenu(r.Context())
	if err != nil {
		writeStoreError(w, err, "Menu item not found")
		return
	}
	writeJSON(w, http.StatusOK, weekly)
}

func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req api.MenuItemInput
	if !decodeBody(w, r, &req) {
		return
	}
	item, err := h.store.CreateMenuItem(r.Context(), req)
	if err != nil {
		writeStoreError(w, err, "Menu item not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Update applies a partial update. An empty body is rejected.
func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req api.MenuItemPatch
	if err := decodeRaw(r, &req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if req == (api.MenuItemPatch{}) {
		writeDetail(w, http.StatusBadRequest, "No fields to update")
		return
	}
	if err := req.Validate(); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	item, err := h.store.UpdateMenuItem(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeStoreError(w, err, "Menu item not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteMenuItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, err, "Menu item not found")
		return
	}
	writeJSON(w, http.StatusOK, api.Message{Message: "Deleted"})
}
