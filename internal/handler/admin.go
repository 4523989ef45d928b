package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bhushansable/Gurukrupa-Mess/internal/api"
	"github.com/bhushansable/Gurukrupa-Mess/internal/enum"
)

// AdminStore defines the store methods needed by admin handlers.
// Satisfied by *memstore.Store; narrow interface for testability.
type AdminStore interface {
	Dashboard(ctx context.Context) (api.DashboardStats, error)
	Customers(ctx context.Context) ([]api.User, error)
}

// SeedStore loads demo data. Satisfied by *memstore.Store.
type SeedStore interface {
	Seed(ctx context.Context) (api.SeedResult, error)
}

// AdminHandler handles admin aggregates, mock payments and seeding.
type AdminHandler struct {
	store AdminStore
	seed  SeedStore
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(store AdminStore, seed SeedStore) *AdminHandler {
	return &AdminHandler{store: store, seed: seed}
}

// RegisterRoutes registers the public seed endpoint.
func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Post("/seed", h.Seed)
}

// RegisterSessionRoutes registers the mock payment. Mount behind Authenticate.
func (h *AdminHandler) RegisterSessionRoutes(r chi.Router) {
	r.Post("/payment/mock", h.MockPayment)
}

// RegisterAdminRoutes registers the dashboard and customer list. Mount behind RequireAdmin.
func (h *AdminHandler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/admin/dashboard", h.Dashboard)
	r.Get("/admin/customers", h.Customers)
}

// --- Handlers ---

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.Dashboard(r.Context())
	if err != nil {
		writeStoreError(w, err, "Not found")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *AdminHandler) Customers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.store.Customers(r.Context())
	if err != nil {
		writeStoreError(w, err, "Not found")
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

// MockPayment always succeeds and echoes the amount.
func (h *AdminHandler) MockPayment(w http.ResponseWriter, r *http.Request) {
	var req api.PaymentRequest
	if err := decodeRaw(r, &req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, api.Payment{
		PaymentID: "pay_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16],
		OrderID:   req.OrderID,
		Amount:    req.Amount,
		Currency:  "INR",
		Status:    enum.PaymentStatusCaptured,
		Method:    "mock_razorpay",
	})
}

// Seed loads the demo data once.
func (h *AdminHandler) Seed(w http.ResponseWriter, r *http.Request) {
	res, err := h.seed.Seed(r.Context())
	if err != nil {
		writeStoreError(w, err, "Not found")
		return
	}
	writeJSON(w, http.StatusOK, res)
}
