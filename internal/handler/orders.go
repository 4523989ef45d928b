package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bhushansable/Gurukrupa-Mess/internal/api"
	"github.com/bhushansable/Gurukrupa-Mess/internal/enum"
	mw "github.com/bhushansable/Gurukrupa-Mess/internal/middleware"
	"github.com/bhushansable/Gurukrupa-Mess/internal/orderstatus"
)

// OrderStore defines the store methods needed by order handlers.
// Satisfied by *memstore.Store; narrow interface for testability.
type OrderStore interface {
	CreateOrder(ctx context.Context, o api.Order) (api.Order, error)
	Orders(ctx context.Context, userID, status string) ([]api.Order, error)
	OrderByID(ctx context.Context, id string) (api.Order, error)
	UpdateOrderStatus(ctx context.Context, id, status string) (api.Order, error)
}

// OrderHandler handles customer orders and the admin status flow.
type OrderHandler struct {
	store OrderStore
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(store OrderStore) *OrderHandler {
	return &OrderHandler{store: store}
}

// RegisterRoutes registers customer order endpoints. Mount behind Authenticate.
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Post("/orders", h.Create)
	r.Get("/orders", h.ListMine)
	r.Get("/orders/{id}", h.Get)
}

// RegisterAdminRoutes registers the admin order endpoints. Mount behind RequireAdmin.
func (h *OrderHandler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/orders/all", h.ListAll)
	r.Put("/orders/{id}/status", h.UpdateStatus)
}

// --- Request / Response types ---

type updateStatusRequest struct {
	Status string `json:"status"`
}

// --- Handlers ---

// Create places a paid order for the authenticated user. The delivery
// address falls back to the user's saved address.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req api.CreateOrderRequest
	if err := decodeRaw(r, &req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if len(req.Items) == 0 {
		writeDetail(w, http.StatusUnprocessableEntity, "items are required")
		return
	}
	if req.OrderType == "" {
		req.OrderType = enum.OrderTypeSingle
	}
	if !enum.IsValidOrderType(req.OrderType) {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid order_type")
		return
	}

	user := mw.UserFromContext(r.Context())
	address := req.DeliveryAddress
	if address == "" && req.OrderType != enum.OrderTypeDineIn {
		address = user.Address
	}

	order, err := h.store.CreateOrder(r.Context(), api.Order{
		UserID:          user.ID,
		UserName:        user.Name,
		UserPhone:       user.Phone,
		Items:           req.Items,
		Total:           req.Total,
		OrderType:       req.OrderType,
		DeliveryAddress: address,
		Notes:           req.Notes,
	})
	if err != nil {
		writeStoreError(w, err, "Order not found")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// ListMine returns the authenticated user's orders, newest first.
func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	user := mw.UserFromContext(r.Context())
	orders, err := h.store.Orders(r.Context(), user.ID, "")
	if err != nil {
		writeStoreError(w, err, "Order not found")
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// ListAll returns every order, optionally filtered by ?status=.
func (h *OrderHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.store.Orders(r.Context(), "", r.URL.Query().Get("status"))
	if err != nil {
		writeStoreError(w, err, "Order not found")
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// Get returns one order. Customers may only read their own.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.store.OrderByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err, "Order not found")
		return
	}
	user := mw.UserFromContext(r.Context())
	if user.Role != enum.UserRoleAdmin && order.UserID != user.ID {
		writeDetail(w, http.StatusForbidden, "Not authorized")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// UpdateStatus sets an order's status.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := decodeRaw(r, &req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if !orderstatus.IsValid(orderstatus.Status(req.Status)) {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid status")
		return
	}

	order, err := h.store.UpdateOrderStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		writeStoreError(w, err, "Order not found")
		return
	}
	writeJSON(w, http.StatusOK, order)
}
