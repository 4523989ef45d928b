package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bhushansable/Gurukrupa-Mess/internal/api"
	"github.com/bhushansable/Gurukrupa-Mess/internal/i18n"
	"github.com/bhushansable/Gurukrupa-Mess/internal/inflight"
	"github.com/bhushansable/Gurukrupa-Mess/internal/orderstatus"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// AdminOrderAPI defines the API calls needed by the admin orders screen.
// Satisfied by *api.Client; narrow interface for testability.
type AdminOrderAPI interface {
	AllOrders(ctx context.Context, status orderstatus.Status) ([]api.Order, error)
	Order(ctx context.Context, id string) (*api.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status orderstatus.Status) (*api.Order, error)
}

// AdminOrderService drives the admin status-update flow.
type AdminOrderService struct {
	api   AdminOrderAPI
	guard *inflight.Guard
}

func NewAdminOrderService(client AdminOrderAPI, guard *inflight.Guard) *AdminOrderService {
	return &AdminOrderService{api: client, guard: guard}
}

// List returns all orders, optionally filtered by status.
func (s *AdminOrderService) List(ctx context.Context, filter orderstatus.Status) ([]api.Order, error) {
	return s.api.AllOrders(ctx, filter)
}

// Options returns the statuses offered for an order.
func (s *AdminOrderService) Options(order api.Order) []orderstatus.Status {
	return orderstatus.NextOptions(order.CurrentStatus())
}

// Advance moves order to next and then refetches the list with filter.
// There is no optimistic update: on failure the caller's list is unchanged.
func (s *AdminOrderService) Advance(ctx context.Context, order api.Order, next orderstatus.Status, filter orderstatus.Status) ([]api.Order, error) {
	current := order.CurrentStatus()
	if !orderstatus.CanTransition(current, next) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, current, next)
	}

	_, _, err := s.guard.Do("status:"+order.ID, func() (any, error) {
		return s.api.UpdateOrderStatus(ctx, order.ID, next)
	})
	if err != nil {
		return nil, err
	}
	return s.api.AllOrders(ctx, filter)
}

// AdvanceByID fetches the order to learn its current status, then advances it.
func (s *AdminOrderService) AdvanceByID(ctx context.Context, id string, next orderstatus.Status, filter orderstatus.Status) ([]api.Order, error) {
	order, err := s.api.Order(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.Advance(ctx, *order, next, filter)
}

// StatusLabel renders a status through the translation table.
func StatusLabel(t *i18n.Translator, s orderstatus.Status) string {
	return t.T(string(s))
}
