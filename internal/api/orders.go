package api

import (
	"context"

	"github.com/bhushansable/Gurukrupa-Mess/internal/orderstatus"
)

// CreateOrder submits a new order. The backend assigns status pending.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var o Order
	if err := c.post(ctx, "/orders", req, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// MyOrders lists the current user's orders, newest first.
func (c *Client) MyOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.get(ctx, "/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// AllOrders lists every order (admin). An empty status means no filter.
func (c *Client) AllOrders(ctx context.Context, status orderstatus.Status) ([]Order, error) {
	if status != "" && !orderstatus.IsValid(status) {
		return nil, &ValidationError{Field: "status", Message: "is not an order status"}
	}
	var orders []Order
	if err := c.get(ctx, withQuery("/orders/all", "status", string(status)), &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) Order(ctx context.Context, id string) (*Order, error) {
	seg, err := idSegment("order id", id)
	if err != nil {
		return nil, err
	}
	var o Order
	if err := c.get(ctx, "/orders/"+seg, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateOrderStatus sets an order's status (admin) and returns the updated order.
func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status orderstatus.Status) (*Order, error) {
	seg, err := idSegment("order id", id)
	if err != nil {
		return nil, err
	}
	if !orderstatus.IsValid(status) {
		return nil, &ValidationError{Field: "status", Message: "is not an order status"}
	}
	var o Order
	if err := c.put(ctx, "/orders/"+seg+"/status", statusUpdateRequest{Status: string(status)}, &o); err != nil {
		return nil, err
	}
	return &o, nil
}
