package api

import "context"

// Dashboard returns aggregate counts for the admin console.
func (c *Client) Dashboard(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	if err := c.get(ctx, "/admin/dashboard", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Customers lists every customer account.
func (c *Client) Customers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.get(ctx, "/admin/customers", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// MockPayment simulates a payment confirmation. It always succeeds server-side.
func (c *Client) MockPayment(ctx context.Context, amount float64, orderID string) (*Payment, error) {
	if amount < 0 {
		return nil, &ValidationError{Field: "amount", Message: "must not be negative"}
	}
	var p Payment
	if err := c.post(ctx, "/payment/mock", PaymentRequest{Amount: amount, OrderID: orderID}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Seed bootstraps demo data. Calling it again is harmless.
func (c *Client) Seed(ctx context.Context) (*SeedResult, error) {
	var res SeedResult
	if err := c.post(ctx, "/seed", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
