package api

import "context"

// CreateSubscription subscribes the current user to a plan.
func (c *Client) CreateSubscription(ctx context.Context, planID string) (*Subscription, error) {
	seg, err := idSegment("plan_id", planID)
	if err != nil {
		return nil, err
	}
	var sub Subscription
	if err := c.post(ctx, "/subscriptions", subscriptionRequest{PlanID: seg}, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// MySubscriptions lists the current user's subscriptions, newest first.
func (c *Client) MySubscriptions(ctx context.Context) ([]Subscription, error) {
	var subs []Subscription
	if err := c.get(ctx, "/subscriptions", &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// AllSubscriptions lists every subscription (admin).
func (c *Client) AllSubscriptions(ctx context.Context) ([]Subscription, error) {
	var subs []Subscription
	if err := c.get(ctx, "/subscriptions/all", &subs); err != nil {
		return nil, err
	}
	return subs, nil
}
