package api

import (
	"context"
	"strings"

	"github.com/bhushansable/Gurukrupa-Mess/internal/enum"
)

// Menu lists available items. With a day, only that day's and daily items.
func (c *Client) Menu(ctx context.Context, day string) ([]MenuItem, error) {
	day = strings.ToLower(strings.TrimSpace(day))
	if day != "" && !enum.IsValidDay(day) {
		return nil, &ValidationError{Field: "day", Message: "must be daily or a weekday"}
	}
	var items []MenuItem
	if err := c.get(ctx, withQuery("/menu", "day", day), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// WeeklyMenu returns the items served on each weekday.
func (c *Client) WeeklyMenu(ctx context.Context) (WeeklyMenu, error) {
	var weekly WeeklyMenu
	if err := c.get(ctx, "/menu/weekly", &weekly); err != nil {
		return nil, err
	}
	return weekly, nil
}

func (c *Client) CreateMenuItem(ctx context.Context, in MenuItemInput) (*MenuItem, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var item MenuItem
	if err := c.post(ctx, "/menu", in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateMenuItem(ctx context.Context, id string, patch MenuItemPatch) (*MenuItem, error) {
	seg, err := idSegment("menu item id", id)
	if err != nil {
		return nil, err
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	var item MenuItem
	if err := c.put(ctx, "/menu/"+seg, patch, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteMenuItem(ctx context.Context, id string) error {
	seg, err := idSegment("menu item id", id)
	if err != nil {
		return err
	}
	return c.delete(ctx, "/menu/"+seg, &Message{})
}

// Plans lists active subscription plans.
func (c *Client) Plans(ctx context.Context) ([]Plan, error) {
	var plans []Plan
	if err := c.get(ctx, "/plans", &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (c *Client) CreatePlan(ctx context.Context, in PlanInput) (*Plan, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var plan Plan
	if err := c.post(ctx, "/plans", in, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// UpdatePlan changes only the fields set in patch.
func (c *Client) UpdatePlan(ctx context.Context, id string, patch PlanPatch) (*Plan, error) {
	seg, err := idSegment("plan id", id)
	if err != nil {
		return nil, err
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	var plan Plan
	if err := c.put(ctx, "/plans/"+seg, patch, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}
