package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bhushansable/Gurukrupa-Mess/internal/api"
	"github.com/bhushansable/Gurukrupa-Mess/internal/inflight"
)

var ErrPlanNotFound = errors.New("Plan not found")

// SubscriptionAPI defines the API calls needed by the plans screen.
// Satisfied by *api.Client; narrow interface for testability.
type SubscriptionAPI interface {
	Plans(ctx context.Context) ([]api.Plan, error)
	MockPayment(ctx context.Context, amount float64, orderID string) (*api.Payment, error)
	CreateSubscription(ctx context.Context, planID string) (*api.Subscription, error)
	MySubscriptions(ctx context.Context) ([]api.Subscription, error)
}

// SubscriptionService handles plan listing and subscribing.
type SubscriptionService struct {
	api   SubscriptionAPI
	guard *inflight.Guard
}

func NewSubscriptionService(client SubscriptionAPI, guard *inflight.Guard) *SubscriptionService {
	return &SubscriptionService{api: client, guard: guard}
}

// PlansView is the plans screen: available plans and the user's subscriptions.
type PlansView struct {
	Plans         []api.Plan         `json:"plans"`
	Subscriptions []api.Subscription `json:"subscriptions"`
}

// Load fetches plans and the user's subscriptions.
func (s *SubscriptionService) Load(ctx context.Context) (*PlansView, error) {
	plans, err := s.api.Plans(ctx)
	if err != nil {
		return nil, err
	}
	subs, err := s.api.MySubscriptions(ctx)
	if err != nil {
		return nil, err
	}
	return &PlansView{Plans: plans, Subscriptions: subs}, nil
}

// SubscribeResult is the new subscription and the refreshed list.
type SubscribeResult struct {
	Subscription  *api.Subscription  `json:"subscription"`
	Subscriptions []api.Subscription `json:"subscriptions"`
}

// Subscribe pays for planID with a mock payment of the plan price, creates
// the subscription and refetches the user's subscriptions.
func (s *SubscriptionService) Subscribe(ctx context.Context, planID string) (*SubscribeResult, error) {
	v, _, err := s.guard.Do("subscribe:"+planID, func() (any, error) {
		plans, err := s.api.Plans(ctx)
		if err != nil {
			return nil, err
		}
		var plan *api.Plan
		for i := range plans {
			if plans[i].ID == planID {
				plan = &plans[i]
				break
			}
		}
		if plan == nil {
			return nil, ErrPlanNotFound
		}

		if _, err := s.api.MockPayment(ctx, plan.Price, ""); err != nil {
			return nil, fmt.Errorf("payment: %w", err)
		}
		sub, err := s.api.CreateSubscription(ctx, plan.ID)
		if err != nil {
			return nil, err
		}
		subs, err := s.api.MySubscriptions(ctx)
		if err != nil {
			return nil, err
		}
		return &SubscribeResult{Subscription: sub, Subscriptions: subs}, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*SubscribeResult), nil
}
